package facets

// Expansion identifies the single parent option currently drilled into.
type Expansion struct {
	FacetKey    string
	ParentValue string
}

// DrillDown tracks which parent option (category or collection) is expanded
// to show its children inline. At most one expansion is live at a time; the
// slot belongs to one browsing session and is not shared state.
//
// Callers must not expand a parent with no children in the taxonomy index;
// the UI hides the affordance for those, the controller does not re-check.
type DrillDown struct {
	current *Expansion
}

// Expand opens the given parent, closing any previously open expansion.
func (d *DrillDown) Expand(facetKey, parentValue string) {
	d.current = &Expansion{FacetKey: facetKey, ParentValue: parentValue}
}

// Collapse closes the open expansion, if any.
func (d *DrillDown) Collapse() {
	d.current = nil
}

// Current returns the open expansion, or nil when nothing is expanded.
// Selecting child options never changes this slot.
func (d *DrillDown) Current() *Expansion {
	return d.current
}

// IsExpanded reports whether the given parent option is the open one.
func (d *DrillDown) IsExpanded(facetKey, parentValue string) bool {
	return d.current != nil &&
		d.current.FacetKey == facetKey &&
		d.current.ParentValue == parentValue
}
