// models/filter_models.go
package models

// FilterOption is one selectable value within a facet.
type FilterOption struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Count    int    `json:"count"`
	Disabled bool   `json:"disabled"`
	// HasChildren marks a hierarchical option that can be drilled into.
	HasChildren bool `json:"has_children,omitempty"`
	// Children holds the drilled-into options for the single expanded
	// parent; nil for everything else.
	Children []FilterOption `json:"children,omitempty"`
}

// FacetResponse is one filterable dimension with its annotated options.
type FacetResponse struct {
	Key     string         `json:"key"`
	Label   string         `json:"label"`
	Options []FilterOption `json:"options"`
}

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Facets     []FacetResponse   `json:"facets"`
	Selected   map[string]string `json:"selected"`
	PriceRange *PriceRangeData   `json:"priceRange"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
