package facets

import (
	"net/url"
	"sort"
	"strings"
)

// Selection is the Selected-Filter Set: for each facet key, the set of
// option values currently chosen. An absent or empty set means "no
// constraint from this facet". Multi-select; insertion order is irrelevant.
//
// A Selection is owned by one browsing session and mutated only by discrete
// user actions; it is not safe for concurrent mutation.
type Selection map[string]map[string]struct{}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return make(Selection)
}

// Toggle flips the given option value under the facet key: selected values
// are removed, unselected values added.
func (s Selection) Toggle(key, value string) {
	if s[key] == nil {
		s[key] = make(map[string]struct{})
	}
	if _, ok := s[key][value]; ok {
		delete(s[key], value)
		if len(s[key]) == 0 {
			delete(s, key)
		}
		return
	}
	s[key][value] = struct{}{}
}

// Has reports whether the value is selected under the facet key.
func (s Selection) Has(key, value string) bool {
	_, ok := s[key][value]
	return ok
}

// Active reports whether the facet key has at least one selected value.
func (s Selection) Active(key string) bool {
	return len(s[key]) > 0
}

// Values returns the selected values under the key, sorted for stable
// output.
func (s Selection) Values(key string) []string {
	if len(s[key]) == 0 {
		return nil
	}
	out := make([]string, 0, len(s[key]))
	for v := range s[key] {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Clear resets the selection to empty.
func (s Selection) Clear() {
	for k := range s {
		delete(s, k)
	}
}

// IsEmpty reports whether no facet has a selected value.
func (s Selection) IsEmpty() bool {
	for _, set := range s {
		if len(set) > 0 {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────
// Query-parameter round trip
// ─────────────────────────────────────────────────────────────

// ParseSelection rebuilds a Selection from addressable query parameters.
// Values are comma-joined per key (repeated keys accumulate). Unknown facet
// keys are dropped silently; blank values are filtered out rather than
// rejected.
func ParseSelection(query url.Values) Selection {
	sel := NewSelection()
	for key, raws := range query {
		if !KnownKey(key) {
			continue
		}
		for _, raw := range raws {
			for _, v := range strings.Split(raw, ",") {
				v = strings.TrimSpace(v)
				if v == "" {
					continue
				}
				if sel[key] == nil {
					sel[key] = make(map[string]struct{})
				}
				sel[key][v] = struct{}{}
			}
		}
	}
	return sel
}

// EncodeQuery serializes the selection back to query parameters, one
// comma-joined value per facet key. Keys with no selected values are
// omitted entirely, never written as empty values.
func (s Selection) EncodeQuery() url.Values {
	out := url.Values{}
	for key := range s {
		values := s.Values(key)
		if len(values) == 0 {
			continue
		}
		out.Set(key, strings.Join(values, ","))
	}
	return out
}
