package facets

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kramislife/world-of-minifigs-sub001/models"
)

// CountTable maps facet key → option value → number of matching products.
// It is recomputed from scratch on every input change and owned by the
// caller; the engine keeps no state between calls.
type CountTable map[string]map[string]int

// Get returns the count for an option, zero for anything unknown.
func (t CountTable) Get(key, value string) int {
	return t[key][value]
}

// Counts computes, for every option of every facet, how many products would
// match if that option were the only addition to the other active filters.
//
// Filters from a different conceptual group than the candidate option are
// restrictive: the product must satisfy at least one selected value under
// each such active key. Filters from the candidate's own group are ignored,
// so sibling options keep showing "how many more would I get".
func Counts(products []models.Product, catalog []Facet, sel Selection) CountTable {
	table := make(CountTable, len(catalog))
	for _, facet := range catalog {
		group := GroupOf(facet.Key)
		counts := make(map[string]int, len(facet.Options))
		for _, opt := range facet.Options {
			n := 0
			for i := range products {
				p := &products[i]
				if !Predicate(p, facet.Key, opt.Value) {
					continue
				}
				if !matchesActiveFilters(p, sel, group) {
					continue
				}
				n++
			}
			counts[opt.Value] = n
		}
		table[facet.Key] = counts
	}
	return table
}

// Matches reports whether the product satisfies every active filter: at
// least one selected value under each active facet key. An empty selection
// matches everything.
func Matches(p *models.Product, sel Selection) bool {
	return matchesActiveFilters(p, sel, "")
}

// Apply filters the collection down to the products visible under the
// selection, preserving input order.
func Apply(products []models.Product, sel Selection) []models.Product {
	out := make([]models.Product, 0, len(products))
	for i := range products {
		if Matches(&products[i], sel) {
			out = append(out, products[i])
		}
	}
	return out
}

// matchesActiveFilters checks every active facet key except those belonging
// to excludeGroup. Within one key the selected values OR together; across
// keys they AND.
func matchesActiveFilters(p *models.Product, sel Selection, excludeGroup string) bool {
	for key, values := range sel {
		if len(values) == 0 {
			continue
		}
		if excludeGroup != "" && GroupOf(key) == excludeGroup {
			continue
		}
		if !matchesAny(p, key, values) {
			return false
		}
	}
	return true
}

func matchesAny(p *models.Product, key string, values map[string]struct{}) bool {
	for v := range values {
		if Predicate(p, key, v) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────
// Per-facet predicates
// ─────────────────────────────────────────────────────────────

// Predicate reports whether the product satisfies a single facet option.
// Malformed values never error, they just match nothing.
func Predicate(p *models.Product, key, value string) bool {
	switch key {
	case KeyPrice:
		min, max, open, ok := ParsePriceToken(value)
		if !ok {
			return false
		}
		if open {
			return p.Price >= min
		}
		return p.Price >= min && p.Price <= max
	case KeyRating:
		threshold, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		return int(math.Floor(p.Rating)) == threshold
	case KeyCategory:
		return containsTerm(p.CategoryIDs, value)
	case KeySubCategory:
		// Trusts the product's own reference set; a sub-category whose
		// parent category the product never declared still matches.
		return containsTerm(p.SubCategoryIDs, value)
	case KeyCollection:
		return containsTerm(p.CollectionIDs, value)
	case KeySubCollection:
		return containsTerm(p.SubCollectionIDs, value)
	case KeySkillLevel:
		return refEquals(p.SkillLevelID, value)
	case KeyDesigner:
		return refEquals(p.DesignerID, value)
	case KeyColor:
		return refEquals(p.ColorID, value)
	default:
		return false
	}
}

// ParsePriceToken parses a range token. "101-500" yields min=101, max=500;
// "1000+" yields min=1000 with open=true. ok is false for anything else.
func ParsePriceToken(token string) (min, max float64, open, ok bool) {
	token = strings.TrimSpace(token)
	if strings.HasSuffix(token, "+") {
		min, err := strconv.ParseFloat(strings.TrimSuffix(token, "+"), 64)
		if err != nil {
			return 0, 0, false, false
		}
		return min, 0, true, true
	}
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false, false
	}
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false, false
	}
	max, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, false, false
	}
	return min, max, false, true
}

func containsTerm(refs models.UUIDList, value string) bool {
	id, err := uuid.Parse(value)
	if err != nil {
		return false
	}
	return refs.Contains(id)
}

func refEquals(ref *uuid.UUID, value string) bool {
	if ref == nil {
		return false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return false
	}
	return *ref == id
}
