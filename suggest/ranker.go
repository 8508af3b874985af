// Package suggest turns a free-text query into grouped, relevance-ranked
// search suggestions drawn from the catalog snapshot.
package suggest

import (
	"sort"
	"strings"

	"github.com/kramislife/world-of-minifigs-sub001/models"
)

// Suggestions extracts candidate strings across the six attribute
// categories and ranks each group with the relevance comparator. A blank or
// whitespace-only query means "no active search" and yields empty groups.
func Suggestions(query string, snap *models.CatalogSnapshot) models.SuggestionGroups {
	groups := models.SuggestionGroups{
		Products:       []string{},
		Categories:     []string{},
		SubCategories:  []string{},
		Collections:    []string{},
		SubCollections: []string{},
		Colors:         []string{},
	}

	q := strings.TrimSpace(query)
	if q == "" || snap == nil {
		return groups
	}
	lq := strings.ToLower(q)

	// Product names match on whitespace tokens: any token containing the
	// query as a substring qualifies the full name.
	names := newCandidateSet()
	for i := range snap.Products {
		name := snap.Products[i].Name
		for _, token := range strings.Fields(name) {
			if strings.Contains(strings.ToLower(token), lq) {
				names.add(name)
				break
			}
		}
	}
	groups.Products = names.ranked(lq)

	// Taxonomy terms match anywhere in the display label. A term's name may
	// encode several comma-separated labels; each label is its own
	// candidate.
	categories := newCandidateSet()
	for _, c := range snap.Categories {
		categories.addMatchingLabels(c.Name, lq)
	}
	groups.Categories = categories.ranked(lq)

	subCategories := newCandidateSet()
	for _, sc := range snap.SubCategories {
		subCategories.addMatchingLabels(sc.Name, lq)
	}
	groups.SubCategories = subCategories.ranked(lq)

	collections := newCandidateSet()
	for _, c := range snap.Collections {
		collections.addMatchingLabels(c.Name, lq)
	}
	groups.Collections = collections.ranked(lq)

	subCollections := newCandidateSet()
	for _, sc := range snap.SubCollections {
		subCollections.addMatchingLabels(sc.Name, lq)
	}
	groups.SubCollections = subCollections.ranked(lq)

	colors := newCandidateSet()
	for _, c := range snap.Colors {
		colors.addMatchingLabels(c.Name, lq)
	}
	groups.Colors = colors.ranked(lq)

	return groups
}

// SplitLabels splits a comma-encoded multi-label term name into its display
// labels, trimming whitespace and dropping blanks.
func SplitLabels(name string) []string {
	parts := strings.Split(name, ",")
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// ─────────────────────────────────────────────────────────────
// Candidate sets
// ─────────────────────────────────────────────────────────────

// candidateSet deduplicates case-insensitively, preserving the casing of
// the first occurrence.
type candidateSet struct {
	seen  map[string]bool
	items []string
}

func newCandidateSet() *candidateSet {
	return &candidateSet{seen: make(map[string]bool)}
}

func (cs *candidateSet) add(candidate string) {
	key := strings.ToLower(candidate)
	if cs.seen[key] {
		return
	}
	cs.seen[key] = true
	cs.items = append(cs.items, candidate)
}

func (cs *candidateSet) addMatchingLabels(name, lowerQuery string) {
	for _, label := range SplitLabels(name) {
		if strings.Contains(strings.ToLower(label), lowerQuery) {
			cs.add(label)
		}
	}
}

func (cs *candidateSet) ranked(lowerQuery string) []string {
	if len(cs.items) == 0 {
		return []string{}
	}
	Rank(cs.items, lowerQuery)
	return cs.items
}

// ─────────────────────────────────────────────────────────────
// Relevance comparator
// ─────────────────────────────────────────────────────────────

// Rank orders candidates in place by relevance against the lower-cased
// query.
func Rank(candidates []string, lowerQuery string) {
	sort.Slice(candidates, func(i, j int) bool {
		return Less(candidates[i], candidates[j], lowerQuery)
	})
}

// Less is the multi-tier relevance comparator. Tiers, highest first: exact
// match, whole-word match, all long query tokens present, prefix match.
// Ties at every tier fall through; the final tie-break is lexicographic,
// which makes the order a strict total order for distinct strings.
func Less(a, b, lowerQuery string) bool {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)

	tiers := []func(string) bool{
		func(c string) bool { return c == lowerQuery },
		func(c string) bool { return containsWholeWord(c, lowerQuery) },
		func(c string) bool { return containsLongTokens(c, lowerQuery) },
		func(c string) bool { return strings.HasPrefix(c, lowerQuery) },
	}
	for _, tier := range tiers {
		ta, tb := tier(la), tier(lb)
		if ta != tb {
			return ta
		}
	}
	if la != lb {
		return la < lb
	}
	return a < b
}

// containsWholeWord reports whether the query appears in the candidate as a
// whole word: surrounded by spaces, anchored at the start followed by a
// space, or anchored at the end preceded by one.
func containsWholeWord(candidate, query string) bool {
	return strings.Contains(candidate, " "+query+" ") ||
		strings.HasPrefix(candidate, query+" ") ||
		strings.HasSuffix(candidate, " "+query)
}

// containsLongTokens reports whether every query token longer than two
// characters appears somewhere in the candidate. Short tokens are skipped
// so stop-word fragments do not over-match.
func containsLongTokens(candidate, query string) bool {
	for _, token := range strings.Fields(query) {
		if len(token) <= 2 {
			continue
		}
		if !strings.Contains(candidate, token) {
			return false
		}
	}
	return true
}
