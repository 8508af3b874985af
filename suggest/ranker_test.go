package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kramislife/world-of-minifigs-sub001/models"
)

func snapshotWithProducts(names ...string) *models.CatalogSnapshot {
	snap := &models.CatalogSnapshot{}
	for _, name := range names {
		snap.Products = append(snap.Products, models.Product{Name: name})
	}
	return snap
}

func TestRankRelevanceTiers(t *testing.T) {
	candidates := []string{"Fire-red Set", "Redwood", "Red Brick"}
	Rank(candidates, "red")

	// Whole-word match beats prefix, prefix beats plain substring.
	assert.Equal(t, []string{"Red Brick", "Redwood", "Fire-red Set"}, candidates)
}

func TestRankExactMatchFirst(t *testing.T) {
	candidates := []string{"Redwood", "Red Brick", "Red"}
	Rank(candidates, "red")

	assert.Equal(t, "Red", candidates[0])
}

func TestRankLongTokenTier(t *testing.T) {
	// Both contain every query token longer than 2 chars ("star",
	// "cruiser"); neither is a prefix or whole-phrase match, so the
	// lexicographic fallback decides.
	candidates := []string{"Mega Starcruiser Dock", "Galaxy Starcruiser"}
	Rank(candidates, "star cruiser")
	assert.Equal(t, []string{"Galaxy Starcruiser", "Mega Starcruiser Dock"}, candidates)

	// A candidate missing one long token ranks below one with all of them.
	candidates = []string{"Starlight Base", "Galaxy Starcruiser"}
	Rank(candidates, "star cruiser")
	assert.Equal(t, []string{"Galaxy Starcruiser", "Starlight Base"}, candidates)
}

func TestRankShortTokensIgnored(t *testing.T) {
	// "of" is two characters and must not disqualify the token tier.
	candidates := []string{"Tower Watch", "World of Towers"}
	Rank(candidates, "of towers")
	assert.Equal(t, "World of Towers", candidates[0])
}

func TestLessStrictTotalOrder(t *testing.T) {
	candidates := []string{"Red Brick", "Redwood", "Fire-red Set", "Red", "red brick wall"}
	for _, a := range candidates {
		for _, b := range candidates {
			if a == b {
				continue
			}
			// Antisymmetry: never a<b and b<a at once.
			assert.Falsef(t, Less(a, b, "red") && Less(b, a, "red"), "ordering conflict for %q vs %q", a, b)
		}
	}

	first := append([]string(nil), candidates...)
	second := append([]string(nil), candidates...)
	Rank(first, "red")
	Rank(second, "red")
	assert.Equal(t, first, second)
}

func TestSuggestionsNameTokenMatching(t *testing.T) {
	snap := snapshotWithProducts(
		"Red Brick Star Cruiser", // token "Red" contains the query
		"Fire-red Set",           // token "Fire-red" contains the query
		"Blue Baseplate",         // no token matches
	)

	groups := Suggestions("red", snap)
	assert.ElementsMatch(t, []string{"Red Brick Star Cruiser", "Fire-red Set"}, groups.Products)
	assert.Empty(t, groups.Categories)
}

func TestSuggestionsDeduplication(t *testing.T) {
	snap := snapshotWithProducts("Red Brick", "RED BRICK", "red brick")

	groups := Suggestions("red", snap)
	// Case-insensitive set semantics, first-seen casing preserved.
	require.Len(t, groups.Products, 1)
	assert.Equal(t, "Red Brick", groups.Products[0])
}

func TestSuggestionsCommaEncodedLabels(t *testing.T) {
	snap := &models.CatalogSnapshot{
		SubCollections: []models.SubCollection{
			{Name: "Star Cruisers, Starcruisers"},
			{Name: "Market Square"},
		},
	}

	groups := Suggestions("cruiser", snap)
	// One term, two display labels: each label is its own candidate.
	assert.ElementsMatch(t, []string{"Star Cruisers", "Starcruisers"}, groups.SubCollections)
}

func TestSuggestionsTaxonomySubstringMatching(t *testing.T) {
	snap := &models.CatalogSnapshot{
		Categories: []models.Category{{Name: "Minifigures"}, {Name: "Building Sets"}},
		Colors:     []models.Color{{Name: "Classic Red"}, {Name: "Galaxy Blue"}},
	}

	// Taxonomy candidates match anywhere in the label, not per token.
	groups := Suggestions("figur", snap)
	assert.Equal(t, []string{"Minifigures"}, groups.Categories)

	groups = Suggestions("red", snap)
	assert.Equal(t, []string{"Classic Red"}, groups.Colors)
}

func TestSuggestionsBlankQuery(t *testing.T) {
	snap := snapshotWithProducts("Red Brick")

	for _, query := range []string{"", "   ", "\t\n"} {
		groups := Suggestions(query, snap)
		assert.Empty(t, groups.Products)
		assert.Empty(t, groups.Categories)
		assert.Empty(t, groups.Colors)
	}
}

func TestSuggestionsNilSnapshot(t *testing.T) {
	groups := Suggestions("red", nil)
	assert.NotNil(t, groups.Products)
	assert.Empty(t, groups.Products)
}

func TestSplitLabels(t *testing.T) {
	assert.Equal(t, []string{"Star Cruisers", "Starcruisers"}, SplitLabels("Star Cruisers, Starcruisers"))
	assert.Equal(t, []string{"Solo"}, SplitLabels("Solo"))
	assert.Empty(t, SplitLabels(" , ,"))
}
