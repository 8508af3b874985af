package facets

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kramislife/world-of-minifigs-sub001/models"
)

var (
	catA     = uuid.MustParse("018f0000-0000-7000-8000-00000000000a")
	catB     = uuid.MustParse("018f0000-0000-7000-8000-00000000000b")
	subCatA1 = uuid.MustParse("018f0000-0000-7000-8000-0000000000a1")
	collX    = uuid.MustParse("018f0000-0000-7000-8000-00000000000c")
	skillBeg = uuid.MustParse("018f0000-0000-7000-8000-00000000000d")
	colorRed = uuid.MustParse("018f0000-0000-7000-8000-00000000000e")
)

func testCatalog() []Facet {
	return []Facet{
		{Key: KeyPrice, Label: "Price", Options: PriceBands},
		{Key: KeyRating, Label: "Rating", Options: RatingBands},
		{Key: KeyCategory, Label: "Category", Options: []Option{
			{Label: "A", Value: catA.String()},
			{Label: "B", Value: catB.String()},
		}},
		{Key: KeySubCategory, Label: "Sub-Category", Options: []Option{
			{Label: "A1", Value: subCatA1.String()},
		}},
		{Key: KeyCollection, Label: "Collection", Options: []Option{
			{Label: "X", Value: collX.String()},
		}},
	}
}

func testProducts() []models.Product {
	return []models.Product{
		{Name: "Cheap A", Price: 50, Rating: 4.6, CategoryIDs: models.UUIDList{catA}},
		{Name: "Mid A", Price: 200, Rating: 3.2, CategoryIDs: models.UUIDList{catA}, SubCategoryIDs: models.UUIDList{subCatA1}},
		{Name: "Mid B", Price: 200, Rating: 4.0, CategoryIDs: models.UUIDList{catB}, CollectionIDs: models.UUIDList{collX}},
	}
}

func TestCountsNoFilters(t *testing.T) {
	table := Counts(testProducts(), testCatalog(), NewSelection())

	// Plain unconditional tallies over the whole collection.
	assert.Equal(t, 1, table.Get(KeyPrice, "0-100"))
	assert.Equal(t, 2, table.Get(KeyPrice, "101-500"))
	assert.Equal(t, 0, table.Get(KeyPrice, "1000+"))
	assert.Equal(t, 2, table.Get(KeyCategory, catA.String()))
	assert.Equal(t, 1, table.Get(KeyCategory, catB.String()))
	assert.Equal(t, 2, table.Get(KeyRating, "4"))
	assert.Equal(t, 1, table.Get(KeyRating, "3"))
}

func TestCountsCrossGroupRestriction(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(KeyCategory, catA.String())

	table := Counts(testProducts(), testCatalog(), sel)

	// Price counts only see products passing the category filter.
	assert.Equal(t, 1, table.Get(KeyPrice, "0-100"))
	assert.Equal(t, 1, table.Get(KeyPrice, "101-500"))

	// Sibling option in the same conceptual group keeps its full tally.
	assert.Equal(t, 1, table.Get(KeyCategory, catB.String()))
	assert.Equal(t, 2, table.Get(KeyCategory, catA.String()))
}

func TestCountsSameGroupIndependence(t *testing.T) {
	products := testProducts()
	catalog := testCatalog()

	before := Counts(products, catalog, NewSelection())

	sel := NewSelection()
	sel.Toggle(KeyCategory, catA.String())
	after := Counts(products, catalog, sel)

	// Selecting A must not change counts of category siblings...
	assert.Equal(t, before.Get(KeyCategory, catB.String()), after.Get(KeyCategory, catB.String()))
	// ...and the sub-category facet shares the group, so it is unaffected
	// by the category selection too.
	assert.Equal(t, before.Get(KeySubCategory, subCatA1.String()), after.Get(KeySubCategory, subCatA1.String()))
	// ...but options outside the group shrink.
	assert.Less(t, after.Get(KeyCollection, collX.String()), before.Get(KeyCollection, collX.String()))
}

func TestCountsMultipleActiveKeys(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(KeyCategory, catA.String())
	sel.Toggle(KeyPrice, "101-500")

	table := Counts(testProducts(), testCatalog(), sel)

	// Collection counts see both restrictions: only "Mid B" is in X, and it
	// fails the category filter.
	assert.Equal(t, 0, table.Get(KeyCollection, collX.String()))

	// Price options ignore the price selection but honor the category one.
	assert.Equal(t, 1, table.Get(KeyPrice, "0-100"))

	// Category options ignore the category selection but honor price.
	assert.Equal(t, 1, table.Get(KeyCategory, catA.String()))
	assert.Equal(t, 1, table.Get(KeyCategory, catB.String()))
}

func TestCountsMatchDirectRecomputation(t *testing.T) {
	products := testProducts()
	catalog := testCatalog()

	sel := NewSelection()
	sel.Toggle(KeyCategory, catA.String())
	sel.Toggle(KeyRating, "4")

	table := Counts(products, catalog, sel)

	// Count invariant: every cell equals the brute-force tally.
	for _, facet := range catalog {
		group := GroupOf(facet.Key)
		for _, opt := range facet.Options {
			want := 0
			for i := range products {
				p := &products[i]
				if !Predicate(p, facet.Key, opt.Value) {
					continue
				}
				ok := true
				for key := range sel {
					if GroupOf(key) == group {
						continue
					}
					if !matchesAny(p, key, sel[key]) {
						ok = false
						break
					}
				}
				if ok {
					want++
				}
			}
			assert.Equalf(t, want, table.Get(facet.Key, opt.Value), "facet %s option %s", facet.Key, opt.Value)
		}
	}
}

func TestCountsIdempotent(t *testing.T) {
	products := testProducts()
	catalog := testCatalog()
	sel := NewSelection()
	sel.Toggle(KeyPrice, "101-500")
	sel.Toggle(KeyCategory, catA.String())

	first := Counts(products, catalog, sel)
	second := Counts(products, catalog, sel)
	require.Equal(t, first, second)
}

func TestCountsEmptyCollection(t *testing.T) {
	table := Counts(nil, testCatalog(), NewSelection())
	for _, facet := range testCatalog() {
		for _, opt := range facet.Options {
			assert.Zero(t, table.Get(facet.Key, opt.Value))
		}
	}
}

func TestPredicatePriceBands(t *testing.T) {
	p := &models.Product{Price: 100}
	assert.True(t, Predicate(p, KeyPrice, "0-100"))
	assert.False(t, Predicate(p, KeyPrice, "101-500"))

	p.Price = 101
	assert.True(t, Predicate(p, KeyPrice, "101-500"))

	p.Price = 1000
	assert.True(t, Predicate(p, KeyPrice, "1000+"))
	assert.False(t, Predicate(p, KeyPrice, "501-1000"))

	p.Price = 5000
	assert.True(t, Predicate(p, KeyPrice, "1000+"))

	assert.False(t, Predicate(p, KeyPrice, "garbage"))
}

func TestPredicateRatingFloor(t *testing.T) {
	p := &models.Product{Rating: 4.9}
	assert.True(t, Predicate(p, KeyRating, "4"))
	assert.False(t, Predicate(p, KeyRating, "5"))

	p.Rating = 3.0
	assert.True(t, Predicate(p, KeyRating, "3"))

	assert.False(t, Predicate(p, KeyRating, "not-a-number"))
}

func TestPredicateSingleReference(t *testing.T) {
	p := &models.Product{SkillLevelID: &skillBeg, ColorID: &colorRed}
	assert.True(t, Predicate(p, KeySkillLevel, skillBeg.String()))
	assert.True(t, Predicate(p, KeyColor, colorRed.String()))
	assert.False(t, Predicate(p, KeyColor, skillBeg.String()))

	bare := &models.Product{}
	assert.False(t, Predicate(bare, KeySkillLevel, skillBeg.String()))
	assert.False(t, Predicate(bare, KeyDesigner, skillBeg.String()))
}

func TestPredicateTolerantSubCategory(t *testing.T) {
	// Product references a sub-category without declaring its parent
	// category: it still matches the sub-category option.
	p := &models.Product{SubCategoryIDs: models.UUIDList{subCatA1}}
	assert.True(t, Predicate(p, KeySubCategory, subCatA1.String()))
}

func TestPredicateUnknownFacetKey(t *testing.T) {
	p := &models.Product{Price: 50}
	assert.False(t, Predicate(p, "no_such_facet", "anything"))
}

func TestApplyPreservesOrder(t *testing.T) {
	products := testProducts()
	sel := NewSelection()
	sel.Toggle(KeyPrice, "101-500")

	visible := Apply(products, sel)
	require.Len(t, visible, 2)
	assert.Equal(t, "Mid A", visible[0].Name)
	assert.Equal(t, "Mid B", visible[1].Name)
}

func TestApplyEmptySelectionMatchesEverything(t *testing.T) {
	products := testProducts()
	visible := Apply(products, NewSelection())
	assert.Len(t, visible, len(products))
}

func TestMatchesWithinKeyValuesOrTogether(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(KeyCategory, catA.String())
	sel.Toggle(KeyCategory, catB.String())

	for i := range testProducts() {
		p := testProducts()[i]
		assert.True(t, Matches(&p, sel))
	}
}
