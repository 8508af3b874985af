package taxonomy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kramislife/world-of-minifigs-sub001/models"
)

var (
	catID      = uuid.MustParse("018f0000-0000-7000-8000-000000000001")
	otherCatID = uuid.MustParse("018f0000-0000-7000-8000-000000000002")
	collID     = uuid.MustParse("018f0000-0000-7000-8000-000000000003")
	ghostID    = uuid.MustParse("018f0000-0000-7000-8000-0000000000ff")
)

func testIndex() *Index {
	return NewIndex(
		[]models.Category{{ID: catID, Name: "Building Sets"}, {ID: otherCatID, Name: "Minifigures"}},
		[]models.SubCategory{
			{ID: uuid.MustParse("018f0000-0000-7000-8000-000000000011"), Name: "City Builds", CategoryID: catID},
			{ID: uuid.MustParse("018f0000-0000-7000-8000-000000000012"), Name: "Modular Buildings", CategoryID: catID},
			{ID: uuid.MustParse("018f0000-0000-7000-8000-000000000013"), Name: "Orphaned", CategoryID: ghostID},
		},
		[]models.Collection{{ID: collID, Name: "Star Voyage"}},
		[]models.SubCollection{
			{ID: uuid.MustParse("018f0000-0000-7000-8000-000000000021"), Name: "Star Cruisers", CollectionID: collID},
		},
	)
}

func TestSubCategoriesOfPreservesOrder(t *testing.T) {
	idx := testIndex()

	children := idx.SubCategoriesOf(catID)
	require.Len(t, children, 2)
	assert.Equal(t, "City Builds", children[0].Name)
	assert.Equal(t, "Modular Buildings", children[1].Name)
}

func TestChildlessAndUnknownParents(t *testing.T) {
	idx := testIndex()

	// Childless known parent and fully unknown parent both yield an empty
	// sequence, never an error or nil.
	assert.Empty(t, idx.SubCategoriesOf(otherCatID))
	assert.NotNil(t, idx.SubCategoriesOf(otherCatID))
	assert.Empty(t, idx.SubCategoriesOf(uuid.New()))
}

func TestOrphanedSubTermExcluded(t *testing.T) {
	idx := testIndex()

	// A sub-category pointing at a non-existent parent appears under no
	// parent's child list.
	assert.Empty(t, idx.SubCategoriesOf(ghostID))
}

func TestHasChildren(t *testing.T) {
	idx := testIndex()

	assert.True(t, idx.HasSubCategories(catID))
	assert.False(t, idx.HasSubCategories(otherCatID))
	assert.True(t, idx.HasSubCollections(collID))
	assert.False(t, idx.HasSubCollections(uuid.New()))
}

func TestSubCollectionsOf(t *testing.T) {
	idx := testIndex()

	children := idx.SubCollectionsOf(collID)
	require.Len(t, children, 1)
	assert.Equal(t, "Star Cruisers", children[0].Name)
}
