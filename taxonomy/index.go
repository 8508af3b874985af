package taxonomy

import (
	"github.com/google/uuid"

	"github.com/kramislife/world-of-minifigs-sub001/models"
)

// Index holds parent→children lookup tables for the hierarchical facets
// (category → sub-categories, collection → sub-collections). It is built
// once per catalog snapshot and is read-only afterwards.
type Index struct {
	subCategories  map[uuid.UUID][]models.SubCategory
	subCollections map[uuid.UUID][]models.SubCollection
}

// NewIndex builds the lookup tables from the flat sub-term lists. Input
// order is preserved per parent. A sub-term whose parent is not in the
// given parent list is left out of that parent's children but is untouched
// as a standalone term elsewhere.
func NewIndex(
	categories []models.Category,
	subCategories []models.SubCategory,
	collections []models.Collection,
	subCollections []models.SubCollection,
) *Index {
	knownCategories := make(map[uuid.UUID]bool, len(categories))
	for _, c := range categories {
		knownCategories[c.ID] = true
	}
	knownCollections := make(map[uuid.UUID]bool, len(collections))
	for _, c := range collections {
		knownCollections[c.ID] = true
	}

	idx := &Index{
		subCategories:  make(map[uuid.UUID][]models.SubCategory),
		subCollections: make(map[uuid.UUID][]models.SubCollection),
	}
	for _, sc := range subCategories {
		if !knownCategories[sc.CategoryID] {
			continue
		}
		idx.subCategories[sc.CategoryID] = append(idx.subCategories[sc.CategoryID], sc)
	}
	for _, sc := range subCollections {
		if !knownCollections[sc.CollectionID] {
			continue
		}
		idx.subCollections[sc.CollectionID] = append(idx.subCollections[sc.CollectionID], sc)
	}
	return idx
}

// SubCategoriesOf returns the sub-categories under the given category, in
// input order. Unknown or childless parents yield an empty slice.
func (idx *Index) SubCategoriesOf(categoryID uuid.UUID) []models.SubCategory {
	children := idx.subCategories[categoryID]
	if children == nil {
		return []models.SubCategory{}
	}
	return children
}

// SubCollectionsOf returns the sub-collections under the given collection,
// in input order. Unknown or childless parents yield an empty slice.
func (idx *Index) SubCollectionsOf(collectionID uuid.UUID) []models.SubCollection {
	children := idx.subCollections[collectionID]
	if children == nil {
		return []models.SubCollection{}
	}
	return children
}

// HasSubCategories reports whether the category has at least one child.
// The UI uses this to decide whether to render the expand affordance.
func (idx *Index) HasSubCategories(categoryID uuid.UUID) bool {
	return len(idx.subCategories[categoryID]) > 0
}

// HasSubCollections reports whether the collection has at least one child.
func (idx *Index) HasSubCollections(collectionID uuid.UUID) bool {
	return len(idx.subCollections[collectionID]) > 0
}
