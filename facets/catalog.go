package facets

import (
	"github.com/kramislife/world-of-minifigs-sub001/models"
)

// Option is one selectable value within a facet: a display label plus the
// value that travels through query parameters and count tables. Taxonomy
// options carry a term ID as value; price and rating options carry a range
// token ("101-500", "1000+") or an integer threshold ("4").
type Option struct {
	Label string
	Value string
}

// Facet is a single filterable product dimension with its ordered options.
type Facet struct {
	Key     string
	Label   string
	Options []Option
}

// PriceBands are the fixed storefront price bands, in display order.
var PriceBands = []Option{
	{Label: "Under $100", Value: "0-100"},
	{Label: "$101 - $500", Value: "101-500"},
	{Label: "$501 - $1,000", Value: "501-1000"},
	{Label: "$1,000 & Above", Value: "1000+"},
}

// RatingBands are the fixed rating options, in display order. An option
// matches products whose average rating floors to the threshold.
var RatingBands = []Option{
	{Label: "4 Stars", Value: "4"},
	{Label: "3 Stars", Value: "3"},
	{Label: "2 Stars", Value: "2"},
	{Label: "1 Star", Value: "1"},
}

// BuildCatalog assembles the full ordered facet list for a catalog
// snapshot. Taxonomy facets get one option per term, in snapshot order,
// regardless of whether any product currently references the term (options
// with zero matches render disabled, they are never hidden).
func BuildCatalog(snap *models.CatalogSnapshot) []Facet {
	catalog := []Facet{
		{Key: KeyPrice, Label: "Price", Options: PriceBands},
		{Key: KeyRating, Label: "Rating", Options: RatingBands},
	}

	categories := Facet{Key: KeyCategory, Label: "Category"}
	for _, c := range snap.Categories {
		categories.Options = append(categories.Options, Option{Label: c.Name, Value: c.ID.String()})
	}
	catalog = append(catalog, categories)

	subCategories := Facet{Key: KeySubCategory, Label: "Sub-Category"}
	for _, sc := range snap.SubCategories {
		subCategories.Options = append(subCategories.Options, Option{Label: sc.Name, Value: sc.ID.String()})
	}
	catalog = append(catalog, subCategories)

	collections := Facet{Key: KeyCollection, Label: "Collection"}
	for _, c := range snap.Collections {
		collections.Options = append(collections.Options, Option{Label: c.Name, Value: c.ID.String()})
	}
	catalog = append(catalog, collections)

	subCollections := Facet{Key: KeySubCollection, Label: "Sub-Collection"}
	for _, sc := range snap.SubCollections {
		subCollections.Options = append(subCollections.Options, Option{Label: sc.Name, Value: sc.ID.String()})
	}
	catalog = append(catalog, subCollections)

	skillLevels := Facet{Key: KeySkillLevel, Label: "Skill Level"}
	for _, sl := range snap.SkillLevels {
		skillLevels.Options = append(skillLevels.Options, Option{Label: sl.Name, Value: sl.ID.String()})
	}
	catalog = append(catalog, skillLevels)

	designers := Facet{Key: KeyDesigner, Label: "Designer"}
	for _, d := range snap.Designers {
		designers.Options = append(designers.Options, Option{Label: d.Name, Value: d.ID.String()})
	}
	catalog = append(catalog, designers)

	colors := Facet{Key: KeyColor, Label: "Color"}
	for _, c := range snap.Colors {
		colors.Options = append(colors.Options, Option{Label: c.Name, Value: c.ID.String()})
	}
	catalog = append(catalog, colors)

	return catalog
}
