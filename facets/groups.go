package facets

// Facet keys as they appear in query parameters and count tables.
const (
	KeyPrice         = "price"
	KeyRating        = "rating"
	KeyCategory      = "product_category"
	KeySubCategory   = "product_sub_categories"
	KeyCollection    = "product_collection"
	KeySubCollection = "product_sub_collections"
	KeySkillLevel    = "product_skill_level"
	KeyDesigner      = "product_designer"
	KeyColor         = "product_color"
)

// Conceptual groups. Facet keys in the same group describe the same
// real-world dimension: an active filter in a group never suppresses the
// counts shown for sibling options of that group.
const (
	GroupPrice       = "price"
	GroupRating      = "rating"
	GroupCategories  = "categories"
	GroupCollections = "collections"
	GroupSkillLevel  = "skill_level"
	GroupDesigner    = "designer"
	GroupColor       = "color"
)

// facetGroups is the enumerable key→group table. New facets are added here;
// the count engine never infers grouping from key names.
var facetGroups = map[string]string{
	KeyPrice:         GroupPrice,
	KeyRating:        GroupRating,
	KeyCategory:      GroupCategories,
	KeySubCategory:   GroupCategories,
	KeyCollection:    GroupCollections,
	KeySubCollection: GroupCollections,
	KeySkillLevel:    GroupSkillLevel,
	KeyDesigner:      GroupDesigner,
	KeyColor:         GroupColor,
}

// GroupOf returns the conceptual group for a facet key, or "" for an
// unknown key.
func GroupOf(key string) string {
	return facetGroups[key]
}

// KnownKey reports whether key is a registered facet key.
func KnownKey(key string) bool {
	_, ok := facetGroups[key]
	return ok
}
