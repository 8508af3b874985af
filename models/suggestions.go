package models

// SuggestionGroups carries the ranked, deduplicated search suggestions, one
// ordered list per attribute category. A category with no matches is an
// empty list, not an error.
type SuggestionGroups struct {
	Products       []string `json:"products"`
	Categories     []string `json:"categories"`
	SubCategories  []string `json:"sub_categories"`
	Collections    []string `json:"collections"`
	SubCollections []string `json:"sub_collections"`
	Colors         []string `json:"colors"`
}

// TrendingSearch is one entry in the trending-search leaderboard.
type TrendingSearch struct {
	Query string `json:"query"`
	Hits  int64  `json:"hits"`
}
