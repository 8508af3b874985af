package filter_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kramislife/world-of-minifigs-sub001/facets"
	"github.com/kramislife/world-of-minifigs-sub001/models"
	"github.com/kramislife/world-of-minifigs-sub001/services"
	"github.com/kramislife/world-of-minifigs-sub001/taxonomy"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns every facet with per-option product counts for the current selection, plus the store price range. Sub-category and sub-collection options appear nested under the single expanded parent.
// @Tags store
// @Produce json
// @Param price query string false "Selected price bands, comma-joined"
// @Param rating query string false "Selected rating thresholds, comma-joined"
// @Param product_category query string false "Selected category IDs, comma-joined"
// @Param product_sub_categories query string false "Selected sub-category IDs, comma-joined"
// @Param product_collection query string false "Selected collection IDs, comma-joined"
// @Param product_sub_collections query string false "Selected sub-collection IDs, comma-joined"
// @Param product_skill_level query string false "Selected skill level IDs, comma-joined"
// @Param product_designer query string false "Selected designer IDs, comma-joined"
// @Param product_color query string false "Selected color IDs, comma-joined"
// @Param expanded query string false "Expanded parent option as facetKey:parentValue"
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters [get]
func GetFilterMetadata(c *gin.Context) {
	sel := facets.ParseSelection(c.Request.URL.Query())

	snap, err := services.LoadCatalog()
	if err != nil {
		log.Printf("ERROR loading catalog snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	idx := taxonomy.NewIndex(snap.Categories, snap.SubCategories, snap.Collections, snap.SubCollections)
	catalog := facets.BuildCatalog(snap)
	counts := facets.Counts(snap.Products, catalog, sel)

	drill := parseExpansion(c.Query("expanded"), idx)

	metadata := &models.FilterMetadata{
		Facets:     buildFacetResponses(catalog, counts, idx, drill),
		Selected:   selectedMap(sel),
		PriceRange: priceRange(snap.Products),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

// parseExpansion rebuilds the drill-down slot from the "expanded" query
// parameter (facetKey:parentValue). Anything malformed, non-hierarchical,
// or childless leaves the slot closed.
func parseExpansion(raw string, idx *taxonomy.Index) *facets.DrillDown {
	drill := &facets.DrillDown{}
	key, value, ok := strings.Cut(raw, ":")
	if !ok {
		return drill
	}

	parentID, err := uuid.Parse(value)
	if err != nil {
		return drill
	}

	switch key {
	case facets.KeyCategory:
		if idx.HasSubCategories(parentID) {
			drill.Expand(key, value)
		}
	case facets.KeyCollection:
		if idx.HasSubCollections(parentID) {
			drill.Expand(key, value)
		}
	}
	return drill
}

// buildFacetResponses annotates every option with its count. Sub-category
// and sub-collection facets do not render as top-level groups; their
// options surface as children of the one expanded parent.
func buildFacetResponses(
	catalog []facets.Facet,
	counts facets.CountTable,
	idx *taxonomy.Index,
	drill *facets.DrillDown,
) []models.FacetResponse {
	out := make([]models.FacetResponse, 0, len(catalog))
	for _, facet := range catalog {
		if facet.Key == facets.KeySubCategory || facet.Key == facets.KeySubCollection {
			continue
		}

		resp := models.FacetResponse{Key: facet.Key, Label: facet.Label}
		for _, opt := range facet.Options {
			count := counts.Get(facet.Key, opt.Value)
			option := models.FilterOption{
				Label:    opt.Label,
				Value:    opt.Value,
				Count:    count,
				Disabled: count == 0,
			}

			switch facet.Key {
			case facets.KeyCategory:
				if id, err := uuid.Parse(opt.Value); err == nil {
					option.HasChildren = idx.HasSubCategories(id)
					if drill.IsExpanded(facet.Key, opt.Value) {
						option.Children = subCategoryOptions(idx.SubCategoriesOf(id), counts)
					}
				}
			case facets.KeyCollection:
				if id, err := uuid.Parse(opt.Value); err == nil {
					option.HasChildren = idx.HasSubCollections(id)
					if drill.IsExpanded(facet.Key, opt.Value) {
						option.Children = subCollectionOptions(idx.SubCollectionsOf(id), counts)
					}
				}
			}

			resp.Options = append(resp.Options, option)
		}
		out = append(out, resp)
	}
	return out
}

func subCategoryOptions(children []models.SubCategory, counts facets.CountTable) []models.FilterOption {
	out := make([]models.FilterOption, 0, len(children))
	for _, child := range children {
		count := counts.Get(facets.KeySubCategory, child.ID.String())
		out = append(out, models.FilterOption{
			Label:    child.Name,
			Value:    child.ID.String(),
			Count:    count,
			Disabled: count == 0,
		})
	}
	return out
}

func subCollectionOptions(children []models.SubCollection, counts facets.CountTable) []models.FilterOption {
	out := make([]models.FilterOption, 0, len(children))
	for _, child := range children {
		count := counts.Get(facets.KeySubCollection, child.ID.String())
		out = append(out, models.FilterOption{
			Label:    child.Name,
			Value:    child.ID.String(),
			Count:    count,
			Disabled: count == 0,
		})
	}
	return out
}

// selectedMap echoes the selection back in its addressable query-parameter
// form: comma-joined values, empty keys omitted.
func selectedMap(sel facets.Selection) map[string]string {
	out := make(map[string]string)
	for key, values := range sel.EncodeQuery() {
		if len(values) > 0 {
			out[key] = values[0]
		}
	}
	return out
}

// priceRange scans the snapshot for the min and max product price.
func priceRange(products []models.Product) *models.PriceRangeData {
	if len(products) == 0 {
		return &models.PriceRangeData{Min: 0, Max: 0}
	}
	pr := &models.PriceRangeData{Min: products[0].Price, Max: products[0].Price}
	for i := range products[1:] {
		price := products[i+1].Price
		if price < pr.Min {
			pr.Min = price
		}
		if price > pr.Max {
			pr.Max = price
		}
	}
	return pr
}
