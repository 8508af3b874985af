package product_controller

import (
	"github.com/gin-gonic/gin"

	"github.com/kramislife/world-of-minifigs-sub001/facets"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Get paginated products for storefront with optional faceted filtering and sorting
// @Tags store
// @Produce json
// @Param price query string false "Price band tokens, comma-joined (e.g. 101-500,1000+)"
// @Param rating query string false "Rating thresholds, comma-joined (e.g. 4,3)"
// @Param product_category query string false "Category IDs, comma-joined"
// @Param product_sub_categories query string false "Sub-category IDs, comma-joined"
// @Param product_collection query string false "Collection IDs, comma-joined"
// @Param product_sub_collections query string false "Sub-collection IDs, comma-joined"
// @Param product_skill_level query string false "Skill level IDs, comma-joined"
// @Param product_designer query string false "Designer IDs, comma-joined"
// @Param product_color query string false "Color IDs, comma-joined"
// @Param sortBy query string false "Sort by field" Enums(price, name, newest, rating) default(newest)
// @Param sortOrder query string false "Sort order" Enums(asc, desc) default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	sel := facets.ParseSelection(c.Request.URL.Query())
	if sel.IsEmpty() {
		getStorefrontProductsWithoutFilters(c)
	} else {
		getStorefrontProductsWithFilters(c, sel)
	}
}
