package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kramislife/world-of-minifigs-sub001/facets"
	"github.com/kramislife/world-of-minifigs-sub001/models"
	"github.com/kramislife/world-of-minifigs-sub001/services"
)

// getStorefrontProductsWithFilters serves the listing when at least one
// facet is selected: the catalog snapshot is filtered in memory with the
// group-aware engine, then sorted and paginated.
func getStorefrontProductsWithFilters(c *gin.Context, sel facets.Selection) {
	page, limit := parsePagination(c)
	sortBy := c.DefaultQuery("sortBy", "newest")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	snap, err := services.LoadCatalog()
	if err != nil {
		log.Printf("ERROR loading catalog snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	visible := facets.Apply(snap.Products, sel)
	sortProducts(visible, sortBy, sortOrder)

	totalCount := len(visible)
	totalPages := (totalCount + limit - 1) / limit
	pageItems := paginate(visible, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products with filters fetched successfully",
		toStorefrontResponses(pageItems),
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      totalCount,
			TotalPages: totalPages,
		},
	))
}
