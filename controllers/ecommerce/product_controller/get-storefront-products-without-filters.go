package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kramislife/world-of-minifigs-sub001/models"
	"github.com/kramislife/world-of-minifigs-sub001/services"
)

// getStorefrontProductsWithoutFilters serves the unfiltered listing: the
// whole snapshot, sorted and paginated.
func getStorefrontProductsWithoutFilters(c *gin.Context) {
	page, limit := parsePagination(c)
	sortBy := c.DefaultQuery("sortBy", "newest")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	snap, err := services.LoadCatalog()
	if err != nil {
		log.Printf("ERROR loading catalog snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	// Copy before sorting so the shared snapshot keeps its order.
	visible := make([]models.Product, len(snap.Products))
	copy(visible, snap.Products)
	sortProducts(visible, sortBy, sortOrder)

	totalCount := len(visible)
	totalPages := (totalCount + limit - 1) / limit
	pageItems := paginate(visible, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		toStorefrontResponses(pageItems),
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      totalCount,
			TotalPages: totalPages,
		},
	))
}
