package taxonomy_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kramislife/world-of-minifigs-sub001/models"
	"github.com/kramislife/world-of-minifigs-sub001/services"
	"github.com/kramislife/world-of-minifigs-sub001/taxonomy"
)

// GetCategories godoc
// @Summary Get category tree
// @Description Returns active parent categories with their sub-categories attached
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryTree}
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	snap, err := services.LoadCatalog()
	if err != nil {
		log.Printf("ERROR loading catalog snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	idx := taxonomy.NewIndex(snap.Categories, snap.SubCategories, snap.Collections, snap.SubCollections)

	tree := make([]models.CategoryTree, 0, len(snap.Categories))
	for _, parent := range snap.Categories {
		tree = append(tree, models.CategoryTree{
			ID:       parent.ID,
			Name:     parent.Name,
			Children: idx.SubCategoriesOf(parent.ID),
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", tree))
}
