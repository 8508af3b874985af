package taxonomy_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kramislife/world-of-minifigs-sub001/models"
	"github.com/kramislife/world-of-minifigs-sub001/services"
	"github.com/kramislife/world-of-minifigs-sub001/taxonomy"
)

// GetCollections godoc
// @Summary Get collection tree
// @Description Returns active parent collections with their sub-collections attached
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CollectionTree}
// @Failure 500 {object} models.ApiResponse
// @Router /store/collections [get]
func GetCollections(c *gin.Context) {
	snap, err := services.LoadCatalog()
	if err != nil {
		log.Printf("ERROR loading catalog snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch collections"))
		return
	}

	idx := taxonomy.NewIndex(snap.Categories, snap.SubCategories, snap.Collections, snap.SubCollections)

	tree := make([]models.CollectionTree, 0, len(snap.Collections))
	for _, parent := range snap.Collections {
		tree = append(tree, models.CollectionTree{
			ID:       parent.ID,
			Name:     parent.Name,
			Children: idx.SubCollectionsOf(parent.ID),
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collections fetched successfully", tree))
}
