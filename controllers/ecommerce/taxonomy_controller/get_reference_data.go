package taxonomy_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kramislife/world-of-minifigs-sub001/models"
	"github.com/kramislife/world-of-minifigs-sub001/services"
)

// GetReferenceData godoc
// @Summary Get flat reference lists
// @Description Returns skill levels, designers, and colors for facet rendering
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ReferenceData}
// @Failure 500 {object} models.ApiResponse
// @Router /store/reference [get]
func GetReferenceData(c *gin.Context) {
	snap, err := services.LoadCatalog()
	if err != nil {
		log.Printf("ERROR loading catalog snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reference data"))
		return
	}

	data := models.ReferenceData{
		SkillLevels: snap.SkillLevels,
		Designers:   snap.Designers,
		Colors:      snap.Colors,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reference data fetched successfully", data))
}
