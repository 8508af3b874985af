package suggest_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kramislife/world-of-minifigs-sub001/models"
	"github.com/kramislife/world-of-minifigs-sub001/services"
	"github.com/kramislife/world-of-minifigs-sub001/suggest"
	"github.com/kramislife/world-of-minifigs-sub001/utils"
)

// GetSearchSuggestions godoc
// @Summary Get ranked search suggestions
// @Description Returns relevance-ranked, deduplicated suggestion strings grouped by attribute category (product name, category, sub-category, collection, sub-collection, color)
// @Tags store
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} models.ApiResponse{data=models.SuggestionGroups}
// @Failure 500 {object} models.ApiResponse
// @Router /store/search/suggestions [get]
func GetSearchSuggestions(c *gin.Context) {
	query := c.Query("q")

	snap, err := services.LoadCatalog()
	if err != nil {
		log.Printf("ERROR loading catalog snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch suggestions"))
		return
	}

	groups := suggest.Suggestions(query, snap)

	// Tracking is fire-and-forget; a blank query is "no active search".
	if strings.TrimSpace(query) != "" {
		go utils.TrackSearch(query)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Suggestions fetched successfully", groups))
}

// GetTrendingSearches godoc
// @Summary Get trending search terms
// @Description Returns the most-searched storefront queries, best first
// @Tags store
// @Produce json
// @Param limit query int false "Max entries" default(10)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/search/trending [get]
func GetTrendingSearches(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	top, err := utils.TopSearches(limit)
	if err != nil {
		log.Printf("ERROR fetching trending searches: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch trending searches"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Trending searches fetched successfully", top))
}
