package product_controller

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kramislife/world-of-minifigs-sub001/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// sortProducts orders the filtered slice in place. The snapshot arrives
// newest-first, so "newest" descending is a no-op over the input order.
func sortProducts(products []models.Product, sortBy, sortOrder string) {
	asc := strings.EqualFold(sortOrder, "asc")

	var less func(a, b *models.Product) bool
	switch sortBy {
	case "price":
		less = func(a, b *models.Product) bool { return a.Price < b.Price }
	case "name":
		less = func(a, b *models.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case "rating":
		less = func(a, b *models.Product) bool { return a.Rating < b.Rating }
	case "newest":
		less = func(a, b *models.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		if asc {
			return less(&products[i], &products[j])
		}
		return less(&products[j], &products[i])
	})
}

// paginate slices one page out of the filtered collection.
func paginate(products []models.Product, page, limit int) []models.Product {
	start := (page - 1) * limit
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// toStorefrontResponses maps products to the thin card shape the listing
// renders.
func toStorefrontResponses(products []models.Product) []models.StorefrontProductResponse {
	out := make([]models.StorefrontProductResponse, 0, len(products))
	for i := range products {
		p := &products[i]
		out = append(out, models.StorefrontProductResponse{
			ID:              p.ID.String(),
			Name:            p.Name,
			Price:           p.Price,
			Discount:        p.Discount,
			DiscountedPrice: p.DiscountedPrice(),
			Rating:          p.Rating,
			Stock:           p.Stock,
			Image:           p.Media.Primary.URL,
		})
	}
	return out
}
