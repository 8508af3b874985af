package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	store_filter "github.com/kramislife/world-of-minifigs-sub001/controllers/ecommerce/filter_controller"
	store_product "github.com/kramislife/world-of-minifigs-sub001/controllers/ecommerce/product_controller"
	store_suggest "github.com/kramislife/world-of-minifigs-sub001/controllers/ecommerce/suggest_controller"
	store_taxonomy "github.com/kramislife/world-of-minifigs-sub001/controllers/ecommerce/taxonomy_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)        // List with facet filters
		products.GET("/:id", store_product.GetStorefrontProductByID) // Single product
	}

	// Facet metadata (catalog + per-option counts for the current selection)
	store.GET("/filters", store_filter.GetFilterMetadata)

	// Search routes
	search := store.Group("/search")
	{
		search.GET("/suggestions", store_suggest.GetSearchSuggestions)
		search.GET("/trending", store_suggest.GetTrendingSearches)
	}

	// Taxonomy routes
	store.GET("/categories", store_taxonomy.GetCategories)
	store.GET("/collections", store_taxonomy.GetCollections)
	store.GET("/reference", store_taxonomy.GetReferenceData)
}
