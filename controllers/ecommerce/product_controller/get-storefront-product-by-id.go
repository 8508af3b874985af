package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kramislife/world-of-minifigs-sub001/config"
	"github.com/kramislife/world-of-minifigs-sub001/models"
)

// GetStorefrontProductByID godoc
// @Summary Get single storefront product
// @Description Retrieve one active product with full detail and bump its view counter
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.ProductDetailResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.StoreGorm.WithContext(ctx).
		Where("id = ? AND status = 'Active'", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	// View counter goes through pgx directly; a failed bump never blocks
	// the response.
	if _, err := config.StoreDB.Exec(ctx,
		"UPDATE products SET views = views + 1 WHERE id = $1", id.String()); err != nil {
		log.Printf("⚠️ Failed to bump views for product %s: %v", id, err)
	}

	detail := models.ProductDetailResponse{
		ID:               product.ID,
		Name:             product.Name,
		Description:      product.Description,
		Price:            product.Price,
		Discount:         product.Discount,
		DiscountedPrice:  product.DiscountedPrice(),
		Rating:           product.Rating,
		Stock:            product.Stock,
		CategoryIDs:      product.CategoryIDs,
		SubCategoryIDs:   product.SubCategoryIDs,
		CollectionIDs:    product.CollectionIDs,
		SubCollectionIDs: product.SubCollectionIDs,
		SkillLevelID:     product.SkillLevelID,
		DesignerID:       product.DesignerID,
		ColorID:          product.ColorID,
		Specs:            product.Specs,
		Media:            product.Media,
		Views:            product.Views + 1,
		CreatedAt:        product.CreatedAt,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}
