package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type MediaURL struct {
	URL   string `json:"url" binding:"required"`
	Order *int   `json:"order,omitempty"`
}

type ProductMedia struct {
	Primary MediaURL   `json:"primary" binding:"required"`
	Other   []MediaURL `json:"other,omitempty"`
}

// Create custom types for slices (so we can add methods)
type (
	UUIDList []uuid.UUID
	SpecList []SpecRow
)

// SpecRow is one label/value pair on the product detail page.
type SpecRow struct {
	Label   string `json:"label" binding:"required" example:"Piece Count"`
	Content string `json:"content" binding:"required" example:"412"`
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID               uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string       `json:"name" gorm:"not null;index"`
	Description      string       `json:"description" gorm:"not null"`
	Price            float64      `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Discount         float64      `json:"discount" gorm:"type:numeric(5,2);not null;default:0;check:discount >= 0 AND discount <= 100"`
	Rating           float64      `json:"rating" gorm:"type:numeric(3,2);not null;default:0;check:rating >= 0 AND rating <= 5"`
	Stock            int          `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	CategoryIDs      UUIDList     `json:"category_ids" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	SubCategoryIDs   UUIDList     `json:"sub_category_ids" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	CollectionIDs    UUIDList     `json:"collection_ids" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	SubCollectionIDs UUIDList     `json:"sub_collection_ids" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	SkillLevelID     *uuid.UUID   `json:"skill_level_id" gorm:"type:uuid;index"`
	DesignerID       *uuid.UUID   `json:"designer_id" gorm:"type:uuid;index"`
	ColorID          *uuid.UUID   `json:"color_id" gorm:"type:uuid;index"`
	Specs            SpecList     `json:"specs" gorm:"type:jsonb;not null;default:'[]'"`
	Media            ProductMedia `json:"media" gorm:"type:jsonb;not null;default:'{}'"`
	Status           string       `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	Views            int          `json:"views" gorm:"default:0;index:idx_products_views,sort:desc"`
	CreatedAt        time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// DiscountedPrice is the display price after the percent discount.
func (p *Product) DiscountedPrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (1 - p.Discount/100)
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type StorefrontProductResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Discount        float64 `json:"discount,omitempty"`
	DiscountedPrice float64 `json:"discounted_price"`
	Rating          float64 `json:"rating"`
	Stock           int     `json:"stock"`
	Image           string  `json:"image"`
}

type ProductDetailResponse struct {
	ID               uuid.UUID    `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Price            float64      `json:"price"`
	Discount         float64      `json:"discount"`
	DiscountedPrice  float64      `json:"discounted_price"`
	Rating           float64      `json:"rating"`
	Stock            int          `json:"stock"`
	CategoryIDs      []uuid.UUID  `json:"category_ids"`
	SubCategoryIDs   []uuid.UUID  `json:"sub_category_ids"`
	CollectionIDs    []uuid.UUID  `json:"collection_ids"`
	SubCollectionIDs []uuid.UUID  `json:"sub_collection_ids"`
	SkillLevelID     *uuid.UUID   `json:"skill_level_id,omitempty"`
	DesignerID       *uuid.UUID   `json:"designer_id,omitempty"`
	ColorID          *uuid.UUID   `json:"color_id,omitempty"`
	Specs            []SpecRow    `json:"specs"`
	Media            ProductMedia `json:"media"`
	Views            int          `json:"views"`
	CreatedAt        time.Time    `json:"created_at"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

// UUIDList methods
func (u *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*u = make(UUIDList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan UUIDList")
	}
	return json.Unmarshal(bytes, u)
}

func (u UUIDList) Value() (driver.Value, error) {
	if u == nil {
		return json.Marshal([]uuid.UUID{})
	}
	return json.Marshal(u)
}

// Contains reports whether id is in the list.
func (u UUIDList) Contains(id uuid.UUID) bool {
	for _, v := range u {
		if v == id {
			return true
		}
	}
	return false
}

// SpecList methods
func (s *SpecList) Scan(value interface{}) error {
	if value == nil {
		*s = make(SpecList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan SpecList")
	}
	return json.Unmarshal(bytes, s)
}

func (s SpecList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]SpecRow{})
	}
	return json.Marshal(s)
}

// ProductMedia methods
func (m *ProductMedia) Scan(value interface{}) error {
	if value == nil {
		*m = ProductMedia{Other: make([]MediaURL, 0)}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ProductMedia")
	}
	return json.Unmarshal(bytes, m)
}

func (m ProductMedia) Value() (driver.Value, error) {
	return json.Marshal(m)
}
