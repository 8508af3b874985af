package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Taxonomy reference tables consumed by the storefront. These are maintained
// by the back-office CMS; the storefront only ever reads them.
//
// A term's Name may carry several comma-separated labels for one underlying
// record (legacy data entry, e.g. "Star Cruiser, Starcruiser"). Readers that
// surface display text split on commas; the record itself stays one term.

// Category is a top-level product category.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// SubCategory belongs to exactly one Category.
type SubCategory struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	Status     string    `json:"status" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Collection is a themed product collection (e.g. a product line).
type Collection struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// SubCollection belongs to exactly one Collection.
type SubCollection struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	CollectionID uuid.UUID `json:"collection_id" gorm:"type:uuid;not null;index"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// SkillLevel grades build difficulty (Beginner, Intermediate, Expert, ...).
type SkillLevel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Designer is the set's credited designer.
type Designer struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Color is a product's dominant color.
type Color struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Hex       string    `json:"hex" gorm:"type:varchar(7)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hooks - auto-generate UUID v7

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (s *SubCategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (s *SubCollection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (s *SkillLevel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (d *Designer) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (c *Color) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName overrides

func (Category) TableName() string      { return "categories" }
func (SubCategory) TableName() string   { return "sub_categories" }
func (Collection) TableName() string    { return "collections" }
func (SubCollection) TableName() string { return "sub_collections" }
func (SkillLevel) TableName() string    { return "skill_levels" }
func (Designer) TableName() string      { return "designers" }
func (Color) TableName() string         { return "colors" }

// ═══════════════════════════════════════════════════════════
// Catalog Snapshot
// ═══════════════════════════════════════════════════════════

// CatalogSnapshot is the read-only view of the catalog the in-memory
// filtering and suggestion engines operate on. One snapshot per computation;
// a missing/empty snapshot behaves as an empty catalog, never as an error.
type CatalogSnapshot struct {
	Products       []Product
	Categories     []Category
	SubCategories  []SubCategory
	Collections    []Collection
	SubCollections []SubCollection
	SkillLevels    []SkillLevel
	Designers      []Designer
	Colors         []Color
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// CategoryTree is a parent category with its sub-categories attached.
type CategoryTree struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	Children []SubCategory `json:"children"`
}

// CollectionTree is a parent collection with its sub-collections attached.
type CollectionTree struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Children []SubCollection `json:"children"`
}

// ReferenceData bundles the flat reference lists facet rendering needs.
type ReferenceData struct {
	SkillLevels []SkillLevel `json:"skill_levels"`
	Designers   []Designer   `json:"designers"`
	Colors      []Color      `json:"colors"`
}
