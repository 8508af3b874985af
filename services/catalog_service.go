package services

import (
	"log"

	"github.com/kramislife/world-of-minifigs-sub001/cache"
	"github.com/kramislife/world-of-minifigs-sub001/config"
	"github.com/kramislife/world-of-minifigs-sub001/models"
)

// LoadCatalog returns the catalog snapshot the in-memory engines run on,
// serving from the TTL cache when it is warm. Only Active products and
// taxonomy terms are part of the storefront view.
//
// Callers treat the returned snapshot as read-only.
func LoadCatalog() (*models.CatalogSnapshot, error) {
	if snap, ok := catalog_cache.GetSnapshot(); ok {
		return snap, nil
	}

	snap, err := fetchCatalogFromDB()
	if err != nil {
		return nil, err
	}
	catalog_cache.SetSnapshot(snap)
	return snap, nil
}

// WarmCatalog pre-fills the cache at startup. A failure is logged, not
// fatal: the first request retries and an unreachable catalog simply means
// an empty storefront until the database is back.
func WarmCatalog() {
	if _, err := LoadCatalog(); err != nil {
		log.Printf("⚠️ catalog warm-up failed: %v", err)
	}
}

func fetchCatalogFromDB() (*models.CatalogSnapshot, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.StoreGorm.WithContext(ctx)
	snap := &models.CatalogSnapshot{}

	if err := db.
		Where("status = ?", "Active").
		Order("created_at DESC").
		Find(&snap.Products).Error; err != nil {
		return nil, err
	}

	if err := db.
		Where("status = ?", "Active").
		Order("created_at ASC").
		Find(&snap.Categories).Error; err != nil {
		return nil, err
	}
	if err := db.
		Where("status = ?", "Active").
		Order("created_at ASC").
		Find(&snap.SubCategories).Error; err != nil {
		return nil, err
	}
	if err := db.
		Where("status = ?", "Active").
		Order("created_at ASC").
		Find(&snap.Collections).Error; err != nil {
		return nil, err
	}
	if err := db.
		Where("status = ?", "Active").
		Order("created_at ASC").
		Find(&snap.SubCollections).Error; err != nil {
		return nil, err
	}

	if err := db.Order("created_at ASC").Find(&snap.SkillLevels).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC").Find(&snap.Designers).Error; err != nil {
		return nil, err
	}
	if err := db.Order("name ASC").Find(&snap.Colors).Error; err != nil {
		return nil, err
	}

	return snap, nil
}
