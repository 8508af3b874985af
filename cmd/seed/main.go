package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/kramislife/world-of-minifigs-sub001/config"
	"github.com/kramislife/world-of-minifigs-sub001/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the catalog with demo taxonomy terms and products.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("WORLD OF MINIFIGS - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.StoreGorm.AutoMigrate(
		&models.Category{},
		&models.SubCategory{},
		&models.Collection{},
		&models.SubCollection{},
		&models.SkillLevel{},
		&models.Designer{},
		&models.Color{},
		&models.Product{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	var existing int64
	if err := config.StoreGorm.Model(&models.Product{}).Count(&existing).Error; err != nil {
		log.Fatalf("Database error: %v", err)
	}
	if existing > 0 {
		fmt.Printf("❌ Catalog already has %d products, refusing to reseed\n", existing)
		return
	}

	seedCatalog()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse GET /api/v1/store/products")
}

func seedCatalog() {
	db := config.StoreGorm

	minifigs := models.Category{Name: "Minifigures"}
	sets := models.Category{Name: "Building Sets"}
	for _, c := range []*models.Category{&minifigs, &sets} {
		if err := db.Create(c).Error; err != nil {
			log.Fatalf("Failed to seed category %q: %v", c.Name, err)
		}
	}
	log.Println("✓ Categories seeded")

	subCategories := []models.SubCategory{
		{Name: "Space Crew", CategoryID: minifigs.ID},
		{Name: "Castle Folk", CategoryID: minifigs.ID},
		{Name: "City Builds", CategoryID: sets.ID},
		{Name: "Modular Buildings", CategoryID: sets.ID},
	}
	for i := range subCategories {
		if err := db.Create(&subCategories[i]).Error; err != nil {
			log.Fatalf("Failed to seed sub-category: %v", err)
		}
	}
	log.Println("✓ Sub-categories seeded")

	starVoyage := models.Collection{Name: "Star Voyage"}
	oldTown := models.Collection{Name: "Old Town"}
	for _, c := range []*models.Collection{&starVoyage, &oldTown} {
		if err := db.Create(c).Error; err != nil {
			log.Fatalf("Failed to seed collection %q: %v", c.Name, err)
		}
	}

	subCollections := []models.SubCollection{
		{Name: "Star Cruisers, Starcruisers", CollectionID: starVoyage.ID},
		{Name: "Deep Space Outposts", CollectionID: starVoyage.ID},
		{Name: "Market Square", CollectionID: oldTown.ID},
	}
	for i := range subCollections {
		if err := db.Create(&subCollections[i]).Error; err != nil {
			log.Fatalf("Failed to seed sub-collection: %v", err)
		}
	}
	log.Println("✓ Collections seeded")

	skillLevels := []models.SkillLevel{{Name: "Beginner"}, {Name: "Intermediate"}, {Name: "Expert"}}
	for i := range skillLevels {
		if err := db.Create(&skillLevels[i]).Error; err != nil {
			log.Fatalf("Failed to seed skill level: %v", err)
		}
	}

	designers := []models.Designer{{Name: "Mara Venn"}, {Name: "Otto Brickman"}}
	for i := range designers {
		if err := db.Create(&designers[i]).Error; err != nil {
			log.Fatalf("Failed to seed designer: %v", err)
		}
	}

	colors := []models.Color{
		{Name: "Classic Red", Hex: "#C4281C"},
		{Name: "Galaxy Blue", Hex: "#1F3B8C"},
		{Name: "Forest Green", Hex: "#237841"},
	}
	for i := range colors {
		if err := db.Create(&colors[i]).Error; err != nil {
			log.Fatalf("Failed to seed color: %v", err)
		}
	}
	log.Println("✓ Reference data seeded")

	products := []models.Product{
		{
			Name:             "Red Brick Star Cruiser",
			Description:      "A 412-piece starcruiser with a two-minifig cockpit.",
			Price:            249.99,
			Discount:         10,
			Rating:           4.6,
			Stock:            25,
			CategoryIDs:      models.UUIDList{sets.ID},
			SubCategoryIDs:   models.UUIDList{subCategories[2].ID},
			CollectionIDs:    models.UUIDList{starVoyage.ID},
			SubCollectionIDs: models.UUIDList{subCollections[0].ID},
			SkillLevelID:     &skillLevels[1].ID,
			DesignerID:       &designers[0].ID,
			ColorID:          &colors[0].ID,
			Specs:            models.SpecList{{Label: "Piece Count", Content: "412"}},
			Media:            models.ProductMedia{Primary: models.MediaURL{URL: "https://cdn.example.com/red-brick-star-cruiser.jpg"}},
			Status:           "Active",
		},
		{
			Name:             "Old Town Market Stall",
			Description:      "Cobblestone market stall with fruit carts and three minifigs.",
			Price:            89.5,
			Rating:           4.2,
			Stock:            60,
			CategoryIDs:      models.UUIDList{sets.ID},
			SubCategoryIDs:   models.UUIDList{subCategories[3].ID},
			CollectionIDs:    models.UUIDList{oldTown.ID},
			SubCollectionIDs: models.UUIDList{subCollections[2].ID},
			SkillLevelID:     &skillLevels[0].ID,
			DesignerID:       &designers[1].ID,
			ColorID:          &colors[2].ID,
			Specs:            models.SpecList{{Label: "Piece Count", Content: "187"}},
			Media:            models.ProductMedia{Primary: models.MediaURL{URL: "https://cdn.example.com/old-town-market-stall.jpg"}},
			Status:           "Active",
		},
		{
			Name:             "Deep Space Outpost Command",
			Description:      "Heavy expert build with rotating radar dish and crew quarters.",
			Price:            1099.0,
			Rating:           4.9,
			Stock:            8,
			CategoryIDs:      models.UUIDList{sets.ID},
			SubCategoryIDs:   models.UUIDList{subCategories[2].ID},
			CollectionIDs:    models.UUIDList{starVoyage.ID},
			SubCollectionIDs: models.UUIDList{subCollections[1].ID},
			SkillLevelID:     &skillLevels[2].ID,
			DesignerID:       &designers[0].ID,
			ColorID:          &colors[1].ID,
			Specs:            models.SpecList{{Label: "Piece Count", Content: "2450"}},
			Media:            models.ProductMedia{Primary: models.MediaURL{URL: "https://cdn.example.com/deep-space-outpost.jpg"}},
			Status:           "Active",
		},
		{
			Name:           "Castle Guard Minifig Pack",
			Description:    "Four castle guards with halberds and a banner.",
			Price:          34.99,
			Rating:         3.8,
			Stock:          140,
			CategoryIDs:    models.UUIDList{minifigs.ID},
			SubCategoryIDs: models.UUIDList{subCategories[1].ID},
			SkillLevelID:   &skillLevels[0].ID,
			ColorID:        &colors[2].ID,
			Media:          models.ProductMedia{Primary: models.MediaURL{URL: "https://cdn.example.com/castle-guard-pack.jpg"}},
			Status:         "Active",
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", products[i].Name, err)
		}
	}
	log.Printf("✓ %d products seeded", len(products))
}
