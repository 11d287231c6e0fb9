package seeders

import (
	"gorm.io/gorm"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
)

func init() {
	Register("products", SeedProducts)
}

// defaultCatalog is the shop's starting lineup. Seeding is idempotent:
// it only runs against an empty products table, so restarts and repeated
// `shopd seed` calls never duplicate or reset rows.
var defaultCatalog = []models.Product{
	{Name: "Lemon Phenyl", Price: 80, Stock: 50},
	{Name: "Pine Phenyl", Price: 90, Stock: 40},
	{Name: "Rose Phenyl", Price: 85, Stock: 30},
}

// SeedProducts inserts the default catalog when the table is empty.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := make([]models.Product, len(defaultCatalog))
	copy(products, defaultCatalog)
	return db.Create(&products).Error
}
