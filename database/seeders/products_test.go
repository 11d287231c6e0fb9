package seeders

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "seed_test.db") + "?_busy_timeout=5000"
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func TestSeedProducts_FillsEmptyTable(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedProducts(db))

	var products []models.Product
	require.NoError(t, db.Order("name asc").Find(&products).Error)
	require.Len(t, products, 3)

	byName := map[string]models.Product{}
	for _, p := range products {
		byName[p.Name] = p
	}
	require.Equal(t, 80.0, byName["Lemon Phenyl"].Price)
	require.Equal(t, 50, byName["Lemon Phenyl"].Stock)
	require.Equal(t, 90.0, byName["Pine Phenyl"].Price)
	require.Equal(t, 85.0, byName["Rose Phenyl"].Price)
}

func TestSeedProducts_Idempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedProducts(db))

	// Simulate the shop having sold some stock, then re-seed.
	require.NoError(t, db.Model(&models.Product{}).
		Where("name = ?", "Lemon Phenyl").
		Update("stock", 7).Error)

	require.NoError(t, SeedProducts(db))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	require.EqualValues(t, 3, count)

	var lemon models.Product
	require.NoError(t, db.Where("name = ?", "Lemon Phenyl").First(&lemon).Error)
	require.Equal(t, 7, lemon.Stock, "re-seeding must not reset live stock")
}
