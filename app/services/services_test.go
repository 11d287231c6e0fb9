package services_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/repositories"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/services"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/database"
)

// newTestDB opens a throwaway sqlite database in t's temp dir.
// The busy timeout keeps concurrent writers queueing instead of erroring.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "shop_test.db") + "?_busy_timeout=5000"
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}))
	return db
}

type fixture struct {
	db      *gorm.DB
	catalog *services.CatalogService
	orders  *services.OrderService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db := newTestDB(t)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	return fixture{
		db:      db,
		catalog: services.NewCatalogService(productRepo),
		orders:  services.NewOrderService(db, productRepo, orderRepo),
	}
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()

	p := models.Product{Name: name, Price: price, Stock: stock}
	require.NoError(t, db.Create(&p).Error)
	return p
}
