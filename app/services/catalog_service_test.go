package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/services"
)

func TestCreateProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.catalog.CreateProduct(ctx, services.CreateProductInput{
		Name: "Lemon Phenyl", Price: 80, Stock: 50,
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Lemon Phenyl", p.Name)
	assert.Equal(t, 80.0, p.Price)
	assert.Equal(t, 50, p.Stock)
}

func TestCreateProduct_DuplicateName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedProduct(t, f.db, "Pine Phenyl", 90, 40)

	_, err := f.catalog.CreateProduct(ctx, services.CreateProductInput{
		Name: "Pine Phenyl", Price: 95, Stock: 10,
	})
	assert.ErrorIs(t, err, services.ErrDuplicateProduct)
}

func TestListProducts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedProduct(t, f.db, "Lemon Phenyl", 80, 50)
	seedProduct(t, f.db, "Pine Phenyl", 90, 40)
	seedProduct(t, f.db, "Rose Phenyl", 85, 30)

	products, err := f.catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Lemon Phenyl", products[0].Name)
	assert.Equal(t, "Rose Phenyl", products[2].Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestFindByName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seeded := seedProduct(t, f.db, "Rose Phenyl", 85, 30)

	p, err := f.catalog.FindByName(ctx, "Rose Phenyl")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, p.ID)

	_, err = f.catalog.FindByName(ctx, "Jasmine Phenyl")
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestAdjustStock_Restock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := seedProduct(t, f.db, "Lemon Phenyl", 80, 50)

	updated, err := f.catalog.AdjustStock(ctx, p.ID, 25)
	require.NoError(t, err)
	assert.Equal(t, 75, updated.Stock)
}

func TestAdjustStock_NeverNegative(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := seedProduct(t, f.db, "Lemon Phenyl", 80, 10)

	_, err := f.catalog.AdjustStock(ctx, p.ID, -11)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)

	// Stock unchanged after the rejected adjustment.
	got, err := f.catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock)

	// Draining to exactly zero is allowed.
	updated, err := f.catalog.AdjustStock(ctx, p.ID, -10)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)
}

func TestDeleteProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := seedProduct(t, f.db, "Pine Phenyl", 90, 40)

	require.NoError(t, f.catalog.DeleteProduct(ctx, p.ID))

	_, err := f.catalog.GetProduct(ctx, p.ID)
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	err = f.catalog.DeleteProduct(ctx, p.ID)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestDeleteProduct_KeepsOrderHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := seedProduct(t, f.db, "Rose Phenyl", 85, 30)

	order, err := f.orders.PlaceOrder(ctx, services.PlaceOrderInput{
		CustomerName:  "Divakar",
		Phone:         "9876543210",
		Address:       "12 Main Road, Madurai",
		Pincode:       "625001",
		ProductID:     p.ID,
		Quantity:      2,
		PaymentMethod: "Cash On Delivery",
	})
	require.NoError(t, err)

	require.NoError(t, f.catalog.DeleteProduct(ctx, p.ID))

	// The order survives with its name and price snapshot intact.
	kept, err := f.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rose Phenyl", kept.ProductName)
	assert.Equal(t, 170.0, kept.TotalPrice)
}

func TestLowStock(t *testing.T) {
	f := newFixture(t)
	seedProduct(t, f.db, "Lemon Phenyl", 80, 50)
	seedProduct(t, f.db, "Pine Phenyl", 90, 8)
	seedProduct(t, f.db, "Rose Phenyl", 85, 3)

	low, err := f.catalog.LowStock(10)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Rose Phenyl", low[0].Name) // lowest first
	assert.Equal(t, "Pine Phenyl", low[1].Name)
}
