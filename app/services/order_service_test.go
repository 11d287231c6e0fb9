package services_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/services"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/event"
)

func validOrder(productID uint, qty int) services.PlaceOrderInput {
	return services.PlaceOrderInput{
		CustomerName:  "Divakar",
		Phone:         "9876543210",
		Address:       "12 Main Road, Madurai",
		Pincode:       "625001",
		ProductID:     productID,
		Quantity:      qty,
		PaymentMethod: "Cash On Delivery",
	}
}

func TestPlaceOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := seedProduct(t, f.db, "Lemon Phenyl", 80, 50)

	order, err := f.orders.PlaceOrder(ctx, validOrder(p.ID, 5))
	require.NoError(t, err)

	// Total derived server-side from catalog price, not trusted input.
	assert.Equal(t, 400.0, order.TotalPrice)
	assert.Equal(t, "Lemon Phenyl", order.ProductName)
	assert.Equal(t, p.ID, order.ProductID)

	got, err := f.catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, got.Stock)
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := seedProduct(t, f.db, "Lemon Phenyl", 80, 50)

	_, err := f.orders.PlaceOrder(ctx, validOrder(p.ID, 51))
	assert.ErrorIs(t, err, services.ErrInsufficientStock)

	// No partial effects: stock untouched, no order row.
	got, err := f.catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Stock)

	orders, err := f.orders.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrder_ExactRemainingStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := seedProduct(t, f.db, "Pine Phenyl", 90, 40)

	order, err := f.orders.PlaceOrder(ctx, validOrder(p.ID, 40))
	require.NoError(t, err)
	assert.Equal(t, 3600.0, order.TotalPrice)

	got, err := f.catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)

	// Nothing left for the next customer.
	_, err = f.orders.PlaceOrder(ctx, validOrder(p.ID, 1))
	assert.ErrorIs(t, err, services.ErrInsufficientStock)
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.PlaceOrder(context.Background(), validOrder(999, 1))
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestPlaceOrder_UPIRecordsShopHandle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := seedProduct(t, f.db, "Rose Phenyl", 85, 30)

	in := validOrder(p.ID, 1)
	in.PaymentMethod = "UPI Payment"

	order, err := f.orders.PlaceOrder(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "UPI Payment", order.PaymentMethod)
}

func TestPlaceOrder_CompetingOrdersExactlyOneWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := seedProduct(t, f.db, "Lemon Phenyl", 80, 10)

	// Two orders both demand the full remaining stock.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.orders.PlaceOrder(ctx, validOrder(p.ID, 10))
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case assert.ErrorIs(t, err, services.ErrInsufficientStock):
			lost++
		}
	}
	assert.Equal(t, 1, won, "exactly one competing order must succeed")
	assert.Equal(t, 1, lost)

	got, err := f.catalog.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)

	orders, err := f.orders.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestPlaceOrder_LowStockAlertsCarryCommittedStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := seedProduct(t, f.db, "Rose Phenyl", 85, 10)

	levels := make(chan int, 2)
	event.Listen(services.EventStockLow, func(payload interface{}) {
		if prod, ok := payload.(models.Product); ok && prod.ID == p.ID {
			levels <- prod.Stock
		}
	})
	t.Cleanup(event.Flush)

	// Two concurrent orders drain 10 → 6 → 2; both land under the default
	// threshold, so each fires one alert.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.orders.PlaceOrder(ctx, validOrder(p.ID, 4))
		}(i)
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	var got []int
	for i := 0; i < 2; i++ {
		select {
		case lvl := <-levels:
			got = append(got, lvl)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for low-stock alerts")
		}
	}
	sort.Ints(got)
	assert.Equal(t, []int{2, 6}, got,
		"each alert must report the stock level its own order committed")
}

func TestListOrders_InsertionOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := seedProduct(t, f.db, "Lemon Phenyl", 80, 50)

	first, err := f.orders.PlaceOrder(ctx, validOrder(p.ID, 1))
	require.NoError(t, err)
	second, err := f.orders.PlaceOrder(ctx, validOrder(p.ID, 2))
	require.NoError(t, err)

	orders, err := f.orders.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID, "first-placed order should list first")
	assert.Equal(t, second.ID, orders[1].ID)
}
