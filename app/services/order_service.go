package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/repositories"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/config"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/cache"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/event"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/logger"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/metrics"
)

// Event names fired by the order service.
const (
	EventOrderPlaced = "order.placed"
	EventStockLow    = "stock.low"
)

// OrderService owns order placement and listing.
type OrderService struct {
	db       *gorm.DB
	products *repositories.ProductRepository
	orders   *repositories.OrderRepository
}

func NewOrderService(db *gorm.DB, products *repositories.ProductRepository, orders *repositories.OrderRepository) *OrderService {
	return &OrderService{db: db, products: products, orders: orders}
}

// PlaceOrderInput is the customer order payload. Total price is never
// accepted from the client; it is derived from the current catalog price.
type PlaceOrderInput struct {
	CustomerName  string `json:"customer_name"  validate:"required,max=255"`
	Phone         string `json:"phone"          validate:"required,digits=10"`
	Address       string `json:"address"        validate:"required"`
	Pincode       string `json:"pincode"        validate:"required,digits=6"`
	ProductID     uint   `json:"product_id"     validate:"required"`
	Quantity      int    `json:"quantity"       validate:"required,gte=1,lte=100"`
	PaymentMethod string `json:"payment_method" validate:"required,in=Cash On Delivery,UPI Payment"`
}

// PlaceOrder reserves stock and records the order in one transaction:
// the guarded decrement (`stock >= quantity`) runs first, the total is
// derived from the price read in the same transaction, and the order row
// is inserted. Two competing orders for the last units cannot both
// succeed; the loser gets ErrInsufficientStock and no order row.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (models.Order, error) {
	var (
		product   models.Product
		order     models.Order
		remaining int
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// The guarded decrement leads the transaction so the write lock is
		// taken before any read; a read-first transaction can hit sqlite's
		// lock-upgrade busy error under concurrent placements.
		ok, err := s.products.Reserve(tx, in.ProductID, in.Quantity)
		if err != nil {
			return fmt.Errorf("order: reserve stock: %w", err)
		}

		// Read inside the transaction: the price for the total, and the
		// already-decremented stock level once the reservation landed.
		if err := tx.First(&product, in.ProductID).Error; err != nil {
			if repositories.IsNotFound(err) {
				return ErrProductNotFound
			}
			return fmt.Errorf("order: load product %d: %w", in.ProductID, err)
		}
		if !ok {
			return ErrInsufficientStock
		}
		remaining = product.Stock

		order = models.Order{
			CustomerName:  in.CustomerName,
			Phone:         in.Phone,
			Address:       in.Address,
			Pincode:       in.Pincode,
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      in.Quantity,
			TotalPrice:    product.Price * float64(in.Quantity),
			PaymentMethod: in.PaymentMethod,
		}
		if in.PaymentMethod == models.PaymentUPI {
			// The shop-owned VPA is recorded on UPI orders.
			order.UPIID = config.ShopUPIID()
		}

		return s.orders.CreateTx(tx, &order)
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrProductNotFound):
		metrics.RecordOrderRejected("product_not_found")
		return models.Order{}, ErrProductNotFound
	case errors.Is(err, ErrInsufficientStock):
		metrics.RecordOrderRejected("insufficient_stock")
		return models.Order{}, ErrInsufficientStock
	default:
		return models.Order{}, err
	}

	metrics.RecordOrderPlaced(order.PaymentMethod, order.TotalPrice)
	metrics.SetStockLevel(product.Name, remaining)
	cache.Forget("shop:catalog") //nolint:errcheck

	logger.WithCtx(ctx).Info("order placed",
		"order_id", order.ID,
		"product_id", product.ID,
		"quantity", order.Quantity,
		"total", order.TotalPrice,
		"payment_method", order.PaymentMethod,
	)

	event.FireAsync(EventOrderPlaced, order)
	if remaining <= config.LowStockThreshold() {
		event.FireAsync(EventStockLow, models.Product{
			ID: product.ID, Name: product.Name, Price: product.Price, Stock: remaining,
		})
	}

	return order, nil
}

// ListOrders returns every order in insertion order.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.All()
	if err != nil {
		return nil, fmt.Errorf("order: list: %w", err)
	}
	return orders, nil
}

// GetOrder returns one order by id.
func (s *OrderService) GetOrder(ctx context.Context, id uint) (models.Order, error) {
	o, err := s.orders.FindByID(id)
	if repositories.IsNotFound(err) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("order: get %d: %w", id, err)
	}
	return o, nil
}
