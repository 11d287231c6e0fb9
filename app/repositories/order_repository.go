package repositories

import (
	"gorm.io/gorm"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateTx persists a new order inside the caller's transaction.
func (r *OrderRepository) CreateTx(tx *gorm.DB, o *models.Order) error {
	return tx.Create(o).Error
}

// All returns every order in insertion order.
func (r *OrderRepository) All() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("id asc").Find(&orders).Error
	return orders, err
}

// FindByID looks up an order by primary key.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var o models.Order
	err := r.db.First(&o, id).Error
	return o, err
}

// ForProduct returns the orders recorded against a product id, newest first.
func (r *OrderRepository) ForProduct(productID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("product_id = ?", productID).Order("id desc").Find(&orders).Error
	return orders, err
}

// Count returns the number of orders on file.
func (r *OrderRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Order{}).Count(&n).Error
	return n, err
}
