package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// DB exposes the underlying handle for transaction composition.
func (r *ProductRepository) DB() *gorm.DB { return r.db }

// Create persists a new product record.
func (r *ProductRepository) Create(p *models.Product) error {
	return r.db.Create(p).Error
}

// All returns the full catalog ordered by id.
func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("id asc").Find(&products).Error
	return products, err
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var p models.Product
	err := r.db.First(&p, id).Error
	return p, err
}

// FindByName looks up a product by its unique name.
func (r *ProductRepository) FindByName(name string) (models.Product, error) {
	var p models.Product
	err := r.db.Where("name = ?", name).First(&p).Error
	return p, err
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(p *models.Product) error {
	return r.db.Save(p).Error
}

// AdjustStock changes stock by delta (positive restock, negative correction).
// The guarded WHERE clause refuses any adjustment that would take stock
// below zero; reports whether a row was changed.
func (r *ProductRepository) AdjustStock(id uint, delta int) (bool, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	return res.RowsAffected > 0, res.Error
}

// Reserve atomically decrements stock by qty within tx, refusing to go
// below zero. Returns false when the product is missing or stock is short.
func (r *ProductRepository) Reserve(tx *gorm.DB, id uint, qty int) (bool, error) {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	return res.RowsAffected > 0, res.Error
}

// Delete removes a product row. Order history keeps its snapshot columns,
// so past orders are unaffected.
func (r *ProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of catalog rows.
func (r *ProductRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Product{}).Count(&n).Error
	return n, err
}

// LowStock returns products whose stock is at or below threshold.
func (r *ProductRepository) LowStock(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("stock <= ?", threshold).Order("stock asc").Find(&products).Error
	return products, err
}

// IsNotFound reports whether err is gorm's record-not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
