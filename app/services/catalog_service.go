package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/repositories"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/cache"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/logger"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/metrics"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/storage"
)

const (
	catalogCacheKey = "shop:catalog"
	catalogCacheTTL = 60 * time.Second
)

// CatalogService owns product CRUD and stock adjustments.
type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService(products *repositories.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// CreateProductInput is the admin add-product payload.
type CreateProductInput struct {
	Name  string  `json:"name"  validate:"required,max=255"`
	Price float64 `json:"price" validate:"required,gte=1"`
	Stock int     `json:"stock" validate:"required,gte=1"`
}

// CreateProduct adds a catalog row. Product names are unique.
func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductInput) (models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Product{}, fmt.Errorf("catalog: empty product name")
	}

	if _, err := s.products.FindByName(name); err == nil {
		return models.Product{}, ErrDuplicateProduct
	} else if !repositories.IsNotFound(err) {
		return models.Product{}, fmt.Errorf("catalog: lookup %q: %w", name, err)
	}

	p := models.Product{Name: name, Price: in.Price, Stock: in.Stock}
	if err := s.products.Create(&p); err != nil {
		return models.Product{}, fmt.Errorf("catalog: create %q: %w", name, err)
	}

	metrics.SetStockLevel(p.Name, p.Stock)
	cache.Forget(catalogCacheKey) //nolint:errcheck
	logger.WithCtx(ctx).Info("product created", "product_id", p.ID, "name", p.Name)
	return p, nil
}

// ListProducts returns the catalog, via the cache when warm.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if cache.Get(catalogCacheKey, &cached) {
		return cached, nil
	}

	products, err := s.products.All()
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}

	cache.Set(catalogCacheKey, products, catalogCacheTTL) //nolint:errcheck
	return products, nil
}

// GetProduct returns one product by id.
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (models.Product, error) {
	p, err := s.products.FindByID(id)
	if repositories.IsNotFound(err) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("catalog: get %d: %w", id, err)
	}
	return p, nil
}

// FindByName returns one product by its unique name.
func (s *CatalogService) FindByName(ctx context.Context, name string) (models.Product, error) {
	p, err := s.products.FindByName(strings.TrimSpace(name))
	if repositories.IsNotFound(err) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("catalog: find %q: %w", name, err)
	}
	return p, nil
}

// AdjustStock applies a signed stock delta (positive restock, negative
// correction). An adjustment that would drive stock negative is rejected
// with ErrInsufficientStock; stock is never stored below zero.
func (s *CatalogService) AdjustStock(ctx context.Context, id uint, delta int) (models.Product, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return models.Product{}, err
	}

	ok, err := s.products.AdjustStock(id, delta)
	if err != nil {
		return models.Product{}, fmt.Errorf("catalog: adjust stock %d: %w", id, err)
	}
	if !ok {
		return models.Product{}, ErrInsufficientStock
	}

	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	metrics.SetStockLevel(p.Name, p.Stock)
	cache.Forget(catalogCacheKey) //nolint:errcheck
	logger.WithCtx(ctx).Info("stock adjusted",
		"product_id", id, "delta", delta, "stock", p.Stock)
	return p, nil
}

// DeleteProduct removes a product from the catalog. Orders keep their
// snapshot columns, so history is preserved.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.products.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("catalog: delete %d: %w", id, err)
	}

	if p.ImagePath != "" {
		if err := storage.Delete(p.ImagePath); err != nil {
			logger.WithCtx(ctx).Warn("product image cleanup failed",
				"product_id", id, "path", p.ImagePath, "error", err)
		}
	}

	cache.Forget(catalogCacheKey) //nolint:errcheck
	logger.WithCtx(ctx).Info("product deleted", "product_id", id, "name", p.Name)
	return nil
}

// AttachImage stores image data for a product and records its path.
// ext is the file extension including the dot, e.g. ".jpg".
func (s *CatalogService) AttachImage(ctx context.Context, id uint, data []byte, ext string) (string, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("products/%d/image%s", id, ext)
	if err := storage.Put(path, data); err != nil {
		return "", fmt.Errorf("catalog: store image for %d: %w", id, err)
	}

	p.ImagePath = path
	if err := s.products.Update(&p); err != nil {
		return "", fmt.Errorf("catalog: record image path for %d: %w", id, err)
	}

	cache.Forget(catalogCacheKey) //nolint:errcheck
	return storage.URL(path), nil
}

// LowStock returns products at or below threshold, for the hourly sweep.
func (s *CatalogService) LowStock(threshold int) ([]models.Product, error) {
	return s.products.LowStock(threshold)
}
