package gormstore

import (
	"context"
	"errors"

	"github.com/roastery/storefront/internal/domain/catalog"
	"github.com/roastery/storefront/internal/domain/shared"
	"gorm.io/gorm"
)

// ProductRepository is the GORM-backed catalog store.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a GORM product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindAll returns the full catalog in insertion order
func (r *ProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID returns the product with the given ID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var product catalog.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Search filters in memory after loading the catalog, so Unicode case
// folding matches the memory store exactly. SQL LIKE is ASCII-folded
// at best, and the catalog is small.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]catalog.Product, error) {
	products, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Product, 0, len(products))
	for i := range products {
		if products[i].Matches(query) {
			out = append(out, products[i])
		}
	}
	return out, nil
}

// Save inserts a product
func (r *ProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Count returns the number of products
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
