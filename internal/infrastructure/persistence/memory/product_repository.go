package memory

import (
	"context"
	"sync"

	"github.com/roastery/storefront/internal/domain/catalog"
	"github.com/roastery/storefront/internal/domain/shared"
)

// ProductRepository is an in-memory catalog store. Products are held in
// insertion order; IDs are assigned as slice length + 1 under the lock.
type ProductRepository struct {
	mu       sync.RWMutex
	products []catalog.Product
}

// NewProductRepository creates an empty in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindAll returns the full catalog in insertion order
func (r *ProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// FindByID returns the product with the given ID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, shared.ErrNotFound
}

// Search returns products whose name or description contains the query
// caselessly. Linear scan; fine at catalog scale.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Product, 0, len(r.products))
	for i := range r.products {
		if r.products[i].Matches(query) {
			out = append(out, r.products[i])
		}
	}
	return out, nil
}

// Save appends a product, assigning its ID if unset
func (r *ProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == 0 {
		product.ID = int64(len(r.products)) + 1
	}
	r.products = append(r.products, *product)
	return nil
}

// Count returns the number of products
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}
