package catalog

import "context"

// ProductRepository defines the persistence contract for products.
// FindAll and Search return products in insertion order.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id int64) (*Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Count(ctx context.Context) (int64, error)
}
