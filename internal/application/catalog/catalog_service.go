package catalog

import (
	"context"
	"strings"

	"github.com/roastery/storefront/internal/domain/catalog"
)

// Service answers catalog list and search queries.
type Service struct {
	productRepo catalog.ProductRepository
}

// NewService creates a new catalog Service
func NewService(productRepo catalog.ProductRepository) *Service {
	return &Service{productRepo: productRepo}
}

// List returns the full catalog in insertion order, no pagination.
func (s *Service) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Search returns products whose name or description contains the query,
// case-insensitively. A query that is empty or all whitespace returns
// the full catalog, equivalent to List.
func (s *Service) Search(ctx context.Context, query string) ([]ProductResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}

	products, err := s.productRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}
