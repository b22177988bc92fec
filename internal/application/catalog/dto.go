package catalog

import (
	"github.com/roastery/storefront/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductResponse is the wire shape of a product. Field names match the
// storefront page's expectations exactly.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Tag         string          `json:"tag,omitempty"`
	Rating      float64         `json:"rating"`
	Image       string          `json:"image"`
}

func toProductResponse(p catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Tag:         p.Tag,
		Rating:      p.Rating,
		Image:       p.Image,
	}
}

func toProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
