package catalog

import (
	"strings"

	"github.com/roastery/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

func init() {
	// The storefront wire format carries prices as bare JSON numbers
	// (18.91, not "18.91"), matching the published API contract.
	decimal.MarshalJSONWithoutQuotes = true
}

// Fold case-folds a string for caseless comparison, so inputs like
// "İstanbul" or "Straße" compare consistently. Casers are stateful and
// not goroutine-safe, so each call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Product represents a purchasable item in the catalog.
// Products are immutable after creation and live for the process lifetime;
// IDs are assigned by the store and stay stable.
type Product struct {
	ID          int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"type:varchar(200);not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(18,4);not null;default:0"`
	Tag         string          `json:"tag,omitempty" gorm:"type:varchar(50)"`
	Rating      float64         `json:"rating" gorm:"not null;default:0"`
	Image       string          `json:"image" gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, price decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
	}, nil
}

// Matches reports whether the query is a caseless substring of the
// product name or description. An empty query matches everything.
func (p *Product) Matches(query string) bool {
	if query == "" {
		return true
	}
	folded := Fold(query)
	return strings.Contains(Fold(p.Name), folded) ||
		strings.Contains(Fold(p.Description), folded)
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
