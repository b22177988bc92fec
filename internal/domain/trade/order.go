package trade

import (
	"time"

	"github.com/roastery/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	// OrderStatusPending is the only status orders take today; the field
	// exists so the log can grow fulfilment states later.
	OrderStatusPending OrderStatus = "pending"
)

// OrderLine is a denormalized snapshot of a product at the moment the
// customer added it to the cart. Duplicates are permitted and each line
// is billed.
type OrderLine struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
}

// Customer identifies who placed the order. The storefront has no
// accounts, so this is whatever the client sent.
type Customer struct {
	Name string `json:"name"`
}

// Order is one entry in the append-only order log. Orders are never
// mutated or deleted after acceptance.
type Order struct {
	ID        int64           `json:"id"`
	Items     []OrderLine     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Customer  Customer        `json:"customer"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"timestamp"`
}

// NewOrder builds an order from client-supplied items and total.
// The total is deliberately NOT recomputed here: the accepted contract
// trusts the client value. Callers that want verification do it before
// constructing the order.
func NewOrder(items []OrderLine, total decimal.Decimal, customer Customer) (*Order, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Order total cannot be negative")
	}

	return &Order{
		Items:     items,
		Total:     total,
		Customer:  customer,
		Status:    OrderStatusPending,
		CreatedAt: time.Now(),
	}, nil
}

// LineTotal sums the line prices. Used by verification, not acceptance.
func (o *Order) LineTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range o.Items {
		sum = sum.Add(line.Price)
	}
	return sum
}
