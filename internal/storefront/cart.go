package storefront

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CartLine is a denormalized snapshot of a product taken at the moment
// it was added. The cart deliberately does not reference the catalog:
// a later price change on the server does not reprice lines already in
// the cart.
type CartLine struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
}

// Cart is an ordered list of lines. Adding the same product twice
// yields two lines; quantity is expressed by repetition, as on the
// storefront page.
type Cart struct {
	Lines []CartLine
}

// MarshalJSON serializes the cart as a bare array of lines, the same
// shape the page keeps under its localStorage cart key. An empty cart
// is [], never null.
func (c Cart) MarshalJSON() ([]byte, error) {
	if len(c.Lines) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(c.Lines)
}

// UnmarshalJSON reads the bare-array form back
func (c *Cart) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.Lines)
}

// Add appends a line to the cart
func (c *Cart) Add(line CartLine) {
	c.Lines = append(c.Lines, line)
}

// RemoveAt deletes the line at index i, preserving the order of the
// rest. Out-of-range indexes are reported to the caller.
func (c *Cart) RemoveAt(i int) bool {
	if i < 0 || i >= len(c.Lines) {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Lines = nil
}

// Len returns the number of lines
func (c *Cart) Len() int {
	return len(c.Lines)
}

// Total sums line prices with decimal arithmetic
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Price)
	}
	return total
}
