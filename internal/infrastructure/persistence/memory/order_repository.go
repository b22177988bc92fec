package memory

import (
	"context"
	"sync"

	"github.com/roastery/storefront/internal/domain/trade"
)

// OrderRepository is the in-memory append-only order log.
//
// The next ID is the log length + 1. A bare count-then-append is a
// lost-update race under concurrent writers, so the mutex is held
// across both steps to keep IDs unique and gapless.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []trade.Order
}

// NewOrderRepository creates an empty in-memory order log
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Append assigns the next ID and appends the order
func (r *OrderRepository) Append(ctx context.Context, order *trade.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = int64(len(r.orders)) + 1
	r.orders = append(r.orders, *order)
	return nil
}

// FindAll returns all orders in insertion order
func (r *OrderRepository) FindAll(ctx context.Context) ([]trade.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]trade.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// Count returns the length of the order log
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}
