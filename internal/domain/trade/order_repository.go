package trade

import "context"

// OrderRepository is the append-only order log.
//
// Append assigns the order ID as current log length + 1. Implementations
// MUST serialize the count-then-append so concurrent submissions get
// unique, gapless IDs.
type OrderRepository interface {
	Append(ctx context.Context, order *Order) error
	FindAll(ctx context.Context) ([]Order, error)
	Count(ctx context.Context) (int64, error)
}
