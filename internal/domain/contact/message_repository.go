package contact

import "context"

// MessageRepository is the append-only contact message log. Append
// assigns IDs as log length + 1 under the implementation's lock.
type MessageRepository interface {
	Append(ctx context.Context, message *Message) error
	FindAll(ctx context.Context) ([]Message, error)
	Count(ctx context.Context) (int64, error)
}

// SubscriptionRepository records newsletter signups.
type SubscriptionRepository interface {
	Append(ctx context.Context, sub *Subscription) error
	Count(ctx context.Context) (int64, error)
}
