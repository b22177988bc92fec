package memory

import (
	"context"
	"sync"

	"github.com/roastery/storefront/internal/domain/contact"
)

// MessageRepository is the in-memory append-only contact message log.
type MessageRepository struct {
	mu       sync.RWMutex
	messages []contact.Message
}

// NewMessageRepository creates an empty in-memory message log
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

// Append assigns the next ID and appends the message
func (r *MessageRepository) Append(ctx context.Context, message *contact.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	message.ID = int64(len(r.messages)) + 1
	r.messages = append(r.messages, *message)
	return nil
}

// FindAll returns all messages in insertion order
func (r *MessageRepository) FindAll(ctx context.Context) ([]contact.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]contact.Message, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

// Count returns the length of the message log
func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.messages)), nil
}

// SubscriptionRepository is the in-memory newsletter subscription log.
type SubscriptionRepository struct {
	mu   sync.RWMutex
	subs []contact.Subscription
}

// NewSubscriptionRepository creates an empty in-memory subscription log
func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{}
}

// Append assigns the next ID and appends the subscription
func (r *SubscriptionRepository) Append(ctx context.Context, sub *contact.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub.ID = int64(len(r.subs)) + 1
	r.subs = append(r.subs, *sub)
	return nil
}

// FindAll returns all subscriptions in insertion order
func (r *SubscriptionRepository) FindAll(ctx context.Context) ([]contact.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]contact.Subscription, len(r.subs))
	copy(out, r.subs)
	return out, nil
}

// Count returns the number of subscriptions
func (r *SubscriptionRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.subs)), nil
}
