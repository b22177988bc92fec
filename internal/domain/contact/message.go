package contact

import (
	"time"

	"github.com/roastery/storefront/internal/domain/shared"
)

// Message is one entry in the append-only contact message log.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"timestamp"`
}

// Subscription records a newsletter signup. Storing the log keeps the
// acknowledgment honest.
type Subscription struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"timestamp"`
}

// NewMessage creates a contact message
func NewMessage(name, email, body string) (*Message, error) {
	if body == "" {
		return nil, shared.NewDomainError("EMPTY_MESSAGE", "Message body cannot be empty")
	}

	return &Message{
		Name:      name,
		Email:     email,
		Body:      body,
		CreatedAt: time.Now(),
	}, nil
}

// NewSubscription creates a newsletter subscription
func NewSubscription(email string) (*Subscription, error) {
	if email == "" {
		return nil, shared.NewDomainError("EMPTY_EMAIL", "Email cannot be empty")
	}

	return &Subscription{
		Email:     email,
		CreatedAt: time.Now(),
	}, nil
}
