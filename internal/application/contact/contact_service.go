package contact

import (
	"context"

	"github.com/roastery/storefront/internal/domain/contact"
	"go.uber.org/zap"
)

const (
	messageAck    = "Message sent successfully!"
	newsletterAck = "Subscribed to coffee updates!"
)

// Ack is the acknowledgment returned for contact and newsletter posts.
type Ack struct {
	Message string `json:"message"`
}

// Service appends contact messages and newsletter subscriptions.
type Service struct {
	messageRepo contact.MessageRepository
	subRepo     contact.SubscriptionRepository
	logger      *zap.Logger
}

// NewService creates a new contact Service
func NewService(messageRepo contact.MessageRepository, subRepo contact.SubscriptionRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		messageRepo: messageRepo,
		subRepo:     subRepo,
		logger:      logger.Named("contact"),
	}
}

// SubmitMessage appends a contact message to the log.
func (s *Service) SubmitMessage(ctx context.Context, name, email, body string) (*Ack, error) {
	message, err := contact.NewMessage(name, email, body)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.Append(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("New message received",
		zap.Int64("message_id", message.ID),
		zap.String("name", message.Name),
		zap.String("email", message.Email),
	)

	return &Ack{Message: messageAck}, nil
}

// Subscribe records a newsletter subscription in the log and returns
// the acknowledgment.
func (s *Service) Subscribe(ctx context.Context, email string) (*Ack, error) {
	sub, err := contact.NewSubscription(email)
	if err != nil {
		return nil, err
	}

	if err := s.subRepo.Append(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("New newsletter subscription", zap.String("email", sub.Email))

	return &Ack{Message: newsletterAck}, nil
}
