package gormstore

import (
	"context"
	"time"

	"github.com/roastery/storefront/internal/domain/contact"
	"gorm.io/gorm"
)

type messageRecord struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(200)"`
	Email     string `gorm:"type:varchar(200)"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (messageRecord) TableName() string {
	return "messages"
}

type subscriptionRecord struct {
	ID        int64  `gorm:"primaryKey"`
	Email     string `gorm:"type:varchar(200);not null"`
	CreatedAt time.Time
}

func (subscriptionRecord) TableName() string {
	return "subscriptions"
}

// MessageRepository is the GORM-backed contact message log.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a GORM message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Append assigns the next ID and inserts the message
func (r *MessageRepository) Append(ctx context.Context, message *contact.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&messageRecord{}).Count(&count).Error; err != nil {
			return err
		}

		record := messageRecord{
			ID:        count + 1,
			Name:      message.Name,
			Email:     message.Email,
			Body:      message.Body,
			CreatedAt: message.CreatedAt,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		message.ID = record.ID
		return nil
	})
}

// FindAll returns all messages in insertion order
func (r *MessageRepository) FindAll(ctx context.Context) ([]contact.Message, error) {
	var records []messageRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}

	messages := make([]contact.Message, 0, len(records))
	for _, record := range records {
		messages = append(messages, contact.Message{
			ID:        record.ID,
			Name:      record.Name,
			Email:     record.Email,
			Body:      record.Body,
			CreatedAt: record.CreatedAt,
		})
	}
	return messages, nil
}

// Count returns the length of the message log
func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&messageRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SubscriptionRepository is the GORM-backed newsletter subscription log.
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a GORM subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Append assigns the next ID and inserts the subscription
func (r *SubscriptionRepository) Append(ctx context.Context, sub *contact.Subscription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&subscriptionRecord{}).Count(&count).Error; err != nil {
			return err
		}

		record := subscriptionRecord{
			ID:        count + 1,
			Email:     sub.Email,
			CreatedAt: sub.CreatedAt,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		sub.ID = record.ID
		return nil
	})
}

// Count returns the number of subscriptions
func (r *SubscriptionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&subscriptionRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
