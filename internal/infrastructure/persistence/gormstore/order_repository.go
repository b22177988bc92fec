package gormstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/roastery/storefront/internal/domain/trade"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRecord is the storage shape of an order. Lines are denormalized
// snapshots, so they are stored as a serialized JSON column rather than
// a join table.
type orderRecord struct {
	ID           int64           `gorm:"primaryKey"`
	Items        string          `gorm:"type:text;not null"`
	Total        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CustomerName string          `gorm:"type:varchar(200)"`
	Status       string          `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
}

func (orderRecord) TableName() string {
	return "orders"
}

// OrderRepository is the GORM-backed append-only order log.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a GORM order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Append assigns the next ID and inserts the order. Count and insert
// run in one transaction so concurrent submissions cannot observe the
// same log length.
func (r *OrderRepository) Append(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&orderRecord{}).Count(&count).Error; err != nil {
			return err
		}

		items, err := json.Marshal(order.Items)
		if err != nil {
			return err
		}

		record := orderRecord{
			ID:           count + 1,
			Items:        string(items),
			Total:        order.Total,
			CustomerName: order.Customer.Name,
			Status:       string(order.Status),
			CreatedAt:    order.CreatedAt,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		order.ID = record.ID
		return nil
	})
}

// FindAll returns all orders in insertion order
func (r *OrderRepository) FindAll(ctx context.Context) ([]trade.Order, error) {
	var records []orderRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}

	orders := make([]trade.Order, 0, len(records))
	for _, record := range records {
		var items []trade.OrderLine
		if err := json.Unmarshal([]byte(record.Items), &items); err != nil {
			return nil, err
		}
		orders = append(orders, trade.Order{
			ID:        record.ID,
			Items:     items,
			Total:     record.Total,
			Customer:  trade.Customer{Name: record.CustomerName},
			Status:    trade.OrderStatus(record.Status),
			CreatedAt: record.CreatedAt,
		})
	}
	return orders, nil
}

// Count returns the length of the order log
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&orderRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
