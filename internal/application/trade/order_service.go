package trade

import (
	"context"
	"errors"

	"github.com/roastery/storefront/internal/domain/catalog"
	"github.com/roastery/storefront/internal/domain/shared"
	"github.com/roastery/storefront/internal/domain/trade"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// The confirmation text is part of the storefront's contract; the page
// shows it verbatim in the notification toast.
const confirmationMessage = "Order placed successfully!"

// SubmitOrderRequest carries a client-built order: denormalized line
// snapshots, the client-computed total and a customer identity.
type SubmitOrderRequest struct {
	Items    []trade.OrderLine
	Total    decimal.Decimal
	Customer trade.Customer
}

// OrderConfirmation carries the assigned order ID and confirmation text.
type OrderConfirmation struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

// Service accepts orders into the append-only order log.
type Service struct {
	orderRepo   trade.OrderRepository
	productRepo catalog.ProductRepository
	// verifyTotals re-derives prices from the catalog instead of
	// trusting the client. Off by default to match the accepted
	// contract, where the server stores the client total verbatim.
	verifyTotals bool
	logger       *zap.Logger
}

// NewService creates a new order Service
func NewService(orderRepo trade.OrderRepository, productRepo catalog.ProductRepository, verifyTotals bool, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		verifyTotals: verifyTotals,
		logger:       logger.Named("orders"),
	}
}

// Submit validates the order shape, optionally verifies pricing against
// the catalog, appends to the order log and returns the confirmation.
func (s *Service) Submit(ctx context.Context, req SubmitOrderRequest) (*OrderConfirmation, error) {
	order, err := trade.NewOrder(req.Items, req.Total, req.Customer)
	if err != nil {
		return nil, err
	}

	if s.verifyTotals {
		if err := s.verify(ctx, order); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Append(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("New order received",
		zap.Int64("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.Total.String()),
		zap.String("customer", order.Customer.Name),
	)

	return &OrderConfirmation{
		Message: confirmationMessage,
		OrderID: order.ID,
	}, nil
}

// verify checks every line against the authoritative catalog and
// re-derives the total. Unknown products, price drift and total
// mismatches are all rejected.
func (s *Service) verify(ctx context.Context, order *trade.Order) error {
	derived := decimal.Zero
	for _, line := range order.Items {
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("UNKNOWN_PRODUCT", "Order references a product not in the catalog")
			}
			return err
		}
		if !product.Price.Equal(line.Price) {
			return shared.NewDomainError("PRICE_MISMATCH", "Order line price does not match the catalog")
		}
		derived = derived.Add(product.Price)
	}

	if !derived.Equal(order.Total) {
		return shared.NewDomainError("TOTAL_MISMATCH", "Order total does not match the sum of catalog prices")
	}
	return nil
}
