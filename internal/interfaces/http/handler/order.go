package handler

import (
	"github.com/gin-gonic/gin"
	tradeapp "github.com/roastery/storefront/internal/application/trade"
	"github.com/roastery/storefront/internal/domain/trade"
	"github.com/roastery/storefront/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
)

// OrderHandler handles order submission
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.Service
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order routes on the API group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.Submit)
}

// OrderLineRequest is one denormalized cart line in a submission
type OrderLineRequest struct {
	ProductID int64           `json:"id" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
}

// SubmitOrderRequest represents a request to place an order
type SubmitOrderRequest struct {
	Items    []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	Total    decimal.Decimal    `json:"total"`
	Customer CustomerRequest    `json:"customer"`
}

// CustomerRequest identifies the customer; the demo has no accounts
type CustomerRequest struct {
	Name string `json:"name"`
}

// Submit accepts an order, appends it to the order log and returns the
// assigned ID with a confirmation message
func (h *OrderHandler) Submit(c *gin.Context) {
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	items := make([]trade.OrderLine, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, trade.OrderLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Image:     line.Image,
		})
	}

	confirmation, err := h.orderService.Submit(c.Request.Context(), tradeapp.SubmitOrderRequest{
		Items:    items,
		Total:    req.Total,
		Customer: trade.Customer{Name: req.Customer.Name},
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, confirmation)
}
