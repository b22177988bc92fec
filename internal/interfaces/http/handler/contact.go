package handler

import (
	"github.com/gin-gonic/gin"
	contactapp "github.com/roastery/storefront/internal/application/contact"
	"github.com/roastery/storefront/internal/interfaces/http/middleware"
)

// ContactHandler handles contact form and newsletter endpoints
type ContactHandler struct {
	BaseHandler
	contactService *contactapp.Service
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *contactapp.Service) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// RegisterRoutes registers contact routes on the API group
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.SubmitMessage)
	rg.POST("/newsletter", h.Subscribe)
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// NewsletterRequest represents a newsletter signup
type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SubmitMessage appends a contact message and acknowledges it
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ack, err := h.contactService.SubmitMessage(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, ack)
}

// Subscribe records a newsletter signup and acknowledges it
func (h *ContactHandler) Subscribe(c *gin.Context) {
	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ack, err := h.contactService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, ack)
}
