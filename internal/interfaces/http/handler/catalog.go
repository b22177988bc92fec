package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/roastery/storefront/internal/application/catalog"
)

// CatalogHandler handles product listing and search endpoints
type CatalogHandler struct {
	BaseHandler
	catalogService *catalogapp.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// RegisterRoutes registers catalog routes on the API group
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.List)
	rg.GET("/search", h.Search)
}

// List returns the full catalog as a bare JSON array
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, products)
}

// Search returns products matching the q query parameter. A missing or
// empty q returns the full catalog, same as List.
func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("q")

	products, err := h.catalogService.Search(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, products)
}
