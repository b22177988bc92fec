package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process liveness
type HealthHandler struct {
	appName string
	env     string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(appName, env string) *HealthHandler {
	return &HealthHandler{appName: appName, env: env}
}

// Register mounts the health probe at the engine root, outside the API
// prefix, so load balancers can reach it without the CORS stack.
func (h *HealthHandler) Register(engine *gin.Engine) {
	engine.GET("/healthz", h.Check)
}

// Check returns 200 while the process is serving
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.appName,
		"env":     h.env,
	})
}
