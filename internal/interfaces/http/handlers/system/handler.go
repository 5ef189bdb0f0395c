package system

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/shared/version"
)

// Handler serves the unauthenticated probe endpoints.
type Handler struct {
	backend string
}

func NewHandler(backend string) *Handler {
	return &Handler{backend: backend}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nexus",
		"store":   h.backend,
	})
}

// Version handles GET /version to return the current application version
func (h *Handler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}
