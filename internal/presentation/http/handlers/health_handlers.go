package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-go/internal/application/services"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/performance"
)

// HealthHandlers serves liveness and status endpoints
type HealthHandlers struct {
	catalogService *services.CatalogService
	sessionService *services.SessionService
	perfTracker    *performance.Tracker
}

// NewHealthHandlers creates health handlers with injected dependencies
func NewHealthHandlers(catalogService *services.CatalogService, sessionService *services.SessionService, perfTracker *performance.Tracker) *HealthHandlers {
	return &HealthHandlers{
		catalogService: catalogService,
		sessionService: sessionService,
		perfTracker:    perfTracker,
	}
}

// Health is the liveness probe
func (h *HealthHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status reports catalog size, session count, and uptime
func (h *HealthHandlers) Status(c *gin.Context) {
	count, err := h.catalogService.Count()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"artworks":       count,
		"activeSessions": h.sessionService.ActiveCount(),
		"uptime":         h.perfTracker.Uptime().String(),
	})
}

// Operations reports aggregated performance markers per operation
func (h *HealthHandlers) Operations(c *gin.Context) {
	c.JSON(http.StatusOK, h.perfTracker.Summary())
}
