package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-go/internal/application/services"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/presentation/http/middleware"
)

// OpenLightboxRequest opens the lightbox on a visible artwork.
type OpenLightboxRequest struct {
	ArtworkID    string `json:"artworkId" binding:"required"`
	RestoreFocus string `json:"restoreFocus"`
}

// LightboxHandlers contains all lightbox HTTP handlers
type LightboxHandlers struct {
	galleryService *services.GalleryService
	logger         *logging.ChanneledLogger
}

// NewLightboxHandlers creates lightbox handlers with injected dependencies
func NewLightboxHandlers(galleryService *services.GalleryService, logger *logging.ChanneledLogger) *LightboxHandlers {
	return &LightboxHandlers{
		galleryService: galleryService,
		logger:         logger,
	}
}

// GetLightbox returns the open lightbox, or 404 when closed
func (h *LightboxHandlers) GetLightbox(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	view, open, err := h.galleryService.Lightbox(sessionID, middleware.GetLang(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !open {
		c.JSON(http.StatusNotFound, gin.H{"error": "lightbox is not open"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Open opens the lightbox on a visible artwork
func (h *LightboxHandlers) Open(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req OpenLightboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	view, err := h.galleryService.OpenLightbox(sessionID, middleware.GetLang(c), req.ArtworkID, req.RestoreFocus)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	h.logger.Gallery().Debug("Lightbox opened", "sessionId", sessionID, "artworkId", req.ArtworkID)
	c.JSON(http.StatusOK, view)
}

// Next advances the lightbox, wrapping past the last visible work
func (h *LightboxHandlers) Next(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	view, err := h.galleryService.LightboxNext(sessionID, middleware.GetLang(c))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Prev steps the lightbox back, wrapping before the first visible work
func (h *LightboxHandlers) Prev(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	view, err := h.galleryService.LightboxPrev(sessionID, middleware.GetLang(c))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Close closes the lightbox. Closing an already-closed lightbox is a no-op.
func (h *LightboxHandlers) Close(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	if err := h.galleryService.CloseLightbox(sessionID, middleware.GetLang(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"closed": true})
}
