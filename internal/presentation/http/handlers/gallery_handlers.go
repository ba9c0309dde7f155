// Package handlers provides HTTP handlers for the gallery engine endpoints
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-go/internal/application/services"
	"github.com/artfolio/artfolio-go/internal/domain/gallery"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/performance"
	"github.com/artfolio/artfolio-go/internal/presentation/http/middleware"
)

// FilterRequest selects a category filter.
type FilterRequest struct {
	Category string `json:"category" binding:"required"`
}

// SearchRequest updates the search text. An empty string clears the search.
type SearchRequest struct {
	Text string `json:"text"`
}

// KeyboardRequest routes one keyboard event through the engine.
type KeyboardRequest struct {
	Key           string `json:"key" binding:"required"`
	ViewportWidth int    `json:"viewportWidth"`
}

// GalleryHandlers contains all gallery state HTTP handlers
type GalleryHandlers struct {
	galleryService *services.GalleryService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewGalleryHandlers creates gallery handlers with injected dependencies
func NewGalleryHandlers(galleryService *services.GalleryService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *GalleryHandlers {
	return &GalleryHandlers{
		galleryService: galleryService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetView returns the session's current gallery view
func (h *GalleryHandlers) GetView(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	view, err := h.galleryService.View(sessionID, middleware.GetLang(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// ApplyFilter switches the session's category filter
func (h *GalleryHandlers) ApplyFilter(c *gin.Context) {
	start := time.Now()
	sessionID, _ := middleware.GetSessionID(c)

	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	view, err := h.galleryService.ApplyFilter(sessionID, middleware.GetLang(c), req.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Gallery().Info("Filter applied", "sessionId", sessionID, "category", req.Category, "results", view.TotalFiltered, "duration", time.Since(start))
	c.JSON(http.StatusOK, view)
}

// ApplySearch updates the session's search text
func (h *GalleryHandlers) ApplySearch(c *gin.Context) {
	start := time.Now()
	sessionID, _ := middleware.GetSessionID(c)

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	view, err := h.galleryService.ApplySearch(sessionID, middleware.GetLang(c), req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Gallery().Info("Search applied", "sessionId", sessionID, "results", view.TotalFiltered, "duration", time.Since(start))
	c.JSON(http.StatusOK, view)
}

// ClearAll resets filter and search in one step
func (h *GalleryHandlers) ClearAll(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	view, err := h.galleryService.ClearAll(sessionID, middleware.GetLang(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// LoadMore reveals the next page of results
func (h *GalleryHandlers) LoadMore(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	marker := h.perfTracker.StartOperation("gallery_load_more", sessionID)
	defer marker.Complete()

	view, grew, err := h.galleryService.LoadMore(sessionID, middleware.GetLang(c))
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{
		"view": view,
		"grew": grew,
	})
}

// SetLanguage switches the session's presentation language
func (h *GalleryHandlers) SetLanguage(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	lang := middleware.ResolveLang(c)
	view, err := h.galleryService.SetLanguage(sessionID, lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Gallery().Info("Language switched", "sessionId", sessionID, "lang", string(lang))
	c.JSON(http.StatusOK, view)
}

// HandleKeyboard routes one keyboard event through the session's engine
func (h *GalleryHandlers) HandleKeyboard(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req KeyboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	consumed, view, err := h.galleryService.HandleKey(sessionID, middleware.GetLang(c), gallery.Key(req.Key), req.ViewportWidth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"consumed": consumed,
		"view":     view,
	})
}
