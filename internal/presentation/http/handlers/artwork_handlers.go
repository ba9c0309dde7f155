package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-go/internal/application/services"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/performance"
)

// InquiryRequest carries a visitor's message about an artwork.
type InquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ArtworkHandlers contains artwork detail and inquiry HTTP handlers
type ArtworkHandlers struct {
	artworkService  *services.ArtworkService
	catalogService  *services.CatalogService
	featuredService *services.FeaturedService
	logger          *logging.ChanneledLogger
	perfTracker     *performance.Tracker
}

// NewArtworkHandlers creates artwork handlers with injected dependencies
func NewArtworkHandlers(artworkService *services.ArtworkService, catalogService *services.CatalogService, featuredService *services.FeaturedService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ArtworkHandlers {
	return &ArtworkHandlers{
		artworkService:  artworkService,
		catalogService:  catalogService,
		featuredService: featuredService,
		logger:          logger,
		perfTracker:     perfTracker,
	}
}

// GetArtwork returns the artwork detail payload with neighbors and similar works
func (h *ArtworkHandlers) GetArtwork(c *gin.Context) {
	start := time.Now()
	id := c.Param("id")

	marker := h.perfTracker.StartOperation("get_artwork_detail", "")
	defer marker.Complete()

	detail, err := h.artworkService.GetDetail(id)
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if detail == nil {
		// Unknown ids send the visitor back to the gallery listing.
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "artwork not found",
			"redirect": "/gallery",
		})
		return
	}

	marker.SetSuccess(true)
	h.logger.Content().Debug("Artwork detail served", "id", id, "duration", time.Since(start))
	c.JSON(http.StatusOK, detail)
}

// GetCategoryCounts returns per-category artwork counts for filter badges
func (h *ArtworkHandlers) GetCategoryCounts(c *gin.Context) {
	counts, err := h.catalogService.GetCategoryCounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, counts)
}

// GetFeatured returns a random selection of works for the homepage
func (h *ArtworkHandlers) GetFeatured(c *gin.Context) {
	featured, err := h.featuredService.Pick()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"featured": featured,
		"count":    len(featured),
	})
}

// SendInquiry forwards a visitor's message about an artwork to the artist
func (h *ArtworkHandlers) SendInquiry(c *gin.Context) {
	id := c.Param("id")

	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.artworkService.SendInquiry(id, req.Name, req.Email, req.Message); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"sent": true})
}
