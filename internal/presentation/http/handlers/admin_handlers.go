package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-go/internal/application/services"
	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/infrastructure/media"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
)

// LoginRequest carries the admin password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// ArtworkRequest is the admin payload for creating or updating an artwork.
// ImageData optionally carries a base64 upload that replaces Image.
type ArtworkRequest struct {
	ID          string `json:"id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	TitleKa     string `json:"title_ka"`
	TitleRu     string `json:"title_ru"`
	Technique   string `json:"technique"`
	TechniqueKa string `json:"technique_ka"`
	TechniqueRu string `json:"technique_ru"`
	Category    string `json:"category" binding:"required"`
	Size        string `json:"size"`
	Year        int    `json:"year"`
	Image       string `json:"image"`
	ImageData   string `json:"imageData"`
	Description string `json:"description"`
}

// SlidesRequest replaces the homepage slide set.
type SlidesRequest struct {
	Slides []*catalog.SlideRecord `json:"slides" binding:"required"`
}

// AdminHandlers contains catalog administration HTTP handlers
type AdminHandlers struct {
	authService    *services.AuthService
	catalogService *services.CatalogService
	galleryService *services.GalleryService
	sliderService  *services.SliderService
	i18nService    *services.I18nService
	processor      *media.ImageProcessor
	logger         *logging.ChanneledLogger
}

// NewAdminHandlers creates admin handlers with injected dependencies
func NewAdminHandlers(authService *services.AuthService, catalogService *services.CatalogService, galleryService *services.GalleryService, sliderService *services.SliderService, i18nService *services.I18nService, processor *media.ImageProcessor, logger *logging.ChanneledLogger) *AdminHandlers {
	return &AdminHandlers{
		authService:    authService,
		catalogService: catalogService,
		galleryService: galleryService,
		sliderService:  sliderService,
		i18nService:    i18nService,
		processor:      processor,
		logger:         logger,
	}
}

// Login verifies the admin password and returns a bearer token
func (h *AdminHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// CreateArtwork stores a new artwork and pushes the catalog to live sessions
func (h *AdminHandlers) CreateArtwork(c *gin.Context) {
	record, ok := h.bindArtwork(c)
	if !ok {
		return
	}

	if err := h.catalogService.CreateArtwork(record); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	h.pushCatalog()
	c.JSON(http.StatusCreated, record)
}

// UpdateArtwork updates an artwork and pushes the catalog to live sessions
func (h *AdminHandlers) UpdateArtwork(c *gin.Context) {
	record, ok := h.bindArtwork(c)
	if !ok {
		return
	}
	record.ID = c.Param("id")

	if err := h.catalogService.UpdateArtwork(record); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	h.pushCatalog()
	c.JSON(http.StatusOK, record)
}

// DeleteArtwork removes an artwork, its media, and pushes the catalog
func (h *AdminHandlers) DeleteArtwork(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.catalogService.DeleteArtwork(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if err := h.processor.DeleteArtworkImageAndThumbnails(removed.Image); err != nil {
		h.logger.Media().Warn("Artwork media cleanup failed", "id", id, "error", err.Error())
	}

	h.pushCatalog()
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// RefreshCatalog reloads the catalog from the database into every session
func (h *AdminHandlers) RefreshCatalog(c *gin.Context) {
	start := time.Now()

	refreshed, err := h.catalogService.Refresh()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.pushCatalog()
	h.logger.Content().Info("Catalog refreshed", "artworks", refreshed.Len(), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"artworks": refreshed.Len()})
}

// ReplaceSlides swaps the homepage slide set
func (h *AdminHandlers) ReplaceSlides(c *gin.Context) {
	var req SlidesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.sliderService.ReplaceSlides(req.Slides); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"slides": len(req.Slides)})
}

// ReloadLocales re-reads the translation bundles from disk
func (h *AdminHandlers) ReloadLocales(c *gin.Context) {
	if err := h.i18nService.Reload(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reloaded": true})
}

// bindArtwork parses the artwork payload and processes an inline image
// upload when present.
func (h *AdminHandlers) bindArtwork(c *gin.Context) (*catalog.ArtworkRecord, bool) {
	var req ArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return nil, false
	}

	category, _ := catalog.ParseCategory(req.Category)
	record := &catalog.ArtworkRecord{
		ID:          req.ID,
		Title:       req.Title,
		TitleKa:     req.TitleKa,
		TitleRu:     req.TitleRu,
		Technique:   req.Technique,
		TechniqueKa: req.TechniqueKa,
		TechniqueRu: req.TechniqueRu,
		Category:    category,
		Size:        req.Size,
		Year:        req.Year,
		Image:       req.Image,
		Description: req.Description,
	}

	if req.ImageData != "" {
		imagePath, _, err := h.processor.ProcessArtworkImage(req.ImageData, req.ID)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "image upload failed: " + err.Error()})
			return nil, false
		}
		record.Image = imagePath
	}

	return record, true
}

// pushCatalog propagates catalog changes to live gallery sessions.
func (h *AdminHandlers) pushCatalog() {
	if err := h.galleryService.PushCatalog(); err != nil {
		h.logger.Gallery().Error("Failed to push refreshed catalog to sessions", "error", err.Error())
	}
}
