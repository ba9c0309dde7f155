package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-go/internal/application/services"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/presentation/http/middleware"
)

// ContentHandlers serves the slider config and interface translations
type ContentHandlers struct {
	sliderService *services.SliderService
	i18nService   *services.I18nService
	logger        *logging.ChanneledLogger
}

// NewContentHandlers creates content handlers with injected dependencies
func NewContentHandlers(sliderService *services.SliderService, i18nService *services.I18nService, logger *logging.ChanneledLogger) *ContentHandlers {
	return &ContentHandlers{
		sliderService: sliderService,
		i18nService:   i18nService,
		logger:        logger,
	}
}

// GetSlider returns the homepage slider configuration
func (h *ContentHandlers) GetSlider(c *gin.Context) {
	config, err := h.sliderService.GetConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, config)
}

// GetTranslations returns the translation bundle for one language
func (h *ContentHandlers) GetTranslations(c *gin.Context) {
	lang := i18n.Parse(c.Param("lang"))

	c.JSON(http.StatusOK, gin.H{
		"lang":   lang,
		"bundle": h.i18nService.Bundle(lang),
	})
}

// GetCategoryNames returns localized display names for the filter categories
func (h *ContentHandlers) GetCategoryNames(c *gin.Context) {
	lang := middleware.ResolveLang(c)

	c.JSON(http.StatusOK, gin.H{
		"lang":       lang,
		"categories": h.i18nService.CategoryNames(lang),
	})
}
