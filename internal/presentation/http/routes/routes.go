// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-go/internal/application/container"
	"github.com/artfolio/artfolio-go/internal/presentation/http/handlers"
	"github.com/artfolio/artfolio-go/internal/presentation/http/middleware"
	"github.com/artfolio/artfolio-go/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(c *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Originals and generated thumbnails are served straight from disk.
	r.Static("/media", config.MediaPath)

	// Initialize handlers
	galleryHandlers := handlers.NewGalleryHandlers(c.GalleryService, c.Logger, c.PerfTracker)
	lightboxHandlers := handlers.NewLightboxHandlers(c.GalleryService, c.Logger)
	artworkHandlers := handlers.NewArtworkHandlers(c.ArtworkService, c.CatalogService, c.FeaturedService, c.Logger, c.PerfTracker)
	contentHandlers := handlers.NewContentHandlers(c.SliderService, c.I18nService, c.Logger)
	sessionHandlers := handlers.NewSessionHandlers(c.SessionService, c.Logger)
	adminHandlers := handlers.NewAdminHandlers(c.AuthService, c.CatalogService, c.GalleryService, c.SliderService, c.I18nService, c.ImageProcessor, c.Logger)
	wsHandlers := handlers.NewWSHandlers(c.Broadcaster, c.SessionService, c.Logger)
	healthHandlers := handlers.NewHealthHandlers(c.CatalogService, c.SessionService, c.PerfTracker)

	// Health endpoints
	r.GET("/health", healthHandlers.Health)
	r.GET("/api/v1/status", healthHandlers.Status)
	r.GET("/api/v1/operations", healthHandlers.Operations)

	// Websocket event stream
	r.GET("/ws/events", wsHandlers.Events)

	api := r.Group("/api/v1")
	{
		// Public content endpoints
		api.GET("/slider", contentHandlers.GetSlider)
		api.GET("/i18n/:lang", contentHandlers.GetTranslations)
		api.GET("/categories", contentHandlers.GetCategoryNames)
		api.GET("/categories/counts", artworkHandlers.GetCategoryCounts)
		api.GET("/works/featured", artworkHandlers.GetFeatured)
		api.GET("/works/:id", artworkHandlers.GetArtwork)
		api.POST("/works/:id/inquiry", artworkHandlers.SendInquiry)

		// Session lifecycle
		api.POST("/session", sessionHandlers.Create)

		// Session-scoped gallery state
		gallery := api.Group("/gallery")
		gallery.Use(middleware.SessionMiddleware(c.SessionService))
		{
			gallery.GET("/view", galleryHandlers.GetView)
			gallery.POST("/filter", galleryHandlers.ApplyFilter)
			gallery.POST("/search", galleryHandlers.ApplySearch)
			gallery.POST("/clear", galleryHandlers.ClearAll)
			gallery.POST("/load-more", galleryHandlers.LoadMore)
			gallery.POST("/language", galleryHandlers.SetLanguage)
			gallery.POST("/keyboard", galleryHandlers.HandleKeyboard)

			gallery.GET("/lightbox", lightboxHandlers.GetLightbox)
			gallery.POST("/lightbox/open", lightboxHandlers.Open)
			gallery.POST("/lightbox/next", lightboxHandlers.Next)
			gallery.POST("/lightbox/prev", lightboxHandlers.Prev)
			gallery.POST("/lightbox/close", lightboxHandlers.Close)

			gallery.DELETE("/session", sessionHandlers.Destroy)
		}

		// Admin endpoints
		api.POST("/admin/login", adminHandlers.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminRequired(c.AuthService))
		{
			admin.POST("/works", adminHandlers.CreateArtwork)
			admin.PUT("/works/:id", adminHandlers.UpdateArtwork)
			admin.DELETE("/works/:id", adminHandlers.DeleteArtwork)
			admin.POST("/catalog/refresh", adminHandlers.RefreshCatalog)
			admin.PUT("/slides", adminHandlers.ReplaceSlides)
			admin.POST("/locales/reload", adminHandlers.ReloadLocales)
		}
	}

	return r
}
