// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/artfolio/artfolio-go/internal/application/services"
	"github.com/artfolio/artfolio-go/internal/infrastructure/caching/manager"
	"github.com/artfolio/artfolio-go/internal/infrastructure/media"
	"github.com/artfolio/artfolio-go/internal/infrastructure/messaging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/performance"
	"github.com/artfolio/artfolio-go/internal/infrastructure/persistence/database"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application services
	CatalogService  *services.CatalogService
	GalleryService  *services.GalleryService
	ArtworkService  *services.ArtworkService
	SliderService   *services.SliderService
	FeaturedService *services.FeaturedService
	I18nService     *services.I18nService
	SessionService  *services.SessionService
	AuthService     *services.AuthService
	WarmingService  *services.WarmingService

	// Infrastructure
	DB             *database.DB
	CacheManager   *manager.Manager
	Broadcaster    *messaging.GalleryBroadcaster
	ImageProcessor *media.ImageProcessor
	Logger         *logging.ChanneledLogger
	PerfTracker    *performance.Tracker
}
