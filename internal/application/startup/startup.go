// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-go/internal/application/container"
	"github.com/artfolio/artfolio-go/internal/application/services"
	"github.com/artfolio/artfolio-go/internal/infrastructure/caching/cleanup"
	"github.com/artfolio/artfolio-go/internal/infrastructure/caching/manager"
	"github.com/artfolio/artfolio-go/internal/infrastructure/email"
	"github.com/artfolio/artfolio-go/internal/infrastructure/media"
	"github.com/artfolio/artfolio-go/internal/infrastructure/messaging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/performance"
	"github.com/artfolio/artfolio-go/internal/infrastructure/persistence/content"
	"github.com/artfolio/artfolio-go/internal/infrastructure/persistence/database"
	"github.com/artfolio/artfolio-go/internal/presentation/http/server"
	"github.com/artfolio/artfolio-go/pkg/config"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	// Step 1: Channeled logging
	logger, err := logging.NewChanneledLogger(nil)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Startup().Info("Logging initialized")

	// Step 2: Database connection and schema
	logger.Startup().Info("Connecting to database", "driver", config.DBDriver, "path", config.DBPath)
	db, err := database.NewConnectionWithLogger(config.DBDriver, config.DBPath, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Step 3: Cache system
	logger.Startup().Info("Initializing cache system")
	cacheManager := manager.NewManager(logger)

	// Step 4: Repositories, schema, seed data
	artworkRepo := content.NewArtworkRepository(db.DB, cacheManager, logger)
	slideRepo := content.NewSlideRepository(db.DB, cacheManager, logger)

	if err := artworkRepo.EnsureSchema(); err != nil {
		return err
	}
	if err := slideRepo.EnsureSchema(); err != nil {
		return err
	}

	seeded, err := artworkRepo.SeedFromFile(config.CatalogSeedPath)
	if err != nil {
		return fmt.Errorf("catalog seed failed: %w", err)
	}
	if seeded > 0 {
		logger.Startup().Info("Catalog seeded", "artworks", seeded)
	}

	if _, err := slideRepo.SeedFromFile(config.SliderConfigPath); err != nil {
		logger.Startup().Warn("Slider seed skipped", "error", err.Error())
	}

	// Step 5: Infrastructure singletons
	perfTracker := performance.NewTracker(nil)
	broadcaster := messaging.NewGalleryBroadcaster(logger)
	imageProcessor := media.NewImageProcessor(config.MediaPath, logger)

	emailService, err := email.NewService()
	if err != nil {
		logger.Startup().Warn("Email service disabled", "reason", err.Error())
		emailService = nil
	}

	// Step 6: Application services
	catalogService := services.NewCatalogService(artworkRepo, cacheManager, logger)
	galleryService := services.NewGalleryService(catalogService, cacheManager, broadcaster, logger, perfTracker)
	artworkService := services.NewArtworkService(catalogService, emailService, config.SimilarWorksCount, logger)
	sliderService := services.NewSliderService(slideRepo, config.SliderAutoPlayMs)
	featuredService := services.NewFeaturedService(catalogService, config.FeaturedCount)
	sessionService := services.NewSessionService(cacheManager, galleryService, logger)
	authService := services.NewAuthService(logger)
	warmingService := services.NewWarmingService(catalogService, imageProcessor, logger)

	i18nService, err := services.NewI18nService(config.LocalesPath, logger)
	if err != nil {
		return fmt.Errorf("failed to load locale bundles: %w", err)
	}

	appContainer := &container.Container{
		CatalogService:  catalogService,
		GalleryService:  galleryService,
		ArtworkService:  artworkService,
		SliderService:   sliderService,
		FeaturedService: featuredService,
		I18nService:     i18nService,
		SessionService:  sessionService,
		AuthService:     authService,
		WarmingService:  warmingService,
		DB:              db,
		CacheManager:    cacheManager,
		Broadcaster:     broadcaster,
		ImageProcessor:  imageProcessor,
		Logger:          logger,
		PerfTracker:     perfTracker,
	}
	logger.Startup().Info("Dependency injection container assembled")

	// Step 7: Pre-assemble the catalog so the first request never misses
	warmStart := time.Now()
	c, err := catalogService.GetCatalog()
	if err != nil {
		return fmt.Errorf("failed to assemble catalog: %w", err)
	}
	logger.Startup().Info("Catalog warmed", "artworks", c.Len(), "duration", time.Since(warmStart))

	// Step 8: Background workers
	go warmingService.WarmThumbnails(ctx)

	cleanupWorker := cleanup.NewWorker(cacheManager, &cleanup.Config{
		Interval:   config.CleanupInterval,
		SessionTTL: config.SessionTTL,
	}, logger)
	go cleanupWorker.Start(ctx)

	// Step 9: HTTP server
	httpServer := server.New(config.Port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+config.Port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"artworks", c.Len(),
		"port", config.Port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown")

	shutdownStart := time.Now()
	cancelBackgroundTasks()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
