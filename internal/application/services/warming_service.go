package services

import (
	"context"
	"time"

	"github.com/artfolio/artfolio-go/internal/infrastructure/media"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
)

// WarmingService pre-generates WebP thumbnails for the whole catalog so the
// first visitor never pays the resize cost.
type WarmingService struct {
	catalogService *CatalogService
	processor      *media.ImageProcessor
	logger         *logging.ChanneledLogger
}

// NewWarmingService creates a new thumbnail warming service
func NewWarmingService(catalogService *CatalogService, processor *media.ImageProcessor, logger *logging.ChanneledLogger) *WarmingService {
	return &WarmingService{
		catalogService: catalogService,
		processor:      processor,
		logger:         logger,
	}
}

// WarmThumbnails walks the catalog and generates any missing thumbnails.
// Individual failures are logged and skipped; a missing original is not a
// startup error. Run as a goroutine.
func (s *WarmingService) WarmThumbnails(ctx context.Context) {
	start := time.Now()

	c, err := s.catalogService.GetCatalog()
	if err != nil {
		s.logger.Media().Error("Thumbnail warming aborted: catalog unavailable", "error", err.Error())
		return
	}

	var generated, failed int
	for _, record := range c.Records() {
		select {
		case <-ctx.Done():
			s.logger.Media().Info("Thumbnail warming cancelled", "generated", generated, "failed", failed)
			return
		default:
		}

		paths, err := s.processor.GenerateThumbnails(record.Image)
		if err != nil {
			failed++
			s.logger.Media().Warn("Thumbnail generation failed", "id", record.ID, "image", record.Image, "error", err.Error())
			continue
		}
		if len(paths) > 0 {
			generated++
		}
	}

	s.logger.Media().Info("Thumbnail warming finished",
		"artworks", c.Len(), "generated", generated, "failed", failed, "duration", time.Since(start))
}
