package services

import (
	"database/sql"
	"fmt"
	"log/slog"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/infrastructure/caching/manager"
	"github.com/artfolio/artfolio-go/internal/infrastructure/messaging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/performance"
	"github.com/artfolio/artfolio-go/internal/infrastructure/persistence/content"
)

func newTestLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		DefaultLevel: slog.LevelError,
	})
	require.NoError(t, err)
	return logger
}

// testEnv wires the service stack against an in-memory database.
type testEnv struct {
	db             *sql.DB
	cache          *manager.Manager
	logger         *logging.ChanneledLogger
	artworkRepo    *content.ArtworkRepository
	slideRepo      *content.SlideRepository
	catalogService *CatalogService
}

func newTestEnv(t *testing.T, records ...*catalog.ArtworkRecord) *testEnv {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	logger := newTestLogger(t)
	cache := manager.NewManager(logger)

	artworkRepo := content.NewArtworkRepository(db, cache, logger)
	require.NoError(t, artworkRepo.EnsureSchema())
	slideRepo := content.NewSlideRepository(db, cache, logger)
	require.NoError(t, slideRepo.EnsureSchema())

	for _, r := range records {
		require.NoError(t, artworkRepo.Store(r))
	}

	return &testEnv{
		db:             db,
		cache:          cache,
		logger:         logger,
		artworkRepo:    artworkRepo,
		slideRepo:      slideRepo,
		catalogService: NewCatalogService(artworkRepo, cache, logger),
	}
}

func (e *testEnv) galleryService(t *testing.T) *GalleryService {
	t.Helper()
	broadcaster := messaging.NewGalleryBroadcaster(e.logger)
	tracker := performance.NewTracker(nil)
	return NewGalleryService(e.catalogService, e.cache, broadcaster, e.logger, tracker)
}

func inkRecords(n int) []*catalog.ArtworkRecord {
	records := make([]*catalog.ArtworkRecord, n)
	for i := range records {
		records[i] = &catalog.ArtworkRecord{
			ID:        fmt.Sprintf("ink-%d", i),
			Title:     fmt.Sprintf("Ink %d", i),
			Technique: "Ink",
			Category:  catalog.CategoryInk,
			Size:      "20x30cm",
			Image:     fmt.Sprintf("/media/images/works/ink-%d.jpg", i),
		}
	}
	return records
}

func oilRecord(id string) *catalog.ArtworkRecord {
	return &catalog.ArtworkRecord{
		ID:        id,
		Title:     "Oil " + id,
		Technique: "Oil on Canvas",
		Category:  catalog.CategoryOil,
		Size:      "30x45cm",
		Image:     "/media/images/works/" + id + ".jpg",
	}
}
