package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio-go/internal/application/services"
	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
	"github.com/artfolio/artfolio-go/internal/infrastructure/caching/manager"
	"github.com/artfolio/artfolio-go/internal/infrastructure/messaging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/performance"
	"github.com/artfolio/artfolio-go/internal/infrastructure/persistence/content"
	"github.com/artfolio/artfolio-go/internal/presentation/http/middleware"
)

// handlerEnv carries the service stack a handler test runs against.
type handlerEnv struct {
	router         *gin.Engine
	galleryService *services.GalleryService
}

func newHandlerEnv(t *testing.T, records ...*catalog.ArtworkRecord) *handlerEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{DefaultLevel: slog.LevelError})
	require.NoError(t, err)
	cache := manager.NewManager(logger)

	artworkRepo := content.NewArtworkRepository(db, cache, logger)
	require.NoError(t, artworkRepo.EnsureSchema())
	for _, r := range records {
		require.NoError(t, artworkRepo.Store(r))
	}

	catalogService := services.NewCatalogService(artworkRepo, cache, logger)
	broadcaster := messaging.NewGalleryBroadcaster(logger)
	tracker := performance.NewTracker(nil)
	galleryService := services.NewGalleryService(catalogService, cache, broadcaster, logger, tracker)
	sessionService := services.NewSessionService(cache, galleryService, logger)
	artworkService := services.NewArtworkService(catalogService, nil, 4, logger)
	featuredService := services.NewFeaturedService(catalogService, 6)

	artworkHandlers := NewArtworkHandlers(artworkService, catalogService, featuredService, logger, tracker)
	sessionHandlers := NewSessionHandlers(sessionService, logger)

	router := gin.New()
	router.GET("/api/v1/works/:id", artworkHandlers.GetArtwork)
	router.POST("/api/v1/session", sessionHandlers.Create)

	return &handlerEnv{router: router, galleryService: galleryService}
}

func inkWork(id string) *catalog.ArtworkRecord {
	return &catalog.ArtworkRecord{
		ID: id, Title: "Ink " + id, Technique: "Ink",
		Category: catalog.CategoryInk, Size: "20x30cm",
		Image: "/media/images/works/" + id + ".jpg",
	}
}

func oilWork(id string) *catalog.ArtworkRecord {
	return &catalog.ArtworkRecord{
		ID: id, Title: "Oil " + id, Technique: "Oil on Canvas",
		Category: catalog.CategoryOil, Size: "30x45cm",
		Image: "/media/images/works/" + id + ".jpg",
	}
}

func TestGetArtworkDetail(t *testing.T) {
	env := newHandlerEnv(t, inkWork("dance"), inkWork("angel"))

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/works/dance", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Record *catalog.ArtworkRecord `json:"record"`
		URL    string                 `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "dance", body.Record.ID)
	assert.Contains(t, body.URL, "/works/dance")
}

func TestGetArtworkNotFoundCarriesRedirect(t *testing.T) {
	env := newHandlerEnv(t, inkWork("dance"))

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/works/ghost", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/gallery", body["redirect"])
	assert.NotEmpty(t, body["error"])
}

func TestCreateSessionAppliesFilterQuery(t *testing.T) {
	env := newHandlerEnv(t, inkWork("dance"), inkWork("angel"), oilWork("spring"))

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/session?filter=ink", nil))

	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := w.Header().Get(middleware.SessionHeader)
	require.NotEmpty(t, sessionID)

	view, err := env.galleryService.View(sessionID, i18n.LangEN)
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryInk, view.Filter)
	assert.Equal(t, 2, view.TotalFiltered)
}

func TestCreateSessionIgnoresUnknownFilterQuery(t *testing.T) {
	env := newHandlerEnv(t, inkWork("dance"), oilWork("spring"))

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/session?filter=sculpture", nil))

	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := w.Header().Get(middleware.SessionHeader)
	require.NotEmpty(t, sessionID)

	view, err := env.galleryService.View(sessionID, i18n.LangEN)
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryAll, view.Filter)
	assert.Equal(t, 2, view.TotalFiltered)
}
