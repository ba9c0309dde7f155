// Package manager provides centralized cache operations by delegating to specialized stores
package manager

import (
	"time"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/gallery"
	"github.com/artfolio/artfolio-go/internal/infrastructure/caching/interfaces"
	"github.com/artfolio/artfolio-go/internal/infrastructure/caching/stores"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/pkg/config"
)

// Interface assertion to ensure Manager implements the full cache contract.
var _ interfaces.Cache = (*Manager)(nil)

// Manager provides centralized cache operations by delegating to specialized stores.
type Manager struct {
	contentStore *stores.ContentStore
	sessionStore *stores.SessionStore
	logger       *logging.ChanneledLogger
}

func NewManager(logger *logging.ChanneledLogger) *Manager {
	if logger != nil {
		logger.Cache().Info("Initializing cache manager", "stores", []string{"content", "sessions"}, "maxSessions", config.MaxSessions)
	}

	return &Manager{
		contentStore: stores.NewContentStore(),
		sessionStore: stores.NewSessionStore(config.MaxSessions),
		logger:       logger,
	}
}

// Content cache delegation

func (m *Manager) GetArtwork(id string) (*catalog.ArtworkRecord, bool) {
	return m.contentStore.GetArtwork(id)
}

func (m *Manager) SetArtwork(artwork *catalog.ArtworkRecord) {
	m.contentStore.SetArtwork(artwork)
}

func (m *Manager) GetAllArtworkIDs() ([]string, bool) {
	return m.contentStore.GetAllArtworkIDs()
}

func (m *Manager) SetAllArtworkIDs(ids []string) {
	m.contentStore.SetAllArtworkIDs(ids)
}

func (m *Manager) AddArtworkID(id string) {
	m.contentStore.AddArtworkID(id)
}

func (m *Manager) RemoveArtworkID(id string) {
	m.contentStore.RemoveArtworkID(id)
}

func (m *Manager) InvalidateArtwork(id string) {
	m.contentStore.InvalidateArtwork(id)
	if m.logger != nil {
		m.logger.Cache().Debug("Invalidated artwork", "id", id)
	}
}

func (m *Manager) GetCatalog() (*catalog.Catalog, bool) {
	return m.contentStore.GetCatalog()
}

func (m *Manager) SetCatalog(c *catalog.Catalog) {
	m.contentStore.SetCatalog(c)
}

func (m *Manager) GetSlides() ([]*catalog.SlideRecord, bool) {
	return m.contentStore.GetSlides()
}

func (m *Manager) SetSlides(slides []*catalog.SlideRecord) {
	m.contentStore.SetSlides(slides)
}

func (m *Manager) GetCategoryCounts() (map[catalog.Category]int, bool) {
	return m.contentStore.GetCategoryCounts()
}

func (m *Manager) SetCategoryCounts(counts map[catalog.Category]int) {
	m.contentStore.SetCategoryCounts(counts)
}

func (m *Manager) InvalidateContentCache() {
	m.contentStore.InvalidateContentCache()
	if m.logger != nil {
		m.logger.Cache().Info("Content cache invalidated")
	}
}

func (m *Manager) LastUpdated() time.Time {
	return m.contentStore.LastUpdated()
}

// Session cache delegation

func (m *Manager) GetSession(sessionID string) (*gallery.Controller, bool) {
	return m.sessionStore.GetSession(sessionID)
}

func (m *Manager) SetSession(sessionID string, controller *gallery.Controller) {
	m.sessionStore.SetSession(sessionID, controller)
}

func (m *Manager) TouchSession(sessionID string) bool {
	return m.sessionStore.TouchSession(sessionID)
}

func (m *Manager) RemoveSession(sessionID string) {
	m.sessionStore.RemoveSession(sessionID)
}

func (m *Manager) GetAllSessionIDs() []string {
	return m.sessionStore.GetAllSessionIDs()
}

func (m *Manager) SessionCount() int {
	return m.sessionStore.SessionCount()
}

func (m *Manager) PurgeExpired(ttl time.Duration) []string {
	return m.sessionStore.PurgeExpired(ttl)
}
