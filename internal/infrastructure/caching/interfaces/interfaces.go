// Package interfaces defines cache operation contracts for the catalog engine.
package interfaces

import (
	"time"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/gallery"
)

// ContentCache defines operations for catalog content caching
type ContentCache interface {
	GetArtwork(id string) (*catalog.ArtworkRecord, bool)
	SetArtwork(artwork *catalog.ArtworkRecord)
	GetAllArtworkIDs() ([]string, bool)
	SetAllArtworkIDs(ids []string)
	AddArtworkID(id string)
	RemoveArtworkID(id string)
	InvalidateArtwork(id string)
	GetCatalog() (*catalog.Catalog, bool)
	SetCatalog(c *catalog.Catalog)
	GetSlides() ([]*catalog.SlideRecord, bool)
	SetSlides(slides []*catalog.SlideRecord)
	GetCategoryCounts() (map[catalog.Category]int, bool)
	SetCategoryCounts(counts map[catalog.Category]int)
	InvalidateContentCache()
	LastUpdated() time.Time
}

// SessionCache defines operations for gallery session state caching
type SessionCache interface {
	GetSession(sessionID string) (*gallery.Controller, bool)
	SetSession(sessionID string, controller *gallery.Controller)
	TouchSession(sessionID string) bool
	RemoveSession(sessionID string)
	GetAllSessionIDs() []string
	SessionCount() int
	PurgeExpired(ttl time.Duration) []string
}

// Cache composes all cache capabilities
type Cache interface {
	ContentCache
	SessionCache
}
