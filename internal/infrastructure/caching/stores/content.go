// Package stores provides concrete cache store implementations
package stores

import (
	"sync"
	"time"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
)

// ContentStore implements catalog content caching operations
type ContentStore struct {
	artworks       map[string]*catalog.ArtworkRecord
	allArtworkIDs  []string
	hasIDList      bool
	catalog        *catalog.Catalog
	slides         []*catalog.SlideRecord
	hasSlides      bool
	categoryCounts map[catalog.Category]int
	lastUpdated    time.Time
	mu             sync.RWMutex
}

// NewContentStore creates a new content cache store
func NewContentStore() *ContentStore {
	return &ContentStore{
		artworks:    make(map[string]*catalog.ArtworkRecord),
		lastUpdated: time.Now().UTC(),
	}
}

func (cs *ContentStore) GetArtwork(id string) (*catalog.ArtworkRecord, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	a, found := cs.artworks[id]
	return a, found
}

func (cs *ContentStore) SetArtwork(artwork *catalog.ArtworkRecord) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.artworks[artwork.ID] = artwork
	cs.lastUpdated = time.Now().UTC()
}

func (cs *ContentStore) GetAllArtworkIDs() ([]string, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if !cs.hasIDList {
		return nil, false
	}
	ids := make([]string, len(cs.allArtworkIDs))
	copy(ids, cs.allArtworkIDs)
	return ids, true
}

func (cs *ContentStore) SetAllArtworkIDs(ids []string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.allArtworkIDs = make([]string, len(ids))
	copy(cs.allArtworkIDs, ids)
	cs.hasIDList = true
	cs.lastUpdated = time.Now().UTC()
}

func (cs *ContentStore) AddArtworkID(id string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if !cs.hasIDList {
		return
	}
	for _, existing := range cs.allArtworkIDs {
		if existing == id {
			return
		}
	}
	cs.allArtworkIDs = append(cs.allArtworkIDs, id)
	cs.lastUpdated = time.Now().UTC()
}

func (cs *ContentStore) RemoveArtworkID(id string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if !cs.hasIDList {
		return
	}
	for i, existing := range cs.allArtworkIDs {
		if existing == id {
			cs.allArtworkIDs = append(cs.allArtworkIDs[:i], cs.allArtworkIDs[i+1:]...)
			break
		}
	}
	cs.lastUpdated = time.Now().UTC()
}

func (cs *ContentStore) InvalidateArtwork(id string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.artworks, id)
	cs.catalog = nil
	cs.categoryCounts = nil
	cs.lastUpdated = time.Now().UTC()
}

func (cs *ContentStore) GetCatalog() (*catalog.Catalog, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if cs.catalog == nil {
		return nil, false
	}
	return cs.catalog, true
}

func (cs *ContentStore) SetCatalog(c *catalog.Catalog) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.catalog = c
	cs.lastUpdated = time.Now().UTC()
}

func (cs *ContentStore) GetSlides() ([]*catalog.SlideRecord, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if !cs.hasSlides {
		return nil, false
	}
	slides := make([]*catalog.SlideRecord, len(cs.slides))
	copy(slides, cs.slides)
	return slides, true
}

func (cs *ContentStore) SetSlides(slides []*catalog.SlideRecord) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.slides = make([]*catalog.SlideRecord, len(slides))
	copy(cs.slides, slides)
	cs.hasSlides = true
	cs.lastUpdated = time.Now().UTC()
}

func (cs *ContentStore) GetCategoryCounts() (map[catalog.Category]int, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if cs.categoryCounts == nil {
		return nil, false
	}
	counts := make(map[catalog.Category]int, len(cs.categoryCounts))
	for k, v := range cs.categoryCounts {
		counts[k] = v
	}
	return counts, true
}

func (cs *ContentStore) SetCategoryCounts(counts map[catalog.Category]int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.categoryCounts = make(map[catalog.Category]int, len(counts))
	for k, v := range counts {
		cs.categoryCounts[k] = v
	}
	cs.lastUpdated = time.Now().UTC()
}

// InvalidateContentCache clears all cached catalog content
func (cs *ContentStore) InvalidateContentCache() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.artworks = make(map[string]*catalog.ArtworkRecord)
	cs.allArtworkIDs = nil
	cs.hasIDList = false
	cs.catalog = nil
	cs.slides = nil
	cs.hasSlides = false
	cs.categoryCounts = nil
	cs.lastUpdated = time.Now().UTC()
}

func (cs *ContentStore) LastUpdated() time.Time {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.lastUpdated
}
