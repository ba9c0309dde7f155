package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
)

// FeaturedService picks a random selection of works for the homepage.
type FeaturedService struct {
	catalogService *CatalogService
	count          int
	rng            *rand.Rand
	mu             sync.Mutex
}

// NewFeaturedService creates a new featured works service
func NewFeaturedService(catalogService *CatalogService, count int) *FeaturedService {
	return &FeaturedService{
		catalogService: catalogService,
		count:          count,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Pick returns up to count randomly chosen artworks. The selection changes
// per call; with count >= catalog size it is a shuffle of the whole catalog.
func (s *FeaturedService) Pick() ([]*catalog.ArtworkRecord, error) {
	c, err := s.catalogService.GetCatalog()
	if err != nil {
		return nil, err
	}

	records := c.Records()
	shuffled := make([]*catalog.ArtworkRecord, len(records))
	copy(shuffled, records)

	s.mu.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	if len(shuffled) > s.count {
		shuffled = shuffled[:s.count]
	}
	return shuffled, nil
}
