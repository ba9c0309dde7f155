// Package services provides application-level services that orchestrate
// business logic and coordinate between repositories and domain entities.
package services

import (
	"fmt"
	"strings"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/infrastructure/caching/interfaces"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/persistence/content"
)

// CatalogService orchestrates catalog loading and administration with the
// cache-first repository pattern.
type CatalogService struct {
	artworkRepo *content.ArtworkRepository
	cache       interfaces.ContentCache
	logger      *logging.ChanneledLogger
}

// NewCatalogService creates a new catalog application service
func NewCatalogService(artworkRepo *content.ArtworkRepository, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *CatalogService {
	return &CatalogService{
		artworkRepo: artworkRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetCatalog returns the full ordered catalog, cache-first.
func (s *CatalogService) GetCatalog() (*catalog.Catalog, error) {
	if c, found := s.cache.GetCatalog(); found {
		return c, nil
	}

	records, err := s.artworkRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	c := catalog.New(records)
	s.cache.SetCatalog(c)
	s.logger.Content().Info("Catalog assembled", "artworks", c.Len())
	return c, nil
}

// GetArtwork returns one artwork by id, nil when absent.
func (s *CatalogService) GetArtwork(id string) (*catalog.ArtworkRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("artwork ID cannot be empty")
	}
	return s.artworkRepo.FindByID(id)
}

// GetCategoryCounts returns per-category artwork counts including the
// virtual all bucket, cache-first.
func (s *CatalogService) GetCategoryCounts() (map[catalog.Category]int, error) {
	if counts, found := s.cache.GetCategoryCounts(); found {
		return counts, nil
	}

	c, err := s.GetCatalog()
	if err != nil {
		return nil, err
	}

	counts := c.CategoryCounts()
	s.cache.SetCategoryCounts(counts)
	return counts, nil
}

// CreateArtwork validates and stores a new artwork record.
func (s *CatalogService) CreateArtwork(artwork *catalog.ArtworkRecord) error {
	if err := validateArtwork(artwork); err != nil {
		return err
	}

	existing, err := s.artworkRepo.FindByID(artwork.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("artwork %s already exists", artwork.ID)
	}

	if err := s.artworkRepo.Store(artwork); err != nil {
		return fmt.Errorf("failed to create artwork %s: %w", artwork.ID, err)
	}

	s.invalidateDerived()
	s.logger.Content().Info("Artwork created", "id", artwork.ID, "category", artwork.Category)
	return nil
}

// UpdateArtwork validates and updates an existing artwork record.
func (s *CatalogService) UpdateArtwork(artwork *catalog.ArtworkRecord) error {
	if err := validateArtwork(artwork); err != nil {
		return err
	}

	existing, err := s.artworkRepo.FindByID(artwork.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("artwork %s not found", artwork.ID)
	}

	if err := s.artworkRepo.Update(artwork); err != nil {
		return fmt.Errorf("failed to update artwork %s: %w", artwork.ID, err)
	}

	s.invalidateDerived()
	s.logger.Content().Info("Artwork updated", "id", artwork.ID)
	return nil
}

// DeleteArtwork removes an artwork record.
func (s *CatalogService) DeleteArtwork(id string) (*catalog.ArtworkRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("artwork ID cannot be empty")
	}

	existing, err := s.artworkRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("artwork %s not found", id)
	}

	if err := s.artworkRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete artwork %s: %w", id, err)
	}

	s.invalidateDerived()
	s.logger.Content().Info("Artwork deleted", "id", id)
	return existing, nil
}

// Refresh drops every cached catalog artifact and reloads from the database.
// Returns the freshly assembled catalog so callers can push it into live
// gallery sessions.
func (s *CatalogService) Refresh() (*catalog.Catalog, error) {
	s.cache.InvalidateContentCache()
	s.logger.Content().Info("Catalog refresh requested")
	return s.GetCatalog()
}

// Count returns the number of stored artworks.
func (s *CatalogService) Count() (int, error) {
	return s.artworkRepo.Count()
}

// invalidateDerived drops cached catalog artifacts so the next read rebuilds
// them from the updated records.
func (s *CatalogService) invalidateDerived() {
	s.cache.InvalidateContentCache()
}

func validateArtwork(artwork *catalog.ArtworkRecord) error {
	if artwork == nil {
		return fmt.Errorf("artwork cannot be nil")
	}
	if strings.TrimSpace(artwork.ID) == "" {
		return fmt.Errorf("artwork ID cannot be empty")
	}
	if strings.TrimSpace(artwork.Title) == "" {
		return fmt.Errorf("artwork title cannot be empty")
	}
	if strings.TrimSpace(artwork.Image) == "" {
		return fmt.Errorf("artwork image cannot be empty")
	}
	if artwork.Category == catalog.CategoryAll {
		return fmt.Errorf("artwork category must be a concrete category")
	}
	if _, ok := catalog.ParseCategory(string(artwork.Category)); !ok {
		return fmt.Errorf("unknown artwork category %q", artwork.Category)
	}
	return nil
}
