package services

import (
	"fmt"
	"strings"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/infrastructure/email"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/pkg/config"
)

// ArtworkDetail is the full payload for an artwork page: the record itself,
// its catalog neighbors, a handful of related works, and the canonical URL
// the view layer uses for share links.
type ArtworkDetail struct {
	Record  *catalog.ArtworkRecord   `json:"record"`
	Prev    *catalog.ArtworkRecord   `json:"prev,omitempty"`
	Next    *catalog.ArtworkRecord   `json:"next,omitempty"`
	Similar []*catalog.ArtworkRecord `json:"similar"`
	URL     string                   `json:"url"`
}

// ArtworkService orchestrates artwork detail pages and visitor inquiries.
type ArtworkService struct {
	catalogService *CatalogService
	emailService   email.Service
	similarCount   int
	logger         *logging.ChanneledLogger
}

// NewArtworkService creates a new artwork application service. The email
// service may be nil when no provider is configured; inquiries then fail
// with a clear error instead of at startup.
func NewArtworkService(catalogService *CatalogService, emailService email.Service, similarCount int, logger *logging.ChanneledLogger) *ArtworkService {
	return &ArtworkService{
		catalogService: catalogService,
		emailService:   emailService,
		similarCount:   similarCount,
		logger:         logger,
	}
}

// GetDetail assembles the artwork detail payload. Prev and Next follow the
// catalog's authoring order and do not wrap: the first work has no Prev,
// the last has no Next.
func (s *ArtworkService) GetDetail(id string) (*ArtworkDetail, error) {
	if id == "" {
		return nil, fmt.Errorf("artwork ID cannot be empty")
	}

	c, err := s.catalogService.GetCatalog()
	if err != nil {
		return nil, err
	}

	record, found := c.ByID(id)
	if !found {
		return nil, nil
	}

	index := c.IndexOf(id)
	detail := &ArtworkDetail{
		Record:  record,
		Prev:    c.At(index - 1),
		Next:    c.At(index + 1),
		Similar: s.similarWorks(c, record),
		URL:     fmt.Sprintf("%s/works/%s", config.CanonicalBaseURL, record.ID),
	}
	return detail, nil
}

// SendInquiry forwards a visitor's message about an artwork to the artist.
func (s *ArtworkService) SendInquiry(artworkID, senderName, senderEmail, message string) error {
	if s.emailService == nil {
		return fmt.Errorf("inquiries are not available: no email provider configured")
	}
	if strings.TrimSpace(senderName) == "" {
		return fmt.Errorf("sender name cannot be empty")
	}
	if !strings.Contains(senderEmail, "@") {
		return fmt.Errorf("sender email is invalid")
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("message cannot be empty")
	}

	artwork, err := s.catalogService.GetArtwork(artworkID)
	if err != nil {
		return err
	}
	if artwork == nil {
		return fmt.Errorf("artwork %s not found", artworkID)
	}

	if err := s.emailService.SendArtworkInquiry(senderName, senderEmail, message, artwork); err != nil {
		s.logger.Email().Error("Inquiry send failed", "artworkId", artworkID, "error", err.Error())
		return err
	}

	s.logger.Email().Info("Inquiry sent", "artworkId", artworkID)
	return nil
}

// similarWorks picks other artworks from the same category in catalog order,
// capped at the configured count.
func (s *ArtworkService) similarWorks(c *catalog.Catalog, record *catalog.ArtworkRecord) []*catalog.ArtworkRecord {
	similar := make([]*catalog.ArtworkRecord, 0, s.similarCount)
	for _, candidate := range c.Records() {
		if candidate.ID == record.ID || candidate.Category != record.Category {
			continue
		}
		similar = append(similar, candidate)
		if len(similar) == s.similarCount {
			break
		}
	}
	return similar
}
