package services

import (
	"fmt"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
	"github.com/artfolio/artfolio-go/internal/infrastructure/caching/interfaces"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/security"
)

// SessionService manages gallery session lifecycles. Session IDs are ULIDs
// handed to the client and echoed back on every request.
type SessionService struct {
	cache          interfaces.SessionCache
	galleryService *GalleryService
	logger         *logging.ChanneledLogger
}

// NewSessionService creates a new session application service
func NewSessionService(cache interfaces.SessionCache, galleryService *GalleryService, logger *logging.ChanneledLogger) *SessionService {
	return &SessionService{
		cache:          cache,
		galleryService: galleryService,
		logger:         logger,
	}
}

// Create mints a new session with its own gallery controller. A non-empty
// initialFilter is applied once at creation when it passes the category
// whitelist; anything else is ignored and the session starts at "all".
func (s *SessionService) Create(lang i18n.Lang, initialFilter string) (string, error) {
	sessionID := security.GenerateULID()

	if _, err := s.galleryService.GetOrCreate(sessionID, lang); err != nil {
		return "", fmt.Errorf("failed to initialize session: %w", err)
	}

	if initialFilter != "" {
		if _, ok := catalog.ParseCategory(initialFilter); ok {
			if _, err := s.galleryService.ApplyFilter(sessionID, lang, initialFilter); err != nil {
				return "", fmt.Errorf("failed to apply initial filter: %w", err)
			}
		} else {
			s.logger.Session().Debug("Initial filter ignored", "sessionId", sessionID, "raw", initialFilter)
		}
	}

	s.logger.Session().Info("Session created", "sessionId", sessionID, "lang", string(lang), "active", s.cache.SessionCount())
	return sessionID, nil
}

// Exists reports whether a session is live, refreshing its idle timer.
func (s *SessionService) Exists(sessionID string) bool {
	return s.cache.TouchSession(sessionID)
}

// Destroy removes a session and its controller.
func (s *SessionService) Destroy(sessionID string) {
	s.galleryService.DropSession(sessionID)
	s.logger.Session().Info("Session destroyed", "sessionId", sessionID)
}

// ActiveCount returns the number of live sessions.
func (s *SessionService) ActiveCount() int {
	return s.cache.SessionCount()
}
