package services

import (
	"fmt"
	"sync"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/gallery"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
	"github.com/artfolio/artfolio-go/internal/infrastructure/caching/interfaces"
	"github.com/artfolio/artfolio-go/internal/infrastructure/messaging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/performance"
	"github.com/artfolio/artfolio-go/pkg/config"
)

// GalleryService manages per-session gallery controllers. Controllers are
// single-threaded by design, so every operation on a session is serialized
// through a per-session lock.
type GalleryService struct {
	catalogService *CatalogService
	cache          interfaces.SessionCache
	broadcaster    messaging.Broadcaster
	logger         *logging.ChanneledLogger
	tracker        *performance.Tracker
	locks          sync.Map // sessionID -> *sync.Mutex
}

// NewGalleryService creates a new gallery application service
func NewGalleryService(catalogService *CatalogService, cache interfaces.SessionCache, broadcaster messaging.Broadcaster, logger *logging.ChanneledLogger, tracker *performance.Tracker) *GalleryService {
	return &GalleryService{
		catalogService: catalogService,
		cache:          cache,
		broadcaster:    broadcaster,
		logger:         logger,
		tracker:        tracker,
	}
}

// GetOrCreate returns the session's controller, creating one against the
// current catalog when the session is new.
func (s *GalleryService) GetOrCreate(sessionID string, lang i18n.Lang) (*gallery.Controller, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()
	return s.getOrCreateLocked(sessionID, lang)
}

// View returns the session's current gallery view.
func (s *GalleryService) View(sessionID string, lang i18n.Lang) (gallery.View, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	controller, err := s.getOrCreateLocked(sessionID, lang)
	if err != nil {
		return gallery.View{}, err
	}
	return controller.View(), nil
}

// ApplyFilter switches the session's category filter.
func (s *GalleryService) ApplyFilter(sessionID string, lang i18n.Lang, rawCategory string) (gallery.View, error) {
	marker := s.tracker.StartOperation("gallery_filter", sessionID)
	defer marker.Complete()

	unlock := s.lockSession(sessionID)
	defer unlock()

	controller, err := s.getOrCreateLocked(sessionID, lang)
	if err != nil {
		marker.SetError(err)
		return gallery.View{}, err
	}

	category, known := catalog.ParseCategory(rawCategory)
	if !known {
		s.logger.Gallery().Debug("Unknown category coerced", "sessionId", sessionID, "raw", rawCategory)
	}
	controller.ApplyFilter(category)
	marker.SetSuccess(true)
	return controller.View(), nil
}

// ApplySearch updates the session's search text.
func (s *GalleryService) ApplySearch(sessionID string, lang i18n.Lang, text string) (gallery.View, error) {
	marker := s.tracker.StartOperation("gallery_search", sessionID)
	defer marker.Complete()

	unlock := s.lockSession(sessionID)
	defer unlock()

	controller, err := s.getOrCreateLocked(sessionID, lang)
	if err != nil {
		marker.SetError(err)
		return gallery.View{}, err
	}

	controller.ApplySearch(text)
	marker.SetSuccess(true)
	return controller.View(), nil
}

// ClearAll resets filter and search in a single rebuild.
func (s *GalleryService) ClearAll(sessionID string, lang i18n.Lang) (gallery.View, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	controller, err := s.getOrCreateLocked(sessionID, lang)
	if err != nil {
		return gallery.View{}, err
	}

	controller.ClearAll()
	return controller.View(), nil
}

// LoadMore reveals the next page. Reports whether anything new became visible.
func (s *GalleryService) LoadMore(sessionID string, lang i18n.Lang) (gallery.View, bool, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	controller, err := s.getOrCreateLocked(sessionID, lang)
	if err != nil {
		return gallery.View{}, false, err
	}

	grew := controller.LoadMore()
	return controller.View(), grew, nil
}

// SetLanguage switches the session's presentation language.
func (s *GalleryService) SetLanguage(sessionID string, lang i18n.Lang) (gallery.View, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	controller, err := s.getOrCreateLocked(sessionID, lang)
	if err != nil {
		return gallery.View{}, err
	}

	controller.SetLanguage(lang)
	return controller.View(), nil
}

// OpenLightbox opens the lightbox on a visible artwork.
func (s *GalleryService) OpenLightbox(sessionID string, lang i18n.Lang, artworkID, restoreFocus string) (gallery.LightboxView, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	controller, err := s.getOrCreateLocked(sessionID, lang)
	if err != nil {
		return gallery.LightboxView{}, err
	}

	if !controller.OpenLightbox(artworkID, restoreFocus) {
		return gallery.LightboxView{}, fmt.Errorf("artwork %s is not visible in this session", artworkID)
	}

	view, _ := controller.LightboxView()
	return view, nil
}

// LightboxNext advances the lightbox with wraparound.
func (s *GalleryService) LightboxNext(sessionID string, lang i18n.Lang) (gallery.LightboxView, error) {
	return s.lightboxStep(sessionID, lang, func(c *gallery.Controller) bool { return c.LightboxNext() })
}

// LightboxPrev steps the lightbox back with wraparound.
func (s *GalleryService) LightboxPrev(sessionID string, lang i18n.Lang) (gallery.LightboxView, error) {
	return s.lightboxStep(sessionID, lang, func(c *gallery.Controller) bool { return c.LightboxPrev() })
}

// CloseLightbox closes the session's lightbox if open.
func (s *GalleryService) CloseLightbox(sessionID string, lang i18n.Lang) error {
	unlock := s.lockSession(sessionID)
	defer unlock()

	controller, err := s.getOrCreateLocked(sessionID, lang)
	if err != nil {
		return err
	}

	controller.CloseLightbox()
	return nil
}

// Lightbox returns the open lightbox view, if any.
func (s *GalleryService) Lightbox(sessionID string, lang i18n.Lang) (gallery.LightboxView, bool, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	controller, err := s.getOrCreateLocked(sessionID, lang)
	if err != nil {
		return gallery.LightboxView{}, false, err
	}

	view, open := controller.LightboxView()
	return view, open, nil
}

// HandleKey routes a keyboard event through the session's engine. Reports
// whether the event was consumed.
func (s *GalleryService) HandleKey(sessionID string, lang i18n.Lang, key gallery.Key, viewportWidth int) (bool, gallery.View, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	controller, err := s.getOrCreateLocked(sessionID, lang)
	if err != nil {
		return false, gallery.View{}, err
	}

	consumed := controller.HandleKey(key, viewportWidth)
	return consumed, controller.View(), nil
}

// PushCatalog swaps the catalog under every live session after an admin
// refresh. Sessions re-run their filter pipeline against the new data.
func (s *GalleryService) PushCatalog() error {
	c, err := s.catalogService.GetCatalog()
	if err != nil {
		return err
	}

	ids := s.cache.GetAllSessionIDs()
	for _, sessionID := range ids {
		unlock := s.lockSession(sessionID)
		if controller, found := s.cache.GetSession(sessionID); found {
			controller.SetCatalog(c)
		}
		unlock()
	}

	s.logger.Gallery().Info("Catalog pushed to live sessions", "sessions", len(ids))
	return nil
}

// DropSession discards a session's controller and lock.
func (s *GalleryService) DropSession(sessionID string) {
	s.cache.RemoveSession(sessionID)
	s.locks.Delete(sessionID)
}

func (s *GalleryService) lightboxStep(sessionID string, lang i18n.Lang, step func(*gallery.Controller) bool) (gallery.LightboxView, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	controller, err := s.getOrCreateLocked(sessionID, lang)
	if err != nil {
		return gallery.LightboxView{}, err
	}

	if !step(controller) {
		return gallery.LightboxView{}, fmt.Errorf("lightbox is not open")
	}

	view, _ := controller.LightboxView()
	return view, nil
}

func (s *GalleryService) getOrCreateLocked(sessionID string, lang i18n.Lang) (*gallery.Controller, error) {
	if controller, found := s.cache.GetSession(sessionID); found {
		return controller, nil
	}

	c, err := s.catalogService.GetCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery session: %w", err)
	}

	listener := messaging.NewSessionListener(sessionID, s.broadcaster)
	controller := gallery.NewController(c, lang, config.GalleryPageSize, listener)
	s.cache.SetSession(sessionID, controller)

	s.logger.Gallery().Info("Gallery session created", "sessionId", sessionID, "lang", string(lang))
	return controller, nil
}

// lockSession acquires the per-session mutex and returns its unlock func.
func (s *GalleryService) lockSession(sessionID string) func() {
	value, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
