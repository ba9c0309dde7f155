package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
)

// I18nService serves interface translation bundles loaded from per-language
// JSON files. English is the fallback for missing keys and unknown languages.
type I18nService struct {
	localesPath string
	bundles     map[i18n.Lang]map[string]string
	mu          sync.RWMutex
	logger      *logging.ChanneledLogger
}

// NewI18nService creates the i18n service and loads every bundle.
func NewI18nService(localesPath string, logger *logging.ChanneledLogger) (*I18nService, error) {
	s := &I18nService{
		localesPath: localesPath,
		bundles:     make(map[i18n.Lang]map[string]string),
		logger:      logger,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads every locale file from disk.
func (s *I18nService) Reload() error {
	loaded := make(map[i18n.Lang]map[string]string)

	for _, lang := range i18n.Supported {
		path := filepath.Join(s.localesPath, string(lang)+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", path, err)
		}

		var bundle map[string]string
		if err := json.Unmarshal(data, &bundle); err != nil {
			return fmt.Errorf("failed to parse locale file %s: %w", path, err)
		}
		loaded[lang] = bundle
	}

	s.mu.Lock()
	s.bundles = loaded
	s.mu.Unlock()

	s.logger.Content().Info("Locale bundles loaded", "languages", len(loaded))
	return nil
}

// Bundle returns the full translation map for a language, with English
// filling any gaps.
func (s *I18nService) Bundle(lang i18n.Lang) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	base := s.bundles[i18n.LangEN]
	result := make(map[string]string, len(base))
	for key, value := range base {
		result[key] = value
	}
	if lang != i18n.LangEN {
		for key, value := range s.bundles[lang] {
			result[key] = value
		}
	}
	return result
}

// Lookup resolves one translation key for a language.
func (s *I18nService) Lookup(lang i18n.Lang, key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if value, ok := s.bundles[lang][key]; ok {
		return value
	}
	if value, ok := s.bundles[i18n.LangEN][key]; ok {
		return value
	}
	return key
}

// CategoryNames returns the localized display names of every filter category.
func (s *I18nService) CategoryNames(lang i18n.Lang) map[catalog.Category]string {
	names := make(map[catalog.Category]string, len(catalog.ValidCategories))
	for _, category := range catalog.ValidCategories {
		names[category] = i18n.CategoryName(category, lang)
	}
	return names
}
