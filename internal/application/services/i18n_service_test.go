package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
)

func writeLocales(t *testing.T, bundles map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for lang, content := range bundles {
		require.NoError(t, os.WriteFile(filepath.Join(dir, lang+".json"), []byte(content), 0644))
	}
	return dir
}

func TestBundleFallsBackToEnglish(t *testing.T) {
	dir := writeLocales(t, map[string]string{
		"en": `{"gallery.loadMore": "Load More", "gallery.clearAll": "Clear All"}`,
		"ka": `{"gallery.loadMore": "მეტის ჩატვირთვა"}`,
		"ru": `{"gallery.loadMore": "Загрузить еще"}`,
	})

	svc, err := NewI18nService(dir, newTestLogger(t))
	require.NoError(t, err)

	ka := svc.Bundle(i18n.LangKA)
	assert.Equal(t, "მეტის ჩატვირთვა", ka["gallery.loadMore"])
	assert.Equal(t, "Clear All", ka["gallery.clearAll"])

	en := svc.Bundle(i18n.LangEN)
	assert.Equal(t, "Load More", en["gallery.loadMore"])
}

func TestLookupFallbackChain(t *testing.T) {
	dir := writeLocales(t, map[string]string{
		"en": `{"nav.home": "Home"}`,
		"ka": `{}`,
		"ru": `{"nav.home": "Главная"}`,
	})

	svc, err := NewI18nService(dir, newTestLogger(t))
	require.NoError(t, err)

	assert.Equal(t, "Главная", svc.Lookup(i18n.LangRU, "nav.home"))
	assert.Equal(t, "Home", svc.Lookup(i18n.LangKA, "nav.home"))
	assert.Equal(t, "nav.missing", svc.Lookup(i18n.LangEN, "nav.missing"))
}

func TestNewI18nServiceRequiresEveryLocale(t *testing.T) {
	dir := writeLocales(t, map[string]string{
		"en": `{"nav.home": "Home"}`,
		"ka": `{"nav.home": "მთავარი"}`,
		// ru.json missing
	})

	_, err := NewI18nService(dir, newTestLogger(t))
	assert.Error(t, err)
}

func TestReloadPicksUpChanges(t *testing.T) {
	dir := writeLocales(t, map[string]string{
		"en": `{"nav.home": "Home"}`,
		"ka": `{"nav.home": "მთავარი"}`,
		"ru": `{"nav.home": "Главная"}`,
	})

	svc, err := NewI18nService(dir, newTestLogger(t))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"nav.home": "Start"}`), 0644))
	require.NoError(t, svc.Reload())

	assert.Equal(t, "Start", svc.Lookup(i18n.LangEN, "nav.home"))
}

func TestCategoryNamesLocalized(t *testing.T) {
	dir := writeLocales(t, map[string]string{
		"en": `{}`, "ka": `{}`, "ru": `{}`,
	})
	svc, err := NewI18nService(dir, newTestLogger(t))
	require.NoError(t, err)

	en := svc.CategoryNames(i18n.LangEN)
	require.Len(t, en, len(catalog.ValidCategories))
	assert.Equal(t, "All Works", en[catalog.CategoryAll])
	assert.Equal(t, "Oil Painting", en[catalog.CategoryOil])

	ka := svc.CategoryNames(i18n.LangKA)
	assert.Equal(t, "ყველა ნამუშევარი", ka[catalog.CategoryAll])

	ru := svc.CategoryNames(i18n.LangRU)
	assert.Equal(t, "Все работы", ru[catalog.CategoryAll])
}
