package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
)

func newSessionService(t *testing.T) (*SessionService, *testEnv) {
	t.Helper()
	env := newTestEnv(t, inkRecords(3)...)
	gallerySvc := env.galleryService(t)
	return NewSessionService(env.cache, gallerySvc, env.logger), env
}

func TestCreateMintsUniqueSessions(t *testing.T) {
	svc, _ := newSessionService(t)

	first, err := svc.Create(i18n.LangEN, "")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := svc.Create(i18n.LangKA, "")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, svc.ActiveCount())
}

func TestCreateAppliesInitialFilter(t *testing.T) {
	env := newTestEnv(t, append(inkRecords(3), oilRecord("o1"))...)
	gallerySvc := env.galleryService(t)
	svc := NewSessionService(env.cache, gallerySvc, env.logger)

	id, err := svc.Create(i18n.LangEN, "ink")
	require.NoError(t, err)

	view, err := gallerySvc.View(id, i18n.LangEN)
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryInk, view.Filter)
	assert.Equal(t, 3, view.TotalFiltered)
}

func TestCreateIgnoresUnknownInitialFilter(t *testing.T) {
	env := newTestEnv(t, append(inkRecords(3), oilRecord("o1"))...)
	gallerySvc := env.galleryService(t)
	svc := NewSessionService(env.cache, gallerySvc, env.logger)

	id, err := svc.Create(i18n.LangEN, "sculpture")
	require.NoError(t, err)

	view, err := gallerySvc.View(id, i18n.LangEN)
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryAll, view.Filter)
	assert.Equal(t, 4, view.TotalFiltered)
}

func TestExistsTracksLifecycle(t *testing.T) {
	svc, _ := newSessionService(t)

	assert.False(t, svc.Exists("never-created"))

	id, err := svc.Create(i18n.LangEN, "")
	require.NoError(t, err)
	assert.True(t, svc.Exists(id))

	svc.Destroy(id)
	assert.False(t, svc.Exists(id))
	assert.Equal(t, 0, svc.ActiveCount())
}

func TestCreateBindsControllerLanguage(t *testing.T) {
	svc, env := newSessionService(t)

	id, err := svc.Create(i18n.LangRU, "")
	require.NoError(t, err)

	controller, found := env.cache.GetSession(id)
	require.True(t, found)
	assert.Equal(t, i18n.LangRU, controller.Language())
}
