package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
)

func TestOpenLightbox(t *testing.T) {
	ctrl := NewController(testCatalog(5, catalog.CategoryInk), i18n.LangEN, 12, nil)

	t.Run("opens on a visible item", func(t *testing.T) {
		require.True(t, ctrl.OpenLightbox("ink-3", "grid-item-3"))
		v, ok := ctrl.LightboxView()
		require.True(t, ok)
		assert.Equal(t, 3, v.Index)
		assert.Equal(t, 5, v.Total)
		assert.Equal(t, "ink-3", v.Record.ID)
	})

	t.Run("rejects an id outside the visible set", func(t *testing.T) {
		ctrl := NewController(testCatalog(20, catalog.CategoryInk), i18n.LangEN, 12, nil)
		// ink-15 exists but sits beyond the first page.
		assert.False(t, ctrl.OpenLightbox("ink-15", ""))
		assert.False(t, ctrl.LightboxOpen())
	})

	t.Run("rejects open on an empty visible set", func(t *testing.T) {
		ctrl := NewController(catalog.New(nil), i18n.LangEN, 12, nil)
		assert.False(t, ctrl.OpenLightbox("anything", ""))
		assert.False(t, ctrl.LightboxOpen())
	})
}

func TestLightboxWraparound(t *testing.T) {
	// Open at visible index 3 of 5; next twice goes 3 -> 4 -> 0.
	ctrl := NewController(testCatalog(5, catalog.CategoryInk), i18n.LangEN, 12, nil)
	require.True(t, ctrl.OpenLightbox("ink-3", ""))

	require.True(t, ctrl.LightboxNext())
	assert.Equal(t, 4, ctrl.LightboxIndex())

	require.True(t, ctrl.LightboxNext())
	assert.Equal(t, 0, ctrl.LightboxIndex())

	require.True(t, ctrl.LightboxPrev())
	assert.Equal(t, 4, ctrl.LightboxIndex())
}

func TestLightboxIndexAlwaysValid(t *testing.T) {
	ctrl := NewController(testCatalog(7, catalog.CategoryInk), i18n.LangEN, 12, nil)
	require.True(t, ctrl.OpenLightbox("ink-0", ""))

	for i := 0; i < 20; i++ {
		ctrl.LightboxNext()
		idx := ctrl.LightboxIndex()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(ctrl.VisibleItems()))
	}
	for i := 0; i < 20; i++ {
		ctrl.LightboxPrev()
		idx := ctrl.LightboxIndex()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(ctrl.VisibleItems()))
	}
}

func TestCloseRestoresFocusReference(t *testing.T) {
	listener := &recordingListener{}
	ctrl := NewController(testCatalog(5, catalog.CategoryInk), i18n.LangEN, 12, listener)

	require.True(t, ctrl.OpenLightbox("ink-2", "grid-item-2"))
	ctrl.CloseLightbox()

	assert.False(t, ctrl.LightboxOpen())
	require.Len(t, listener.closed, 1)
	assert.Equal(t, "grid-item-2", listener.closed[0])

	// Closing again is a no-op.
	ctrl.CloseLightbox()
	assert.Len(t, listener.closed, 1)
}

func TestLightboxSurvivesFilterChange(t *testing.T) {
	t.Run("re-resolves the open record by id", func(t *testing.T) {
		ctrl := NewController(mixedCatalog(4, 4), i18n.LangEN, 12, nil)
		require.True(t, ctrl.OpenLightbox("ink-2", ""))

		ctrl.ApplyFilter(catalog.CategoryInk)

		v, ok := ctrl.LightboxView()
		require.True(t, ok)
		assert.Equal(t, "ink-2", v.Record.ID)
		assert.Equal(t, 2, v.Index)
		assert.Equal(t, 4, v.Total)
	})

	t.Run("clamps when the record drops out of view", func(t *testing.T) {
		ctrl := NewController(mixedCatalog(4, 4), i18n.LangEN, 12, nil)
		// oil-3 is the last visible item at index 7.
		require.True(t, ctrl.OpenLightbox("oil-3", ""))

		ctrl.ApplyFilter(catalog.CategoryInk)

		v, ok := ctrl.LightboxView()
		require.True(t, ok)
		assert.Equal(t, 3, v.Index, "index clamps to the last visible item")
		assert.Equal(t, "ink-3", v.Record.ID)
	})

	t.Run("force-closes when nothing remains visible", func(t *testing.T) {
		listener := &recordingListener{}
		ctrl := NewController(mixedCatalog(4, 0), i18n.LangEN, 12, listener)
		require.True(t, ctrl.OpenLightbox("ink-1", "origin"))

		ctrl.ApplySearch("no such work")

		assert.False(t, ctrl.LightboxOpen())
		require.Len(t, listener.closed, 1)
		assert.Equal(t, "origin", listener.closed[0])
	})
}

func TestLoadMoreExtendsLightboxRange(t *testing.T) {
	ctrl := NewController(testCatalog(14, catalog.CategoryInk), i18n.LangEN, 12, nil)
	require.True(t, ctrl.OpenLightbox("ink-11", ""))

	v, _ := ctrl.LightboxView()
	require.Equal(t, 12, v.Total)

	ctrl.LoadMore()

	v, ok := ctrl.LightboxView()
	require.True(t, ok)
	assert.Equal(t, 14, v.Total)
	assert.Equal(t, 11, v.Index)

	// The wrap boundary moved with the window.
	for i := 0; i < 3; i++ {
		ctrl.LightboxNext()
	}
	assert.Equal(t, 0, ctrl.LightboxIndex())
}
