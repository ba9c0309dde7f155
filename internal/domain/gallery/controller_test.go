package gallery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
)

// recordingListener captures engine events for assertions.
type recordingListener struct {
	views        []View
	lightboxes   []LightboxView
	closed       []string
	resultCounts []int
}

func (l *recordingListener) ViewChanged(v View)             { l.views = append(l.views, v) }
func (l *recordingListener) LightboxChanged(v LightboxView) { l.lightboxes = append(l.lightboxes, v) }
func (l *recordingListener) LightboxClosed(restore string)  { l.closed = append(l.closed, restore) }
func (l *recordingListener) ResultCountChanged(count int)   { l.resultCounts = append(l.resultCounts, count) }

func testCatalog(n int, category catalog.Category) *catalog.Catalog {
	records := make([]*catalog.ArtworkRecord, n)
	for i := range records {
		records[i] = &catalog.ArtworkRecord{
			ID:        fmt.Sprintf("%s-%d", category, i),
			Title:     fmt.Sprintf("Work %d", i),
			Technique: "Ink",
			Category:  category,
			Size:      "20x30cm",
		}
	}
	return catalog.New(records)
}

func mixedCatalog(ink, oil int) *catalog.Catalog {
	var records []*catalog.ArtworkRecord
	for i := 0; i < ink; i++ {
		records = append(records, &catalog.ArtworkRecord{
			ID: fmt.Sprintf("ink-%d", i), Title: fmt.Sprintf("Ink %d", i), Technique: "Ink", Category: catalog.CategoryInk,
		})
	}
	for i := 0; i < oil; i++ {
		records = append(records, &catalog.ArtworkRecord{
			ID: fmt.Sprintf("oil-%d", i), Title: fmt.Sprintf("Oil %d", i), Technique: "Oil on Canvas", Category: catalog.CategoryOil,
		})
	}
	return catalog.New(records)
}

func TestInitialPageLoad(t *testing.T) {
	// 14 records, page size 12: init shows 12, one load-more reaches 14,
	// a second load-more is a no-op.
	ctrl := NewController(testCatalog(14, catalog.CategoryInk), i18n.LangEN, 12, nil)

	require.Equal(t, 12, len(ctrl.VisibleItems()))
	require.Equal(t, 14, ctrl.TotalFiltered())

	assert.True(t, ctrl.LoadMore())
	assert.Equal(t, 14, len(ctrl.VisibleItems()))

	assert.False(t, ctrl.LoadMore())
	assert.Equal(t, 14, len(ctrl.VisibleItems()))
}

func TestFilterResetsPagination(t *testing.T) {
	ctrl := NewController(mixedCatalog(20, 10), i18n.LangEN, 12, nil)
	require.Equal(t, 30, ctrl.TotalFiltered())

	ctrl.LoadMore()
	require.Equal(t, 24, ctrl.VisibleCount())

	ctrl.ApplyFilter(catalog.CategoryInk)
	assert.Equal(t, 20, ctrl.TotalFiltered())
	assert.Equal(t, 12, ctrl.VisibleCount())

	for _, r := range ctrl.VisibleItems() {
		assert.Equal(t, catalog.CategoryInk, r.Category)
	}
}

func TestPaginationNeverExceedsFiltered(t *testing.T) {
	ctrl := NewController(mixedCatalog(5, 0), i18n.LangEN, 12, nil)

	assert.Equal(t, 5, ctrl.VisibleCount())
	assert.False(t, ctrl.LoadMore())
	assert.Equal(t, 5, ctrl.VisibleCount())
}

func TestApplyFilterIdempotent(t *testing.T) {
	ctrl := NewController(mixedCatalog(20, 10), i18n.LangEN, 12, nil)

	ctrl.ApplyFilter(catalog.CategoryInk)
	first := ctrl.View()

	ctrl.ApplyFilter(catalog.CategoryInk)
	second := ctrl.View()

	assert.Equal(t, first.Filter, second.Filter)
	assert.Equal(t, first.VisibleCount, second.VisibleCount)
	assert.Equal(t, first.TotalFiltered, second.TotalFiltered)
	assert.Equal(t, first.VisibleItems, second.VisibleItems)
}

func TestSearchNormalization(t *testing.T) {
	ctrl := NewController(mixedCatalog(3, 3), i18n.LangEN, 12, nil)

	ctrl.ApplySearch("  oil  ")
	assert.Equal(t, "oil", ctrl.SearchText())
	assert.Equal(t, 3, ctrl.TotalFiltered())

	ctrl.ApplySearch("   ")
	assert.Equal(t, "", ctrl.SearchText())
	assert.Equal(t, 6, ctrl.TotalFiltered())
}

func TestClearAllSingleRebuild(t *testing.T) {
	listener := &recordingListener{}
	ctrl := NewController(mixedCatalog(20, 10), i18n.LangEN, 12, listener)

	ctrl.ApplyFilter(catalog.CategoryInk)
	ctrl.ApplySearch("5")
	before := len(listener.resultCounts)

	ctrl.ClearAll()

	assert.Equal(t, catalog.CategoryAll, ctrl.Filter())
	assert.Equal(t, "", ctrl.SearchText())
	assert.Equal(t, before+1, len(listener.resultCounts), "clearAll must rebuild exactly once")
	assert.Equal(t, 30, listener.resultCounts[len(listener.resultCounts)-1])
}

func TestEmptyCatalogDistinguishedFromNoResults(t *testing.T) {
	empty := NewController(catalog.New(nil), i18n.LangEN, 12, nil)
	assert.Equal(t, CatalogEmpty, empty.View().State)

	ctrl := NewController(mixedCatalog(3, 0), i18n.LangEN, 12, nil)
	ctrl.ApplySearch("no such work")
	assert.Equal(t, NoResults, ctrl.View().State)
}

func TestStaleRebuildDiscarded(t *testing.T) {
	// A rebuild that began before a newer state change may not clobber the
	// newer result: latest call wins, decided by the generation counter.
	ctrl := NewController(mixedCatalog(10, 10), i18n.LangEN, 12, nil)

	staleGen := ctrl.bumpGeneration()
	staleItems := BuildResults(ctrl.catalog, catalog.CategoryOil, "", i18n.LangEN)

	ctrl.ApplyFilter(catalog.CategoryInk)
	require.Equal(t, 10, ctrl.TotalFiltered())

	assert.False(t, ctrl.commit(staleGen, staleItems))
	assert.Equal(t, catalog.CategoryInk, ctrl.Filter())
	for _, r := range ctrl.VisibleItems() {
		assert.Equal(t, catalog.CategoryInk, r.Category)
	}
}

func TestLanguageChangeRebuilds(t *testing.T) {
	cat := catalog.New([]*catalog.ArtworkRecord{
		{ID: "town", Title: "Town", TitleRu: "Город", Technique: "Pastel", Category: catalog.CategoryPastel},
		{ID: "sail", Title: "Sail", Technique: "Pastel", Category: catalog.CategoryPastel},
	})
	ctrl := NewController(cat, i18n.LangEN, 12, nil)

	ctrl.ApplySearch("город")
	assert.Equal(t, 0, ctrl.TotalFiltered())

	ctrl.SetLanguage(i18n.LangRU)
	assert.Equal(t, 1, ctrl.TotalFiltered())
}

func TestViewChangedCarriesCounts(t *testing.T) {
	listener := &recordingListener{}
	ctrl := NewController(mixedCatalog(20, 0), i18n.LangEN, 12, listener)

	require.NotEmpty(t, listener.views)
	v := listener.views[len(listener.views)-1]
	assert.Equal(t, 12, v.VisibleCount)
	assert.Equal(t, 20, v.TotalFiltered)
	assert.Len(t, v.VisibleItems, 12)

	ctrl.LoadMore()
	v = listener.views[len(listener.views)-1]
	assert.Equal(t, 20, v.VisibleCount)
}
