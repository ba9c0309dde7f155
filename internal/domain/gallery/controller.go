package gallery

import (
	"strings"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
)

// Controller owns the gallery view state for one session: current filter,
// search text, pagination window, and the lightbox. All state transitions run
// synchronously; a rebuild carries a generation number so a superseded
// rebuild can never overwrite the result of a later one.
type Controller struct {
	catalog  *catalog.Catalog
	lang     i18n.Lang
	pageSize int
	listener Listener

	filter        catalog.Category
	searchText    string
	visibleCount  int
	filteredItems []*catalog.ArtworkRecord
	focusIndex    int
	generation    uint64

	lightbox lightboxState
}

// NewController creates a gallery controller over a catalog and performs the
// initial rebuild (filter "all", empty search, first page visible).
func NewController(c *catalog.Catalog, lang i18n.Lang, pageSize int, listener Listener) *Controller {
	if listener == nil {
		listener = NopListener{}
	}
	if pageSize < 1 {
		pageSize = 1
	}
	ctrl := &Controller{
		catalog:  c,
		lang:     lang,
		pageSize: pageSize,
		listener: listener,
		filter:   catalog.CategoryAll,
	}
	ctrl.rebuild()
	return ctrl
}

// Filter returns the active category filter.
func (c *Controller) Filter() catalog.Category { return c.filter }

// SearchText returns the active normalized search text.
func (c *Controller) SearchText() string { return c.searchText }

// VisibleCount returns the size of the current pagination window.
func (c *Controller) VisibleCount() int { return c.visibleCount }

// TotalFiltered returns the size of the full filtered result set.
func (c *Controller) TotalFiltered() int { return len(c.filteredItems) }

// Language returns the language used for localized text matching.
func (c *Controller) Language() i18n.Lang { return c.lang }

// VisibleItems returns the rendered prefix of the filtered result set.
// Callers must not mutate the returned slice.
func (c *Controller) VisibleItems() []*catalog.ArtworkRecord {
	return c.filteredItems[:c.visibleCount]
}

// ApplyFilter sets the category filter and rebuilds. The value must already
// have passed the whitelist; re-applying the active filter is idempotent and
// yields the same post-rebuild state.
func (c *Controller) ApplyFilter(filter catalog.Category) {
	c.filter = filter
	c.rebuild()
}

// ApplySearch normalizes the search text by trimming and rebuilds. An empty
// string clears the search.
func (c *Controller) ApplySearch(text string) {
	c.searchText = strings.TrimSpace(text)
	c.rebuild()
}

// ClearAll resets filter and search together with a single rebuild.
func (c *Controller) ClearAll() {
	c.filter = catalog.CategoryAll
	c.searchText = ""
	c.rebuild()
}

// LoadMore grows the pagination window by one page, capped at the filtered
// total. Returns false when the window is already full; that call is a no-op
// and emits nothing.
func (c *Controller) LoadMore() bool {
	if c.visibleCount >= len(c.filteredItems) {
		return false
	}
	c.visibleCount = minInt(c.visibleCount+c.pageSize, len(c.filteredItems))
	c.reconcileLightbox()
	c.emitView()
	return true
}

// SetLanguage swaps the matching language and rebuilds, since search matches
// against localized titles and techniques.
func (c *Controller) SetLanguage(lang i18n.Lang) {
	if lang == c.lang {
		return
	}
	c.lang = lang
	c.rebuild()
}

// SetCatalog replaces the underlying catalog (after an admin refresh) and
// rebuilds against it.
func (c *Controller) SetCatalog(cat *catalog.Catalog) {
	c.catalog = cat
	c.rebuild()
}

// View returns a snapshot of the current state.
func (c *Controller) View() View {
	return View{
		State:         StateOf(c.catalog, c.filteredItems),
		Filter:        c.filter,
		SearchText:    c.searchText,
		VisibleCount:  c.visibleCount,
		TotalFiltered: len(c.filteredItems),
		VisibleItems:  c.VisibleItems(),
		FocusIndex:    c.focusIndex,
		Generation:    c.generation,
	}
}

// rebuild recomputes the filtered result set and resets the pagination
// window to the first page.
func (c *Controller) rebuild() {
	gen := c.bumpGeneration()
	items := BuildResults(c.catalog, c.filter, c.searchText, c.lang)
	c.commit(gen, items)
}

// bumpGeneration marks the start of a rebuild. Every state change that
// triggers a rebuild advances the generation, so any rebuild started earlier
// is superseded from this point on.
func (c *Controller) bumpGeneration() uint64 {
	c.generation++
	return c.generation
}

// commit installs a rebuilt result set, unless a newer rebuild has started
// since gen was taken. A stale commit is discarded: latest call wins.
func (c *Controller) commit(gen uint64, items []*catalog.ArtworkRecord) bool {
	if gen != c.generation {
		return false
	}
	c.filteredItems = items
	c.visibleCount = minInt(c.pageSize, len(items))
	c.clampFocus()
	c.reconcileLightbox()
	c.emitView()
	c.listener.ResultCountChanged(len(items))
	return true
}

func (c *Controller) emitView() {
	c.listener.ViewChanged(c.View())
}

func (c *Controller) clampFocus() {
	if c.visibleCount == 0 {
		c.focusIndex = 0
		return
	}
	if c.focusIndex >= c.visibleCount {
		c.focusIndex = c.visibleCount - 1
	}
	if c.focusIndex < 0 {
		c.focusIndex = 0
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
