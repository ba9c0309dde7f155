// Package gallery implements the filtering, pagination, and lightbox
// navigation engine over an immutable artwork catalog. It holds no
// presentation concerns; callers observe it through the Listener interface.
package gallery

import (
	"strconv"
	"strings"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
)

// Matches reports whether a record satisfies the combined category+text
// predicate. The text match is a case-insensitive substring test over the
// localized title, localized technique, and the decimal year string. Undated
// works carry year 0 and therefore match a "0" search; that is intentional.
func Matches(a *catalog.ArtworkRecord, filter catalog.Category, searchText string, lang i18n.Lang) bool {
	if filter != catalog.CategoryAll && a.Category != filter {
		return false
	}

	if searchText == "" {
		return true
	}

	needle := strings.ToLower(searchText)
	if strings.Contains(strings.ToLower(i18n.Title(a, lang)), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(i18n.Technique(a, lang)), needle) {
		return true
	}
	return strings.Contains(strconv.Itoa(a.Year), needle)
}
