package gallery

import (
	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
)

// CatalogState distinguishes "the catalog itself is missing" from "the
// current filter matched nothing". The two must never share a code path.
type CatalogState string

const (
	CatalogReady CatalogState = "ready"
	CatalogEmpty CatalogState = "empty"
	NoResults    CatalogState = "no-results"
)

// BuildResults produces a fresh ordered result set by filtering the catalog
// with the combined predicate. It is a pure function of its inputs: relative
// catalog order is preserved and no sorting is applied.
func BuildResults(c *catalog.Catalog, filter catalog.Category, searchText string, lang i18n.Lang) []*catalog.ArtworkRecord {
	results := make([]*catalog.ArtworkRecord, 0, c.Len())
	for _, a := range c.Records() {
		if Matches(a, filter, searchText, lang) {
			results = append(results, a)
		}
	}
	return results
}

// StateOf classifies a result set against its source catalog.
func StateOf(c *catalog.Catalog, filtered []*catalog.ArtworkRecord) CatalogState {
	if c == nil || c.Len() == 0 {
		return CatalogEmpty
	}
	if len(filtered) == 0 {
		return NoResults
	}
	return CatalogReady
}
