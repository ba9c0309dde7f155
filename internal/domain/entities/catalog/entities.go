// Package catalog defines the application's core catalog domain entities.
package catalog

import (
	"regexp"
	"strconv"
)

// Category is the fixed set of artwork categories.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryOil    Category = "oil"
	CategoryInk    Category = "ink"
	CategoryPastel Category = "pastel"
	CategoryMixed  Category = "mixed"
)

// ValidCategories lists every filter value accepted from the outside world.
// Anything not in this whitelist is rejected before it reaches gallery state.
var ValidCategories = []Category{CategoryAll, CategoryOil, CategoryInk, CategoryPastel, CategoryMixed}

// ParseCategory validates a raw filter value against the whitelist. Unknown
// values coerce to CategoryAll with ok=false so callers can ignore them.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range ValidCategories {
		if string(c) == raw {
			return c, true
		}
	}
	return CategoryAll, false
}

var sizePattern = regexp.MustCompile(`(\d+)x(\d+)`)

// Dimensions holds the width/height extracted from a raw size string such as
// "30x45cm". Records whose size does not match the pattern get zero values.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area is a derived sort/display key.
func (d Dimensions) Area() int { return d.Width * d.Height }

// ParseSize extracts integer dimensions from a raw size string.
func ParseSize(raw string) Dimensions {
	m := sizePattern.FindStringSubmatch(raw)
	if m == nil {
		return Dimensions{}
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	return Dimensions{Width: w, Height: h}
}

// ArtworkRecord is one catalog entry. Records are immutable for the session;
// the catalog replaces wholesale on refresh, it is never patched in place.
// Year 0 means unknown, not absent: an undated work still matches a "0" search.
type ArtworkRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	TitleKa     string   `json:"title_ka,omitempty"`
	TitleRu     string   `json:"title_ru,omitempty"`
	Technique   string   `json:"technique"`
	TechniqueKa string   `json:"technique_ka,omitempty"`
	TechniqueRu string   `json:"technique_ru,omitempty"`
	Category    Category `json:"category"`
	Size        string   `json:"size"`
	Year        int      `json:"year"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
}

// Dimensions parses the record's raw size string.
func (a *ArtworkRecord) Dimensions() Dimensions { return ParseSize(a.Size) }

// SlideRecord is one hero slider entry.
type SlideRecord struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

// Catalog is the full, static ordered set of artwork records for the session,
// with an id index so by-id lookups never scan.
type Catalog struct {
	records []*ArtworkRecord
	byID    map[string]*ArtworkRecord
	indexOf map[string]int
}

// New builds a catalog from an ordered record slice. Later duplicates of an
// id are dropped so the id index stays unambiguous.
func New(records []*ArtworkRecord) *Catalog {
	c := &Catalog{
		records: make([]*ArtworkRecord, 0, len(records)),
		byID:    make(map[string]*ArtworkRecord, len(records)),
		indexOf: make(map[string]int, len(records)),
	}
	for _, r := range records {
		if _, exists := c.byID[r.ID]; exists {
			continue
		}
		c.byID[r.ID] = r
		c.indexOf[r.ID] = len(c.records)
		c.records = append(c.records, r)
	}
	return c
}

// Records returns the catalog in its canonical order. Callers must not
// mutate the returned slice.
func (c *Catalog) Records() []*ArtworkRecord { return c.records }

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// ByID resolves a record by id without scanning.
func (c *Catalog) ByID(id string) (*ArtworkRecord, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// IndexOf returns the catalog position of an id, or -1 when absent.
func (c *Catalog) IndexOf(id string) int {
	if i, ok := c.indexOf[id]; ok {
		return i
	}
	return -1
}

// At returns the record at a catalog position, or nil when out of range.
func (c *Catalog) At(i int) *ArtworkRecord {
	if i < 0 || i >= len(c.records) {
		return nil
	}
	return c.records[i]
}

// CategoryCounts tallies records per category, plus the "all" total.
func (c *Catalog) CategoryCounts() map[Category]int {
	counts := map[Category]int{
		CategoryAll:    len(c.records),
		CategoryOil:    0,
		CategoryInk:    0,
		CategoryPastel: 0,
		CategoryMixed:  0,
	}
	for _, r := range c.records {
		if _, known := counts[r.Category]; known {
			counts[r.Category]++
		}
	}
	return counts
}
