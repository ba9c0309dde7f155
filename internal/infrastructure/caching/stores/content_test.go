package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
)

func TestArtworkRoundTrip(t *testing.T) {
	store := NewContentStore()

	_, found := store.GetArtwork("spring")
	require.False(t, found)

	record := &catalog.ArtworkRecord{ID: "spring", Title: "Spring", Category: catalog.CategoryOil}
	store.SetArtwork(record)

	got, found := store.GetArtwork("spring")
	require.True(t, found)
	assert.Same(t, record, got)
}

func TestArtworkIDListMaintenance(t *testing.T) {
	store := NewContentStore()

	// Adds and removes are no-ops until a full list has been cached.
	store.AddArtworkID("spring")
	_, found := store.GetAllArtworkIDs()
	require.False(t, found)

	store.SetAllArtworkIDs([]string{"spring", "autumn"})
	store.AddArtworkID("winter")
	store.AddArtworkID("spring") // duplicate

	ids, found := store.GetAllArtworkIDs()
	require.True(t, found)
	assert.Equal(t, []string{"spring", "autumn", "winter"}, ids)

	store.RemoveArtworkID("autumn")
	ids, _ = store.GetAllArtworkIDs()
	assert.Equal(t, []string{"spring", "winter"}, ids)
}

func TestGetAllArtworkIDsReturnsCopy(t *testing.T) {
	store := NewContentStore()
	store.SetAllArtworkIDs([]string{"a", "b"})

	ids, _ := store.GetAllArtworkIDs()
	ids[0] = "mutated"

	fresh, _ := store.GetAllArtworkIDs()
	assert.Equal(t, []string{"a", "b"}, fresh)
}

func TestInvalidateArtworkDropsDerivedContent(t *testing.T) {
	store := NewContentStore()
	record := &catalog.ArtworkRecord{ID: "spring", Category: catalog.CategoryOil}
	store.SetArtwork(record)
	store.SetCatalog(catalog.New([]*catalog.ArtworkRecord{record}))
	store.SetCategoryCounts(map[catalog.Category]int{catalog.CategoryAll: 1})

	store.InvalidateArtwork("spring")

	_, found := store.GetArtwork("spring")
	assert.False(t, found)
	_, found = store.GetCatalog()
	assert.False(t, found)
	_, found = store.GetCategoryCounts()
	assert.False(t, found)
}

func TestInvalidateContentCacheClearsEverything(t *testing.T) {
	store := NewContentStore()
	record := &catalog.ArtworkRecord{ID: "spring", Category: catalog.CategoryOil}
	store.SetArtwork(record)
	store.SetAllArtworkIDs([]string{"spring"})
	store.SetCatalog(catalog.New([]*catalog.ArtworkRecord{record}))
	store.SetSlides([]*catalog.SlideRecord{{ID: 1, Image: "/media/images/works/spring.jpg"}})
	store.SetCategoryCounts(map[catalog.Category]int{catalog.CategoryAll: 1})

	store.InvalidateContentCache()

	_, found := store.GetArtwork("spring")
	assert.False(t, found)
	_, found = store.GetAllArtworkIDs()
	assert.False(t, found)
	_, found = store.GetCatalog()
	assert.False(t, found)
	_, found = store.GetSlides()
	assert.False(t, found)
	_, found = store.GetCategoryCounts()
	assert.False(t, found)
}

func TestSlidesRoundTripReturnsCopy(t *testing.T) {
	store := NewContentStore()

	_, found := store.GetSlides()
	require.False(t, found)

	store.SetSlides([]*catalog.SlideRecord{
		{ID: 1, Image: "/media/images/works/still-life.jpg", Alt: "Still life"},
		{ID: 2, Image: "/media/images/works/dream.jpg", Alt: "Dream"},
	})

	slides, found := store.GetSlides()
	require.True(t, found)
	require.Len(t, slides, 2)

	slides[0] = nil
	fresh, _ := store.GetSlides()
	assert.NotNil(t, fresh[0])
}

func TestCategoryCountsReturnsCopy(t *testing.T) {
	store := NewContentStore()
	store.SetCategoryCounts(map[catalog.Category]int{catalog.CategoryOil: 3})

	counts, found := store.GetCategoryCounts()
	require.True(t, found)
	counts[catalog.CategoryOil] = 99

	fresh, _ := store.GetCategoryCounts()
	assert.Equal(t, 3, fresh[catalog.CategoryOil])
}
