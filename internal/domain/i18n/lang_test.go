package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
)

func TestParse(t *testing.T) {
	assert.Equal(t, LangEN, Parse("en"))
	assert.Equal(t, LangKA, Parse("ka"))
	assert.Equal(t, LangRU, Parse("ru"))
	assert.Equal(t, LangEN, Parse("de"))
	assert.Equal(t, LangEN, Parse(""))
}

func TestLocalized(t *testing.T) {
	t.Run("uses override when present", func(t *testing.T) {
		assert.Equal(t, "გაზაფხული", Localized("Spring", "გაზაფხული", "Весна", LangKA))
		assert.Equal(t, "Весна", Localized("Spring", "გაზაფხული", "Весна", LangRU))
	})

	t.Run("falls back to default when override missing", func(t *testing.T) {
		assert.Equal(t, "Spring", Localized("Spring", "", "", LangKA))
		assert.Equal(t, "Spring", Localized("Spring", "", "", LangRU))
		assert.Equal(t, "Spring", Localized("Spring", "ignored", "ignored", LangEN))
	})
}

func TestArtworkLookups(t *testing.T) {
	a := &catalog.ArtworkRecord{
		Title:       "Spring",
		TitleRu:     "Весна",
		Technique:   "Oil on Canvas",
		TechniqueKa: "ზეთი ტილოზე",
	}

	assert.Equal(t, "Весна", Title(a, LangRU))
	assert.Equal(t, "Spring", Title(a, LangKA))
	assert.Equal(t, "ზეთი ტილოზე", Technique(a, LangKA))
	assert.Equal(t, "Oil on Canvas", Technique(a, LangRU))
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Oil Painting", CategoryName(catalog.CategoryOil, LangEN))
	assert.Equal(t, "Пастель", CategoryName(catalog.CategoryPastel, LangRU))
	assert.Equal(t, "bogus", CategoryName(catalog.Category("bogus"), LangEN))
}
