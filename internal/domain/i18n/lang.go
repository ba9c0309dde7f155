// Package i18n provides the language model shared by all content lookups.
package i18n

import "github.com/artfolio/artfolio-go/internal/domain/entities/catalog"

// Lang identifies one of the supported site languages.
type Lang string

const (
	LangEN Lang = "en"
	LangKA Lang = "ka"
	LangRU Lang = "ru"
)

// Supported lists every language the site ships dictionaries for.
var Supported = []Lang{LangEN, LangKA, LangRU}

// Parse validates a raw language code. Unknown codes fall back to English,
// mirroring how an unrecognized page suffix resolves to the default site.
func Parse(raw string) Lang {
	for _, l := range Supported {
		if string(l) == raw {
			return l
		}
	}
	return LangEN
}

// Localized resolves a translatable string of shape {default, ka?, ru?}.
// A missing override falls through to the default-language value.
func Localized(def, ka, ru string, lang Lang) string {
	switch lang {
	case LangKA:
		if ka != "" {
			return ka
		}
	case LangRU:
		if ru != "" {
			return ru
		}
	}
	return def
}

// Title returns an artwork title in the requested language.
func Title(a *catalog.ArtworkRecord, lang Lang) string {
	return Localized(a.Title, a.TitleKa, a.TitleRu, lang)
}

// Technique returns an artwork technique in the requested language.
func Technique(a *catalog.ArtworkRecord, lang Lang) string {
	return Localized(a.Technique, a.TechniqueKa, a.TechniqueRu, lang)
}

// CategoryName returns the localized display name for a category.
func CategoryName(c catalog.Category, lang Lang) string {
	names, ok := categoryNames[c]
	if !ok {
		return string(c)
	}
	switch lang {
	case LangKA:
		return names.ka
	case LangRU:
		return names.ru
	default:
		return names.en
	}
}

var categoryNames = map[catalog.Category]struct{ en, ka, ru string }{
	catalog.CategoryAll:    {"All Works", "ყველა ნამუშევარი", "Все работы"},
	catalog.CategoryOil:    {"Oil Painting", "ზეთის სურათები", "Картины маслом"},
	catalog.CategoryInk:    {"Ink Drawing", "მელნის ნახატები", "Рисунки тушью"},
	catalog.CategoryPastel: {"Pastel", "პასტელი", "Пастель"},
	catalog.CategoryMixed:  {"Mixed Media", "შერეული ტექნიკა", "Смешанная техника"},
}
