package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/artfolio/artfolio-go/internal/domain/i18n"
)

func testContext(t *testing.T, target string, header http.Header) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	for key, values := range header {
		for _, v := range values {
			c.Request.Header.Add(key, v)
		}
	}
	return c
}

func TestResolveLangQueryParamWins(t *testing.T) {
	c := testContext(t, "/api/v1/gallery/view?lang=ka", http.Header{
		"Accept-Language": {"ru-RU,ru;q=0.9"},
	})
	assert.Equal(t, i18n.LangKA, ResolveLang(c))
}

func TestResolveLangAcceptLanguageHeader(t *testing.T) {
	cases := map[string]i18n.Lang{
		"ka":              i18n.LangKA,
		"ru-RU,ru;q=0.9":  i18n.LangRU,
		"ka-GE, en;q=0.8": i18n.LangKA,
		"en-US,en;q=0.9":  i18n.LangEN,
		"fr-FR,fr;q=0.9":  i18n.LangEN,
		"de":              i18n.LangEN,
	}
	for header, want := range cases {
		c := testContext(t, "/api/v1/gallery/view", http.Header{"Accept-Language": {header}})
		assert.Equal(t, want, ResolveLang(c), "header %q", header)
	}
}

func TestResolveLangDefaultsToEnglish(t *testing.T) {
	c := testContext(t, "/api/v1/gallery/view", nil)
	assert.Equal(t, i18n.LangEN, ResolveLang(c))
}

func TestResolveLangUnknownQueryFallsBack(t *testing.T) {
	c := testContext(t, "/api/v1/gallery/view?lang=fr", nil)
	assert.Equal(t, i18n.LangEN, ResolveLang(c))
}

func TestGetLangFallsBackWithoutMiddleware(t *testing.T) {
	c := testContext(t, "/api/v1/slider?lang=ru", nil)
	assert.Equal(t, i18n.LangRU, GetLang(c))
}

func TestGetSessionIDRequiresMiddleware(t *testing.T) {
	c := testContext(t, "/api/v1/gallery/view", nil)
	_, found := GetSessionID(c)
	assert.False(t, found)

	c.Set("sessionID", "abc")
	id, found := GetSessionID(c)
	assert.True(t, found)
	assert.Equal(t, "abc", id)
}
