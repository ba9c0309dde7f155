// Package middleware provides HTTP middleware for session and auth handling
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-go/internal/application/services"
	"github.com/artfolio/artfolio-go/internal/domain/i18n"
)

// SessionHeader carries the gallery session ID on every stateful request.
const SessionHeader = "X-Artfolio-Session-ID"

const (
	sessionIDKey = "sessionID"
	langKey      = "lang"
)

// SessionMiddleware extracts the session ID header and resolves the request
// language. Routes mounted behind it require a live session.
func SessionMiddleware(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing " + SessionHeader + " header"})
			return
		}

		if !sessionService.Exists(sessionID) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown or expired session"})
			return
		}

		c.Set(sessionIDKey, sessionID)
		c.Set(langKey, ResolveLang(c))
		c.Next()
	}
}

// GetSessionID returns the session ID set by SessionMiddleware.
func GetSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get(sessionIDKey)
	if !exists {
		return "", false
	}
	sessionID, ok := value.(string)
	return sessionID, ok
}

// GetLang returns the resolved language for the request. Falls back to
// resolving directly so handlers outside SessionMiddleware can use it too.
func GetLang(c *gin.Context) i18n.Lang {
	if value, exists := c.Get(langKey); exists {
		if lang, ok := value.(i18n.Lang); ok {
			return lang
		}
	}
	return ResolveLang(c)
}

// ResolveLang picks the request language from the lang query parameter
// first, then the first Accept-Language tag. Unknown values fall back to
// English.
func ResolveLang(c *gin.Context) i18n.Lang {
	if raw := c.Query("lang"); raw != "" {
		return i18n.Parse(raw)
	}

	header := c.GetHeader("Accept-Language")
	if header != "" {
		first := strings.SplitN(header, ",", 2)[0]
		first = strings.SplitN(first, ";", 2)[0]
		first = strings.SplitN(strings.TrimSpace(first), "-", 2)[0]
		return i18n.Parse(first)
	}

	return i18n.LangEN
}
