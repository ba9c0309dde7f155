package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-go/internal/application/services"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/presentation/http/middleware"
)

// SessionHandlers contains session lifecycle HTTP handlers
type SessionHandlers struct {
	sessionService *services.SessionService
	logger         *logging.ChanneledLogger
}

// NewSessionHandlers creates session handlers with injected dependencies
func NewSessionHandlers(sessionService *services.SessionService, logger *logging.ChanneledLogger) *SessionHandlers {
	return &SessionHandlers{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Create mints a new gallery session and returns its ID. An optional
// filter query parameter seeds the session's category, whitelist-validated.
func (h *SessionHandlers) Create(c *gin.Context) {
	lang := middleware.ResolveLang(c)

	sessionID, err := h.sessionService.Create(lang, c.Query("filter"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header(middleware.SessionHeader, sessionID)
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sessionID,
		"lang":      lang,
	})
}

// Destroy removes the request's session
func (h *SessionHandlers) Destroy(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	h.sessionService.Destroy(sessionID)
	c.JSON(http.StatusOK, gin.H{"destroyed": true})
}
