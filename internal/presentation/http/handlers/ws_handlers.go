package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/artfolio/artfolio-go/internal/application/services"
	"github.com/artfolio/artfolio-go/internal/infrastructure/messaging"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/internal/presentation/http/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandlers upgrades connections onto the gallery event stream
type WSHandlers struct {
	broadcaster    *messaging.GalleryBroadcaster
	sessionService *services.SessionService
	logger         *logging.ChanneledLogger
}

// NewWSHandlers creates websocket handlers with injected dependencies
func NewWSHandlers(broadcaster *messaging.GalleryBroadcaster, sessionService *services.SessionService, logger *logging.ChanneledLogger) *WSHandlers {
	return &WSHandlers{
		broadcaster:    broadcaster,
		sessionService: sessionService,
		logger:         logger,
	}
}

// Events upgrades the connection and streams the session's gallery events.
// The session ID comes from the query string because browsers cannot set
// custom headers on websocket upgrades.
func (h *WSHandlers) Events(c *gin.Context) {
	sessionID := c.Query("session")
	if sessionID == "" {
		sessionID = c.GetHeader(middleware.SessionHeader)
	}
	if sessionID == "" || !h.sessionService.Exists(sessionID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown or expired session"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Session().Error("Websocket upgrade failed", "sessionId", sessionID, "error", err.Error())
		return
	}

	client := messaging.NewClient(conn, sessionID)
	h.broadcaster.Register(client)

	go client.WritePump()
	go h.readPump(client)
}

// readPump drains inbound frames so pings and close frames are processed,
// then unregisters the client when the connection drops.
func (h *WSHandlers) readPump(client *messaging.Client) {
	defer h.broadcaster.Unregister(client)

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
