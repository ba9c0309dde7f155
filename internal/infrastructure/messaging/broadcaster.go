// Package messaging provides the concrete websocket broadcaster implementation.
package messaging

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
)

const (
	writeWait      = 10 * time.Second
	pingPeriod     = 45 * time.Second
	sendBufferSize = 16
)

// Client represents a single connected websocket client bound to a gallery session.
type Client struct {
	Conn      *websocket.Conn
	SessionID string
	Send      chan []byte
}

// NewClient wraps a websocket connection for a session.
func NewClient(conn *websocket.Conn, sessionID string) *Client {
	return &Client{
		Conn:      conn,
		SessionID: sessionID,
		Send:      make(chan []byte, sendBufferSize),
	}
}

// WritePump drains the send channel onto the websocket connection. Run as a
// goroutine per client; returns when the channel closes or a write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// envelope is the wire format for every pushed event.
type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

// GalleryBroadcaster manages session-scoped websocket connections and fans
// gallery events out to every client watching a session.
type GalleryBroadcaster struct {
	sessionClients map[string]map[*Client]bool
	mu             sync.Mutex
	logger         *logging.ChanneledLogger
}

var _ Broadcaster = (*GalleryBroadcaster)(nil)

// NewGalleryBroadcaster creates a broadcaster instance.
func NewGalleryBroadcaster(logger *logging.ChanneledLogger) *GalleryBroadcaster {
	return &GalleryBroadcaster{
		sessionClients: make(map[string]map[*Client]bool),
		logger:         logger,
	}
}

// Register adds a client to its session's fan-out set.
func (b *GalleryBroadcaster) Register(client *Client) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sessionClients[client.SessionID] == nil {
		b.sessionClients[client.SessionID] = make(map[*Client]bool)
	}
	b.sessionClients[client.SessionID][client] = true

	b.logger.Session().Debug("Websocket client registered", "sessionId", client.SessionID)
}

// Unregister removes a client and closes its send channel.
func (b *GalleryBroadcaster) Unregister(client *Client) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if clients, ok := b.sessionClients[client.SessionID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.Send)
			if len(clients) == 0 {
				delete(b.sessionClients, client.SessionID)
			}
		}
	}

	b.logger.Session().Debug("Websocket client unregistered", "sessionId", client.SessionID)
}

// SessionConnectionCount returns the connection count for a session.
func (b *GalleryBroadcaster) SessionConnectionCount(sessionID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessionClients[sessionID])
}

// BroadcastToSession pushes one event to every client watching a session.
// Clients with a full send buffer are skipped rather than blocked on.
func (b *GalleryBroadcaster) BroadcastToSession(sessionID string, event string, payload any) {
	message, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		b.logger.Session().Error("Failed to marshal websocket event", "event", event, "error", err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	clients, ok := b.sessionClients[sessionID]
	if !ok {
		return
	}
	for client := range clients {
		select {
		case client.Send <- message:
		default:
		}
	}
}

// DisconnectSession force-closes every client of a session. Used when the
// session itself is purged.
func (b *GalleryBroadcaster) DisconnectSession(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	clients, ok := b.sessionClients[sessionID]
	if !ok {
		return
	}
	for client := range clients {
		close(client.Send)
	}
	delete(b.sessionClients, sessionID)

	b.logger.Session().Debug("Websocket session disconnected", "sessionId", sessionID)
}
