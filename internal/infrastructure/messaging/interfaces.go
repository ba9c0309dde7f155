// Package messaging defines interfaces for real-time communication.
package messaging

// Broadcaster defines the interface for managing websocket client
// connections and pushing gallery events to them.
type Broadcaster interface {
	Register(client *Client)
	Unregister(client *Client)
	SessionConnectionCount(sessionID string) int
	BroadcastToSession(sessionID string, event string, payload any)
}
