package messaging

import (
	"github.com/artfolio/artfolio-go/internal/domain/gallery"
)

// Event names pushed over the websocket.
const (
	EventViewChanged        = "view_changed"
	EventLightboxChanged    = "lightbox_changed"
	EventLightboxClosed     = "lightbox_closed"
	EventResultCountChanged = "result_count_changed"
)

// SessionListener forwards a session's gallery engine events to the
// websocket broadcaster.
type SessionListener struct {
	sessionID   string
	broadcaster Broadcaster
}

var _ gallery.Listener = (*SessionListener)(nil)

// NewSessionListener binds a gallery listener to a session's websocket fan-out.
func NewSessionListener(sessionID string, broadcaster Broadcaster) *SessionListener {
	return &SessionListener{
		sessionID:   sessionID,
		broadcaster: broadcaster,
	}
}

func (l *SessionListener) ViewChanged(v gallery.View) {
	l.broadcaster.BroadcastToSession(l.sessionID, EventViewChanged, v)
}

func (l *SessionListener) LightboxChanged(v gallery.LightboxView) {
	l.broadcaster.BroadcastToSession(l.sessionID, EventLightboxChanged, v)
}

func (l *SessionListener) LightboxClosed(restoreFocus string) {
	l.broadcaster.BroadcastToSession(l.sessionID, EventLightboxClosed, map[string]string{"restoreFocus": restoreFocus})
}

func (l *SessionListener) ResultCountChanged(count int) {
	l.broadcaster.BroadcastToSession(l.sessionID, EventResultCountChanged, map[string]int{"count": count})
}
