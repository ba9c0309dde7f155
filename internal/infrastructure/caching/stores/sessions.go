package stores

import (
	"sync"
	"time"

	"github.com/artfolio/artfolio-go/internal/domain/gallery"
)

// sessionEntry pairs a gallery controller with its access timestamp
type sessionEntry struct {
	controller   *gallery.Controller
	lastAccessed time.Time
}

// SessionStore implements gallery session state caching with a hard
// cap on live sessions. When the cap is reached the least recently
// accessed session is evicted.
type SessionStore struct {
	sessions    map[string]*sessionEntry
	maxSessions int
	mu          sync.RWMutex
}

// NewSessionStore creates a new session cache store
func NewSessionStore(maxSessions int) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*sessionEntry),
		maxSessions: maxSessions,
	}
}

func (ss *SessionStore) GetSession(sessionID string) (*gallery.Controller, bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	entry, found := ss.sessions[sessionID]
	if !found {
		return nil, false
	}
	entry.lastAccessed = time.Now().UTC()
	return entry.controller, true
}

func (ss *SessionStore) SetSession(sessionID string, controller *gallery.Controller) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if _, exists := ss.sessions[sessionID]; !exists && ss.maxSessions > 0 && len(ss.sessions) >= ss.maxSessions {
		ss.evictOldestLocked()
	}

	ss.sessions[sessionID] = &sessionEntry{
		controller:   controller,
		lastAccessed: time.Now().UTC(),
	}
}

// TouchSession refreshes a session's access time without reading it
func (ss *SessionStore) TouchSession(sessionID string) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	entry, found := ss.sessions[sessionID]
	if !found {
		return false
	}
	entry.lastAccessed = time.Now().UTC()
	return true
}

func (ss *SessionStore) RemoveSession(sessionID string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, sessionID)
}

func (ss *SessionStore) GetAllSessionIDs() []string {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	ids := make([]string, 0, len(ss.sessions))
	for id := range ss.sessions {
		ids = append(ids, id)
	}
	return ids
}

func (ss *SessionStore) SessionCount() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.sessions)
}

// PurgeExpired removes sessions idle longer than ttl and returns their IDs
func (ss *SessionStore) PurgeExpired(ttl time.Duration) []string {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	cutoff := time.Now().UTC().Add(-ttl)
	var purged []string
	for id, entry := range ss.sessions {
		if entry.lastAccessed.Before(cutoff) {
			delete(ss.sessions, id)
			purged = append(purged, id)
		}
	}
	return purged
}

// evictOldestLocked removes the least recently accessed session. Caller holds the lock.
func (ss *SessionStore) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, entry := range ss.sessions {
		if oldestID == "" || entry.lastAccessed.Before(oldest) {
			oldestID = id
			oldest = entry.lastAccessed
		}
	}
	if oldestID != "" {
		delete(ss.sessions, oldestID)
	}
}
