package performance

import (
	"fmt"
	"sync"
	"time"
)

// Tracker manages performance markers and aggregates simple metrics
type Tracker struct {
	markers map[string]*Marker
	mu      sync.RWMutex
	started time.Time
	config  *TrackerConfig
	nextID  uint64
}

// TrackerConfig contains configuration options for the performance tracker
type TrackerConfig struct {
	MaxMarkers int `json:"maxMarkers"` // Maximum number of markers to retain
}

// DefaultTrackerConfig returns a sensible default configuration
func DefaultTrackerConfig() *TrackerConfig {
	return &TrackerConfig{MaxMarkers: 10000}
}

// NewTracker creates a performance tracker
func NewTracker(config *TrackerConfig) *Tracker {
	if config == nil {
		config = DefaultTrackerConfig()
	}
	return &Tracker{
		markers: make(map[string]*Marker),
		started: time.Now(),
		config:  config,
	}
}

// StartOperation creates and registers a marker for an operation
func (t *Tracker) StartOperation(operation, sessionID string) *Marker {
	marker := &Marker{
		Operation: operation,
		SessionID: sessionID,
		StartTime: time.Now(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.markers) >= t.config.MaxMarkers {
		t.evictOldestLocked()
	}
	t.nextID++
	id := fmt.Sprintf("%s-%d", operation, t.nextID)
	t.markers[id] = marker

	return marker
}

// Summary aggregates completed markers per operation name
func (t *Tracker) Summary() map[string]OperationStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats := make(map[string]OperationStats)
	for _, m := range t.markers {
		if !m.Completed {
			continue
		}
		s := stats[m.Operation]
		s.Count++
		s.TotalDuration += m.Duration
		if m.Success {
			s.Successes++
		}
		if m.Duration > s.MaxDuration {
			s.MaxDuration = m.Duration
		}
		stats[m.Operation] = s
	}
	return stats
}

// Uptime reports how long the tracker has been running
func (t *Tracker) Uptime() time.Duration {
	return time.Since(t.started)
}

// OperationStats is the aggregate view of one operation's markers
type OperationStats struct {
	Count         int           `json:"count"`
	Successes     int           `json:"successes"`
	TotalDuration time.Duration `json:"totalDuration"`
	MaxDuration   time.Duration `json:"maxDuration"`
}

// evictOldestLocked drops the oldest completed marker. Caller holds the lock.
func (t *Tracker) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, m := range t.markers {
		if oldestID == "" || m.StartTime.Before(oldest) {
			oldestID = id
			oldest = m.StartTime
		}
	}
	if oldestID != "" {
		delete(t.markers, oldestID)
	}
}
