// Package cleanup provides the background session sweeper
package cleanup

import (
	"context"
	"time"

	"github.com/artfolio/artfolio-go/internal/infrastructure/caching/interfaces"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
)

// Config controls sweep timing for the cleanup worker
type Config struct {
	Interval   time.Duration
	SessionTTL time.Duration
}

// Worker handles background expiry of idle gallery sessions
type Worker struct {
	cache  interfaces.SessionCache
	config *Config
	logger *logging.ChanneledLogger
}

// NewWorker creates a new cleanup worker with injected configuration
func NewWorker(cache interfaces.SessionCache, config *Config, logger *logging.ChanneledLogger) *Worker {
	return &Worker{
		cache:  cache,
		config: config,
		logger: logger,
	}
}

// Start begins the cleanup routine and blocks until ctx is cancelled
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	w.logger.Cache().Info("Session cleanup worker started", "interval", w.config.Interval, "sessionTTL", w.config.SessionTTL)

	for {
		select {
		case <-ctx.Done():
			w.logger.Cache().Info("Session cleanup worker stopping")
			return
		case <-ticker.C:
			w.performCleanup()
		}
	}
}

func (w *Worker) performCleanup() {
	start := time.Now()
	purged := w.cache.PurgeExpired(w.config.SessionTTL)

	if len(purged) > 0 {
		w.logger.Cache().Info("Expired gallery sessions purged",
			"purged", len(purged),
			"remaining", w.cache.SessionCount(),
			"duration", time.Since(start))
	} else {
		w.logger.Cache().Debug("Session cleanup pass found no expired sessions", "duration", time.Since(start))
	}
}
