// Package scheduler runs the periodic status refresh that keeps task
// statuses in sync with the wall clock. The loop is owned by its caller and
// stops when the context is canceled, rather than re-arming itself forever.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultInterval is the cadence of the status refresh pass.
const DefaultInterval = 60 * time.Second

// Refresher recomputes derived task statuses against the current time.
type Refresher interface {
	RefreshStatuses() error
}

// StatusUpdater periodically invokes a Refresher.
type StatusUpdater struct {
	refresher Refresher
	interval  time.Duration
	log       zerolog.Logger
}

// New creates a StatusUpdater. A non-positive interval falls back to the
// default cadence.
func New(refresher Refresher, interval time.Duration, log zerolog.Logger) *StatusUpdater {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &StatusUpdater{
		refresher: refresher,
		interval:  interval,
		log:       log,
	}
}

// Run performs one refresh immediately, then one per tick until the context
// is canceled. Refresh errors are logged and the loop keeps going; a failed
// pass is retried on the next tick anyway.
func (s *StatusUpdater) Run(ctx context.Context) {
	s.refresh()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug().Msg("status updater stopped")
			return
		case <-ticker.C:
			s.refresh()
		}
	}
}

func (s *StatusUpdater) refresh() {
	if err := s.refresher.RefreshStatuses(); err != nil {
		s.log.Warn().Err(err).Msg("status refresh failed")
	}
}
