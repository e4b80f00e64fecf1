package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// SessionSweeper drops sessions that are finished or idle for too long.
type SessionSweeper interface {
	CleanupOldSessions(now time.Time) int
}

type Worker struct {
	Sessions SessionSweeper
	Interval time.Duration
}

func NewWorker(sessions SessionSweeper, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Worker{Sessions: sessions, Interval: interval}
}

// Start runs the cleanup once and then on every tick until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	go w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("cleanup worker stopped")
				return
			case <-ticker.C:
				w.runCleanup()
			}
		}
	}()
	log.Info().Dur("interval", w.Interval).Msg("cleanup worker started")
}

func (w *Worker) runCleanup() int {
	removed := w.Sessions.CleanupOldSessions(time.Now())
	log.Debug().Int("removed", removed).Msg("scheduled cleanup finished")
	return removed
}
