// Package scheduler runs the periodic housekeeping jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper removes expired state and reports how many entries it dropped
type Sweeper interface {
	Sweep() int
}

// Scheduler handles scheduled tasks
type Scheduler struct {
	cron     *cron.Cron
	sessions Sweeper
	every    time.Duration
}

// New creates a scheduler that sweeps sessions every interval
func New(sessions Sweeper, every time.Duration) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		sessions: sessions,
		every:    every,
	}
}

// Start registers the jobs and starts the scheduler
func (s *Scheduler) Start() error {
	spec := fmt.Sprintf("@every %s", s.every)
	if _, err := s.cron.AddFunc(spec, s.sweepSessions); err != nil {
		return fmt.Errorf("schedule session sweep %q: %w", spec, err)
	}

	s.cron.Start()
	slog.Info("scheduler started", "session_sweep", s.every)
	return nil
}

// Stop stops the scheduler and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		slog.Warn("scheduler stop timed out")
	}
}

// Entries returns the number of registered jobs
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) sweepSessions() {
	removed := s.sessions.Sweep()
	slog.Debug("session sweep finished", "removed", removed)
}
