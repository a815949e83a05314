package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ErlanBelekov/rideboard/internal/metrics"
	"github.com/robfig/cron/v3"
)

// Sweeper periodically evicts idle sessions from a Table on a cron schedule.
type Sweeper struct {
	table    *Table
	schedule string
	logger   *slog.Logger
}

// NewSweeper validates schedule (standard cron syntax or descriptors such as
// "@every 1m") and returns a sweeper for table.
func NewSweeper(table *Table, schedule string, logger *slog.Logger) (*Sweeper, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("parse sweep schedule %q: %w", schedule, err)
	}
	return &Sweeper{
		table:    table,
		schedule: schedule,
		logger:   logger.With("component", "session_sweeper"),
	}, nil
}

// Start runs the sweep on schedule until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	c := cron.New()
	if _, err := c.AddFunc(s.schedule, s.Sweep); err != nil {
		s.logger.Error("register sweep", "schedule", s.schedule, "error", err)
		return
	}

	c.Start()
	s.logger.Info("session sweeper started", "schedule", s.schedule)

	<-ctx.Done()
	<-c.Stop().Done()
	s.logger.Info("session sweeper shut down")
}

// Sweep runs a single eviction pass.
func (s *Sweeper) Sweep() {
	removed := s.table.Sweep()
	if removed > 0 {
		metrics.SessionsSweptTotal.Add(float64(removed))
		s.logger.Debug("evicted idle sessions", "count", removed)
	}
}
