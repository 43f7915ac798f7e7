package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"quantpulse/internal/scanner"
	"quantpulse/internal/watchlist"
)

// Scheduler periodically rescans the watchlist so the dashboard reads a warm
// report instead of waiting on provider round-trips.
type Scheduler struct {
	Cron      *cron.Cron
	Scanner   *scanner.Scanner
	Watchlist *watchlist.Manager
	Cache     *scanner.ReportCache
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, sc *scanner.Scanner, wl *watchlist.Manager, cache *scanner.ReportCache) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Scanner:   sc,
		Watchlist: wl,
		Cache:     cache,
		Ctx:       ctx,
	}
}

// Register registers the periodic rescan task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately (for warm-up on start).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	if s.Ctx.Err() != nil {
		return
	}
	log.Println("[INFO] running watchlist refresh")
	report := s.Scanner.Scan(s.Ctx, s.Watchlist.Symbols())
	s.Cache.Set(report)
}
