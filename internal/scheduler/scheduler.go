// Package scheduler runs the background cron tasks: cache sweeping and the
// optional watchlist warmup.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"B3Advisor/internal/analyzer"
	"B3Advisor/internal/cache"
	"B3Advisor/internal/model"

	"github.com/robfig/cron/v3"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Analyzer  *analyzer.Analyzer
	Cache     *cache.Cache
	Watchlist []string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, an *analyzer.Analyzer, c *cache.Cache, watchlist []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(),
		Analyzer:  an,
		Cache:     c,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
}

// RegisterAll registers the sweep and warmup tasks. An empty warmup spec or
// watchlist disables the warmup.
func (s *Scheduler) RegisterAll(sweepSpec, warmupSpec string) error {
	if _, err := s.Cron.AddFunc(sweepSpec, s.sweepTask); err != nil {
		return fmt.Errorf("register sweep task: %w", err)
	}
	if warmupSpec != "" && len(s.Watchlist) > 0 {
		if _, err := s.Cron.AddFunc(warmupSpec, s.warmupTask); err != nil {
			return fmt.Errorf("register warmup task: %w", err)
		}
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

func (s *Scheduler) sweepTask() {
	if removed := s.Cache.Sweep(); removed > 0 {
		log.Printf("[INFO] cache sweep: %d expired entries removed", removed)
	}
}

// warmupTask pre-analyzes the configured watchlist under the moderate
// profile so popular lookups stay within the cache validity window.
func (s *Scheduler) warmupTask() {
	for _, ticker := range s.Watchlist {
		class := model.Classify(ticker)
		if _, err := s.Analyzer.Analyze(s.Ctx, ticker, class, model.ProfileModerate); err != nil {
			log.Printf("[WARN] watchlist warmup %s: %v", ticker, err)
		}
	}
}
