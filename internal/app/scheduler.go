package app

import (
	"context"
	"time"

	"ministry-jobs-parser/internal/observability"
)

// Pipeline is what the scheduler drives; satisfied by Orchestrator.
type Pipeline interface {
	RunOneScan(ctx context.Context) *ScanStats
	RunRetentionSweep(ctx context.Context, days int) (int, error)
}

// Scheduler owns the two recurring background processes: the short-interval
// full scan and the once-daily retention sweep. The loops are independent
// and need no mutual exclusion — the scan only inserts and touches sources,
// the sweep only deletes by age, and a posting inserted at age zero can
// never be old enough to be swept in the same tick.
type Scheduler struct {
	pipeline      Pipeline
	logger        *observability.Logger
	scanInterval  time.Duration
	retentionDays int
}

func NewScheduler(pipeline Pipeline, logger *observability.Logger, scanInterval time.Duration, retentionDays int) *Scheduler {
	return &Scheduler{
		pipeline:      pipeline,
		logger:        logger,
		scanInterval:  scanInterval,
		retentionDays: retentionDays,
	}
}

// Start runs both loops until ctx is cancelled. It blocks.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Scheduler started",
		"scan_interval", s.scanInterval.String(),
		"retention_days", s.retentionDays,
	)

	go s.retentionLoop(ctx)
	s.scanLoop(ctx)
}

// scanLoop runs a scan immediately, then on every tick. Ticks are measured
// from loop start: an overrunning scan delays the next one (single-threaded
// execution is the only overlap guard) but never stacks scans.
func (s *Scheduler) scanLoop(ctx context.Context) {
	s.pipeline.RunOneScan(ctx)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scan loop stopped")
			return
		case <-ticker.C:
			s.pipeline.RunOneScan(ctx)
		}
	}
}

// retentionLoop first fires at the next local midnight, then every 24
// hours. A failed sweep is logged and retried at the next tick.
func (s *Scheduler) retentionLoop(ctx context.Context) {
	timer := time.NewTimer(untilNextMidnight(time.Now()))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}
	s.runSweep(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Retention loop stopped")
			return
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *Scheduler) runSweep(ctx context.Context) {
	if _, err := s.pipeline.RunRetentionSweep(ctx, s.retentionDays); err != nil {
		s.logger.Error("Retention sweep failed", "error", err.Error())
	}
}

func untilNextMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return next.Sub(now)
}
