package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// SweepSchedule is how often arrived armies are resolved.
const SweepSchedule = "@every 1m"

// Sweeper periodically resolves conflicts whose armies have arrived.
type Sweeper struct {
	service  *Service
	cron     *cron.Cron
	runMutex sync.Mutex
	running  bool
}

// NewSweeper creates a new conflict sweeper
func NewSweeper(service *Service) *Sweeper {
	return &Sweeper{
		service: service,
		cron:    cron.New(),
	}
}

// Start begins the periodic sweep.
func (s *Sweeper) Start(ctx context.Context) error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.running {
		return fmt.Errorf("conflict sweeper is already running")
	}

	_, err := s.cron.AddFunc(SweepSchedule, func() {
		resolved, err := s.service.ResolveDue(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "Conflict sweep failed", "error", err)
			return
		}
		if resolved > 0 {
			slog.InfoContext(ctx, "Conflict sweep completed", "resolved", resolved)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule conflict sweep: %w", err)
	}

	s.cron.Start()
	s.running = true
	slog.Info("Conflict sweeper started", "schedule", SweepSchedule)

	return nil
}

// Stop halts the sweep and waits for an in-flight run to finish.
func (s *Sweeper) Stop() {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if !s.running {
		return
	}

	<-s.cron.Stop().Done()
	s.running = false
	slog.Info("Conflict sweeper stopped")
}
