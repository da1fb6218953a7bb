package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Refresher rebuilds the served bookmark snapshot.
type Refresher interface {
	Refresh() error
}

// RefreshScheduler re-extracts the configured sources on a cron schedule.
type RefreshScheduler struct {
	refresher Refresher
	schedule  string
	logger    zerolog.Logger

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

func NewRefreshScheduler(refresher Refresher, schedule string, logger zerolog.Logger) *RefreshScheduler {
	return &RefreshScheduler{
		refresher: refresher,
		schedule:  schedule,
		logger:    logger,
		cron:      cron.New(cron.WithParser(scheduleParser)),
	}
}

// Start schedules the refresh job. It stops when ctx is cancelled or Stop
// is called.
func (s *RefreshScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.runRefresh)
	if err != nil {
		return fmt.Errorf("failed to schedule refresh job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := NextRunTime(s.schedule, time.Now())
	s.logger.Info().
		Str("schedule", s.schedule).
		Time("next_run", nextRun).
		Msgf("Refresh scheduler started (%s)", GetCronDescription(s.schedule))

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running refresh to finish and stops the scheduler.
func (s *RefreshScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	s.isRunning = false

	s.logger.Info().Msg("Refresh scheduler stopped")
}

// RunNow triggers an immediate refresh in the background.
func (s *RefreshScheduler) RunNow() {
	go s.runRefresh()
}

func (s *RefreshScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next refresh will occur
func (s *RefreshScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *RefreshScheduler) runRefresh() {
	startTime := time.Now()
	if err := s.refresher.Refresh(); err != nil {
		s.logger.Warn().Err(err).Msg("Scheduled refresh failed")
		return
	}
	s.logger.Debug().
		Dur("duration", time.Since(startTime).Round(time.Millisecond)).
		Msg("Scheduled refresh finished")
}
