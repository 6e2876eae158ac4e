package services

import (
	"context"
	"sync"
	"time"

	"seekr/backend/internal/logger"
	"seekr/backend/internal/repositories"
)

// ExpirySweeper periodically deletes resumes whose TTL has passed.
type ExpirySweeper interface {
	Start(ctx context.Context)
	Stop()
	SweepOnce() (int64, error)
}

type expirySweeper struct {
	resumeRepo repositories.ResumeRepository
	interval   time.Duration
	now        func() time.Time
	wg         sync.WaitGroup
	stopChan   chan struct{}
	stopOnce   sync.Once
}

func NewExpirySweeper(resumeRepo repositories.ResumeRepository, interval time.Duration) ExpirySweeper {
	return &expirySweeper{
		resumeRepo: resumeRepo,
		interval:   interval,
		now:        time.Now,
		stopChan:   make(chan struct{}),
	}
}

// Start implements ExpirySweeper. A non-positive interval disables sweeping.
func (s *expirySweeper) Start(ctx context.Context) {
	if s.interval <= 0 {
		logger.Info().Msg("Resume expiry sweeper disabled")
		return
	}

	s.wg.Add(1)
	go s.run(ctx)

	logger.Info().Dur("interval", s.interval).Msg("Resume expiry sweeper started")
}

// Stop implements ExpirySweeper.
func (s *expirySweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
	logger.Info().Msg("Resume expiry sweeper stopped")
}

// SweepOnce implements ExpirySweeper.
func (s *expirySweeper) SweepOnce() (int64, error) {
	deleted, err := s.resumeRepo.DeleteExpired(s.now())
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		logger.Info().Int64("deleted", deleted).Msg("Expired resumes removed")
	}
	return deleted, nil
}

func (s *expirySweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(); err != nil {
				logger.Warn().Err(err).Msg("Failed to sweep expired resumes")
			}
		}
	}
}
