package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/middleware"
	"github.com/schoolhub/sims-backend/internal/repository"
	pkglogger "github.com/schoolhub/sims-backend/pkg/logger"
)

// RetentionService purges trashed messages whose retention window has
// passed. The window was previously a display-only computation; the sweep
// makes it an enforced server-side policy.
type RetentionService struct {
	repo repository.MessageRepository
	cron string
	days int
}

// NewRetentionService creates a RetentionService. An empty cron defaults
// to daily at 02:00; days <= 0 defaults to the standard 30-day window.
func NewRetentionService(repo repository.MessageRepository, cron string, days int) (*RetentionService, error) {
	if cron == "" {
		cron = "0 2 * * *"
	}
	if !gronx.IsValid(cron) {
		return nil, fmt.Errorf("invalid retention cron expression: %s", cron)
	}
	if days <= 0 {
		days = domain.TrashRetentionDays
	}
	return &RetentionService{repo: repo, cron: cron, days: days}, nil
}

// Start launches the scheduler goroutine and returns a cancel func
func (s *RetentionService) Start(ctx context.Context) context.CancelFunc {
	ctx2, cancel := context.WithCancel(ctx)
	go s.run(ctx2)
	pkglogger.GetLogger().Info().
		Str("cron", s.cron).
		Int("days", s.days).
		Msg("retention scheduler started")
	return cancel
}

// run sleeps until the next cron tick and triggers a sweep
func (s *RetentionService) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			pkglogger.GetLogger().Info().Msg("retention scheduler stopping")
			return
		default:
		}

		now := time.Now()
		next, err := gronx.NextTickAfter(s.cron, now, false)
		if err != nil {
			pkglogger.GetLogger().Error().Err(err).Str("cron", s.cron).Msg("retention next tick failed")
			select {
			case <-time.After(30 * time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		select {
		case <-time.After(time.Until(next)):
			if purged, err := s.RunOnce(); err != nil {
				pkglogger.GetLogger().Error().Err(err).Msg("retention sweep failed")
			} else if purged > 0 {
				pkglogger.GetLogger().Info().Int("purged", purged).Msg("retention sweep completed")
			}
		case <-ctx.Done():
			pkglogger.GetLogger().Info().Msg("retention scheduler stopping")
			return
		}
	}
}

// RunOnce performs a single sweep and returns the number of messages
// purged. Exposed so admin endpoints and tests can trigger it directly.
func (s *RetentionService) RunOnce() (int, error) {
	cutoff := time.Now().AddDate(0, 0, -s.days)
	expired, err := s.repo.FindTrashedBefore(cutoff)
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, msg := range expired {
		if err := s.repo.Delete(msg.ID); err != nil {
			pkglogger.GetLogger().Error().Err(err).Uint64("id", msg.ID).Msg("retention purge failed")
			continue
		}
		purged++
	}
	middleware.AddMessagesPurged(purged)
	return purged, nil
}
