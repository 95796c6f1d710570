package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type checkerPruner interface {
	PruneIdle(maxIdle time.Duration) int
}

// Scheduler periodically purges expired sessions and drops availability
// checkers no form has touched recently.
type Scheduler struct {
	sessions    sessionPurger
	checkers    checkerPruner
	interval    time.Duration
	checkerIdle time.Duration
	logger      logger.Logger
}

func New(
	sessions sessionPurger,
	checkers checkerPruner,
	interval time.Duration,
	checkerIdle time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sessions:    sessions,
		checkers:    checkers,
		interval:    interval,
		checkerIdle: checkerIdle,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	purged, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.logger.Error("failed to purge expired sessions",
			logger.String("error", err.Error()),
		)
	} else if purged > 0 {
		s.logger.Info("expired sessions purged",
			logger.Int64("count", purged),
		)
	}

	if pruned := s.checkers.PruneIdle(s.checkerIdle); pruned > 0 {
		s.logger.Info("idle availability checkers dropped",
			logger.Int("count", pruned),
		)
	}
}
