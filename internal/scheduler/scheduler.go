package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type verdictRefresher interface {
	RefreshPendingVerdicts(ctx context.Context) (int, error)
}

// Scheduler periodically retries travel checks that were left pending because
// the routing provider was unavailable at booking time.
type Scheduler struct {
	gameService verdictRefresher
	interval    time.Duration
	logger      logger.Logger
}

func New(
	gameService verdictRefresher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		gameService: gameService,
		interval:    interval,
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
	resolved, err := s.gameService.RefreshPendingVerdicts(ctx)
	if err != nil {
		s.logger.Error("failed to refresh pending travel checks",
			logger.String("error", err.Error()),
		)
		return
	}

	if resolved > 0 {
		s.logger.Info("pending travel checks resolved",
			logger.Int("count", resolved),
		)
	}
}
