package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sweeper interface {
	Sweep() int
}

// Scheduler periodically reclaims expired rate-limit windows. It is the
// only long-running in-process task besides the HTTP server.
type Scheduler struct {
	limiter  sweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	limiter sweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		limiter:  limiter,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweep scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweep scheduler stopped")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	removed := s.limiter.Sweep()
	if removed > 0 {
		s.logger.Debug("expired rate-limit windows swept",
			logger.Int("count", removed),
		)
	}
}
