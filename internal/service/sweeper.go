package service

import (
	"context"
	"time"

	"marketplace-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// Sweeper periodically drops expired approval codes, idle attempt
// counters and stale cache entries.
type Sweeper struct {
	codes    ports.ApprovalCodeStore
	limiter  ports.AttemptLimiter
	cache    ports.VendorCache
	metrics  ports.LedgerMetrics
	interval time.Duration
	clock    func() time.Time
	log      zerolog.Logger
}

// NewSweeper creates a new Sweeper.
func NewSweeper(
	codes ports.ApprovalCodeStore,
	limiter ports.AttemptLimiter,
	cache ports.VendorCache,
	metrics ports.LedgerMetrics,
	interval time.Duration,
	log zerolog.Logger,
) *Sweeper {
	return &Sweeper{
		codes:    codes,
		limiter:  limiter,
		cache:    cache,
		metrics:  metrics,
		interval: interval,
		clock:    time.Now,
		log:      log,
	}
}

// Run sweeps on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce runs a single pass and returns how many entries went.
func (s *Sweeper) SweepOnce(ctx context.Context) int {
	now := s.clock()

	codes, err := s.codes.Sweep(ctx, now)
	if err != nil {
		s.log.Warn().Err(err).Msg("approval code sweep failed")
	}
	attempts, err := s.limiter.Sweep(ctx, now)
	if err != nil {
		s.log.Warn().Err(err).Msg("attempt limiter sweep failed")
	}
	s.cache.DeleteExpired()

	removed := codes + attempts
	s.metrics.SweepCompleted(removed)
	s.log.Debug().Int("codes", codes).Int("attempts", attempts).Int("cached", s.cache.Len()).Msg("sweep completed")
	return removed
}
