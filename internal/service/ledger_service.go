package service

import (
	"context"

	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService. Balances are always
// rebuilt from sale and withdrawal rows; the cache only spares repeated
// reads.
type LedgerServiceImpl struct {
	vendors vendorDirectory
	stats   ports.StatisticsRepository
	cache   ports.VendorCache
	tx      txRunner
	log     zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	vendors ports.VendorRepository,
	stats ports.StatisticsRepository,
	cache ports.VendorCache,
	transactor ports.DBTransactor,
	policy TxPolicy,
	metrics ports.LedgerMetrics,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		vendors: vendorDirectory{repo: vendors, cache: cache},
		stats:   stats,
		cache:   cache,
		tx:      newTxRunner(transactor, policy, metrics, log),
		log:     log,
	}
}

// ComputeVendorBalance recomputes the vendor's statistics and refreshes the
// cache entry. The stale entry is dropped first so a failed recompute never
// leaves an old balance behind.
func (s *LedgerServiceImpl) ComputeVendorBalance(ctx context.Context, vendorID uuid.UUID) (*domain.VendorStatistics, error) {
	s.cache.Invalidate(vendorID)

	var st *domain.VendorStatistics
	err := s.tx.run(ctx, "recompute_statistics", func(tx pgx.Tx) error {
		var err error
		st, err = s.stats.Recompute(ctx, tx, vendorID)
		return err
	})
	if err != nil {
		return nil, internalErr("recompute vendor statistics", err)
	}

	s.cache.SetStats(st)
	return st, nil
}

// GetVendorBalance serves cached statistics when present.
func (s *LedgerServiceImpl) GetVendorBalance(ctx context.Context, vendorID uuid.UUID) (*domain.VendorStatistics, error) {
	if st, ok := s.cache.GetStats(vendorID); ok {
		return st, nil
	}
	if _, err := s.vendors.lookup(ctx, vendorID); err != nil {
		return nil, err
	}
	return s.ComputeVendorBalance(ctx, vendorID)
}

// refreshLedger recomputes after a write and only logs failures; the write
// has already committed and the next read recomputes again.
func refreshLedger(ctx context.Context, ledger ports.LedgerService, log zerolog.Logger, vendorID uuid.UUID) {
	if _, err := ledger.ComputeVendorBalance(ctx, vendorID); err != nil {
		log.Warn().Err(err).Str("vendor_id", vendorID.String()).Msg("ledger refresh failed")
	}
}
