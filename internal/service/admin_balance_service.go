package service

import (
	"context"

	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// AdminBalanceServiceImpl implements ports.AdminBalanceService.
type AdminBalanceServiceImpl struct {
	repo  ports.AdminBalanceRepository
	audit ports.AuditService
	tx    txRunner
	log   zerolog.Logger
}

// NewAdminBalanceService creates a new AdminBalanceServiceImpl.
func NewAdminBalanceService(
	repo ports.AdminBalanceRepository,
	audit ports.AuditService,
	transactor ports.DBTransactor,
	policy TxPolicy,
	metrics ports.LedgerMetrics,
	log zerolog.Logger,
) *AdminBalanceServiceImpl {
	return &AdminBalanceServiceImpl{
		repo:  repo,
		audit: audit,
		tx:    newTxRunner(transactor, policy, metrics, log),
		log:   log,
	}
}

// GetBalance returns the current aggregate.
func (s *AdminBalanceServiceImpl) GetBalance(ctx context.Context) (*domain.AdminBalance, error) {
	b, err := s.repo.Get(ctx)
	if err != nil {
		return nil, internalErr("get admin balance", err)
	}
	if b == nil {
		return nil, apperror.ErrNotFound("admin balance")
	}
	return b, nil
}

// Recalculate rebuilds the aggregate from source rows and reports how far
// the stored figures had drifted.
func (s *AdminBalanceServiceImpl) Recalculate(ctx context.Context, actorID uuid.UUID) (*domain.RecalculationReport, error) {
	var report domain.RecalculationReport
	err := s.tx.run(ctx, "recalculate_admin_balance", func(tx pgx.Tx) error {
		prev, err := s.repo.GetForUpdate(ctx, tx)
		if err != nil {
			return err
		}
		if prev == nil {
			return apperror.ErrNotFound("admin balance")
		}
		cur, err := s.repo.Recalculate(ctx, tx)
		if err != nil {
			return err
		}
		report = domain.RecalculationReport{
			Previous: *prev,
			Current:  *cur,
			Drift:    cur.Balance.Sub(prev.Balance),
		}
		return nil
	})
	if err != nil {
		return nil, internalErr("recalculate admin balance", err)
	}

	drift := report.Drift.StringFixed(domain.MoneyPlaces)
	if !report.Drift.IsZero() {
		s.log.Warn().
			Str("previous", report.Previous.Balance.StringFixed(domain.MoneyPlaces)).
			Str("current", report.Current.Balance.StringFixed(domain.MoneyPlaces)).
			Str("drift", drift).
			Msg("admin balance drift corrected")
	}

	s.audit.Log(ctx, newAuditEntry(&actorID, domain.AuditActionBalanceRecalculated, "admin_balance", uuid.Nil, map[string]string{
		"balance": report.Current.Balance.StringFixed(domain.MoneyPlaces),
		"drift":   drift,
	}))
	return &report, nil
}
