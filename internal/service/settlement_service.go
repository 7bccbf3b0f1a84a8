package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	settlementKindSale       = "sale"
	settlementKindWithdrawal = "withdrawal"
)

// SettlementServiceImpl implements ports.SettlementService.
//
// An approving transition (sale approved, withdrawal approved) commits in the
// same transaction as the admin credit and the vendor statistics refresh, so
// a recalculation always sees both or neither. When the credit still fails
// after its retries the transition is committed alone and the gap is reported
// as a partial settlement for an operator to reconcile with Recalculate.
type SettlementServiceImpl struct {
	sales    ports.SaleRepository
	balance  ports.AdminBalanceRepository
	stats    ports.StatisticsRepository
	cache    ports.VendorCache
	notifier ports.Notifier
	audit    ports.AuditService
	metrics  ports.LedgerMetrics
	tx       txRunner
	clock    func() time.Time
	log      zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	sales ports.SaleRepository,
	balance ports.AdminBalanceRepository,
	stats ports.StatisticsRepository,
	cache ports.VendorCache,
	notifier ports.Notifier,
	audit ports.AuditService,
	transactor ports.DBTransactor,
	policy TxPolicy,
	metrics ports.LedgerMetrics,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		sales:    sales,
		balance:  balance,
		stats:    stats,
		cache:    cache,
		notifier: notifier,
		audit:    audit,
		metrics:  metrics,
		tx:       newTxRunner(transactor, policy, metrics, log),
		clock:    time.Now,
		log:      log,
	}
}

// OnSaleApproved approves a sale confirmed by the checkout and settles it.
// Repeated callbacks for a sale that already counts as revenue return it
// unchanged and credit nothing.
func (s *SettlementServiceImpl) OnSaleApproved(ctx context.Context, saleID, vendorID uuid.UUID, gross decimal.Decimal) (*domain.Sale, error) {
	if !domain.ValidAmount(gross) {
		return nil, apperror.ErrInvalidAmount()
	}

	var replayed bool
	sale, err := s.CommitSale(ctx, "approve_sale", func(tx pgx.Tx) (*domain.Sale, bool, error) {
		replayed = false

		sale, err := s.sales.GetByIDForUpdate(ctx, tx, saleID)
		if err != nil {
			return nil, false, err
		}
		if sale == nil {
			return nil, false, apperror.ErrNotFound("sale")
		}
		if sale.VendorID != vendorID {
			return nil, false, apperror.Validation("sale belongs to a different vendor")
		}
		if sale.Status.IsRevenue() {
			replayed = true
			return sale, false, nil
		}
		if !sale.GrossAmount.Equal(gross) {
			return nil, false, apperror.Validation(fmt.Sprintf("gross amount %s does not match sale amount %s", gross, sale.GrossAmount))
		}

		// Pending, failed and cancelled sales all accept a late confirmation.
		now := s.clock().UTC()
		sale.ApplySplit(domain.SplitSale(sale.GrossAmount), now)
		sale.AppendNote(fmt.Sprintf("%s approved by checkout", now.Format(time.RFC3339)))
		if err := s.sales.MarkApproved(ctx, tx, sale); err != nil {
			return nil, false, err
		}
		return sale, true, nil
	})
	if err != nil {
		return nil, internalErr("approve sale", err)
	}

	if replayed {
		s.log.Info().Str("sale_id", saleID.String()).Msg("sale already approved, callback ignored")
		return sale, nil
	}

	s.audit.Log(ctx, newAuditEntry(nil, domain.AuditActionSaleApproved, "sale", sale.ID, map[string]string{
		"vendor_id": sale.VendorID.String(),
		"gross":     sale.GrossAmount.StringFixed(domain.MoneyPlaces),
	}))
	return sale, nil
}

// CommitSale runs transition and credits the 10% commission of a sale it
// approves in the same transaction.
func (s *SettlementServiceImpl) CommitSale(ctx context.Context, op string, transition ports.SaleTransition) (*domain.Sale, error) {
	var sale *domain.Sale
	err := s.commit(ctx, op, func(tx pgx.Tx) (*owedCredit, error) {
		var (
			approved bool
			err      error
		)
		sale, approved, err = transition(tx)
		if err != nil || !approved {
			return nil, err
		}
		return saleCredit(sale), nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// CommitWithdrawal runs transition and credits the 5% fee of a request it
// approves in the same transaction. Later steps such as mark-paid must not
// report approved again.
func (s *SettlementServiceImpl) CommitWithdrawal(ctx context.Context, op string, transition ports.WithdrawalTransition) (*domain.WithdrawalRequest, error) {
	var w *domain.WithdrawalRequest
	err := s.commit(ctx, op, func(tx pgx.Tx) (*owedCredit, error) {
		var (
			approved bool
			err      error
		)
		w, approved, err = transition(tx)
		if err != nil || !approved {
			return nil, err
		}
		return withdrawalCredit(w), nil
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// owedCredit is the admin credit a committed transition owes.
type owedCredit struct {
	kind     string
	vendorID uuid.UUID
	credit   domain.AdminCredit
}

func saleCredit(sale *domain.Sale) *owedCredit {
	split := domain.SplitSale(sale.GrossAmount)
	if sale.AdminShare != nil && sale.VendorShare != nil {
		split = domain.Split{Gross: sale.GrossAmount, Admin: *sale.AdminShare, Vendor: *sale.VendorShare}
	}
	return &owedCredit{
		kind:     settlementKindSale,
		vendorID: sale.VendorID,
		credit: domain.AdminCredit{
			Reason:   domain.CreditReasonSaleCommission,
			SourceID: sale.ID,
			Amount:   split.Admin,
		},
	}
}

func withdrawalCredit(w *domain.WithdrawalRequest) *owedCredit {
	return &owedCredit{
		kind:     settlementKindWithdrawal,
		vendorID: w.VendorID,
		credit: domain.AdminCredit{
			Reason:       domain.CreditReasonWithdrawalCommission,
			SourceID:     w.ID,
			Amount:       w.AdminFee,
			VendorPayout: w.NetAmount,
		},
	}
}

// commit runs transition and the credit it owes as one retried transaction.
// transition must be safe to re-run: it is called again on every retry and
// once more, alone, when only the credit failed.
func (s *SettlementServiceImpl) commit(ctx context.Context, op string, transition func(tx pgx.Tx) (*owedCredit, error)) error {
	var (
		owed      *owedCredit
		st        *domain.VendorStatistics
		creditErr error
	)
	err := s.tx.run(ctx, op, func(tx pgx.Tx) error {
		owed, st, creditErr = nil, nil, nil
		var err error
		if owed, err = transition(tx); err != nil || owed == nil {
			return err
		}
		st, creditErr = s.applyCredit(ctx, tx, owed)
		return creditErr
	})

	switch {
	case err == nil && owed == nil:
		return nil
	case err == nil:
		s.cache.Invalidate(owed.vendorID)
		s.cache.SetStats(st)
		s.metrics.SettlementRecorded(owed.kind)
		s.log.Info().
			Str("kind", owed.kind).
			Str("source_id", owed.credit.SourceID.String()).
			Str("vendor_id", owed.vendorID.String()).
			Str("admin_share", owed.credit.Amount.StringFixed(domain.MoneyPlaces)).
			Msg("settlement recorded")
		return nil
	case creditErr == nil:
		return err
	}

	// Only the credit failed; the transition stands on its own.
	var committed *owedCredit
	if ferr := s.tx.run(ctx, op+"_uncredited", func(tx pgx.Tx) error {
		var terr error
		committed, terr = transition(tx)
		return terr
	}); ferr != nil {
		return ferr
	}
	if committed != nil {
		s.cache.Invalidate(committed.vendorID)
		s.reportPartial(ctx, committed, err)
	}
	return nil
}

func (s *SettlementServiceImpl) applyCredit(ctx context.Context, tx pgx.Tx, owed *owedCredit) (*domain.VendorStatistics, error) {
	if err := s.balance.Credit(ctx, tx, owed.credit); err != nil {
		return nil, err
	}
	return s.stats.Recompute(ctx, tx, owed.vendorID)
}

// reportPartial makes a committed transition without its credit visible to
// operators: an error log, a metric, an admin notification and an audit row.
func (s *SettlementServiceImpl) reportPartial(ctx context.Context, owed *owedCredit, cause error) {
	amount := owed.credit.Amount.StringFixed(domain.MoneyPlaces)

	s.log.Error().Err(apperror.ErrPartialSettlement(cause)).
		Str("kind", owed.kind).
		Str("source_id", owed.credit.SourceID.String()).
		Str("vendor_id", owed.vendorID.String()).
		Str("admin_share", amount).
		Msg("partial settlement: transition committed without commission credit")
	s.metrics.PartialSettlement(owed.kind)

	details := map[string]string{
		"kind":      owed.kind,
		"source_id": owed.credit.SourceID.String(),
		"vendor_id": owed.vendorID.String(),
		"amount":    amount,
	}
	s.notifier.Notify(ctx, domain.Notification{
		Role:     domain.RoleAdmin,
		Template: domain.TemplateSettlementPartial,
		Payload:  details,
	})
	s.audit.Log(ctx, newAuditEntry(nil, domain.AuditActionSettlementPartial, owed.kind, owed.credit.SourceID, details))
}
