package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	defaultCancelledLimit = 50
	maxCancelledLimit     = 200
)

// Outcomes reported to ports.LedgerMetrics.ApprovalCodeEvent.
const (
	approvalIssued        = "issued"
	approvalAlreadyIssued = "already_issued"
	approvalThrottled     = "throttled"
	approvalLockedOut     = "locked_out"
	approvalInvalidCode   = "invalid_code"
	approvalWrongAdmin    = "wrong_admin"
	approvalExpired       = "expired"
	approvalConfirmed     = "confirmed"
)

// ApprovalServiceImpl implements ports.ApprovalService.
//
// A code is bound to one sale and the administrator who asked for it. Invalid
// digits and wrong-admin attempts count towards the lockout; an expired code
// does not, since the caller held the right digits.
type ApprovalServiceImpl struct {
	sales      ports.SaleRepository
	codes      ports.ApprovalCodeStore
	limiter    ports.AttemptLimiter
	settlement ports.SettlementService
	ledger     ports.LedgerService
	notifier   ports.Notifier
	audit      ports.AuditService
	metrics    ports.LedgerMetrics
	ttl        time.Duration
	genCode    CodeGenerator
	clock      func() time.Time
	log        zerolog.Logger
}

// NewApprovalService creates a new ApprovalServiceImpl.
func NewApprovalService(
	sales ports.SaleRepository,
	codes ports.ApprovalCodeStore,
	limiter ports.AttemptLimiter,
	settlement ports.SettlementService,
	ledger ports.LedgerService,
	notifier ports.Notifier,
	audit ports.AuditService,
	codeTTL time.Duration,
	metrics ports.LedgerMetrics,
	log zerolog.Logger,
) *ApprovalServiceImpl {
	return &ApprovalServiceImpl{
		sales:      sales,
		codes:      codes,
		limiter:    limiter,
		settlement: settlement,
		ledger:     ledger,
		notifier:   notifier,
		audit:      audit,
		metrics:    metrics,
		ttl:        codeTTL,
		genCode:    RandomCode,
		clock:      time.Now,
		log:        log,
	}
}

// RequestManualApprovalCode sends a one-time code to the requesting
// administrator. While an earlier code is still usable it is not replaced.
func (s *ApprovalServiceImpl) RequestManualApprovalCode(ctx context.Context, saleID, adminID uuid.UUID) (*domain.ApprovalCodeIssue, error) {
	sale, err := s.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, internalErr("get sale", err)
	}
	if sale == nil {
		return nil, apperror.ErrNotFound("sale")
	}
	if sale.Status != domain.SaleStatusCancelled {
		return nil, apperror.ErrSaleState(fmt.Sprintf("sale is %s, only cancelled sales can be approved manually", strings.ToLower(string(sale.Status))))
	}

	now := s.clock().UTC()
	if err := s.checkLockout(ctx, saleID, now); err != nil {
		return nil, err
	}

	allowed, retryAfter, err := s.limiter.AllowRequest(ctx, saleID, now)
	if err != nil {
		return nil, internalErr("check code requests", err)
	}
	if !allowed {
		s.metrics.ApprovalCodeEvent(approvalThrottled)
		return nil, apperror.ErrRateLimited(retryAfter)
	}

	existing, err := s.codes.Get(ctx, saleID)
	if err != nil {
		return nil, internalErr("get approval code", err)
	}
	if existing != nil && existing.Usable(now) {
		s.metrics.ApprovalCodeEvent(approvalAlreadyIssued)
		return &domain.ApprovalCodeIssue{SaleID: saleID, ExpiresAt: existing.ExpiresAt, AlreadyIssued: true}, nil
	}

	digits, err := s.genCode()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	code := &domain.ApprovalCode{
		SaleID:    saleID,
		AdminID:   adminID,
		Code:      digits,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.codes.Save(ctx, code); err != nil {
		return nil, internalErr("save approval code", err)
	}

	s.notifier.Notify(ctx, domain.Notification{
		Role:        domain.RoleAdmin,
		RecipientID: &adminID,
		Template:    domain.TemplateApprovalOTP,
		Payload: map[string]string{
			"code":       digits,
			"sale_id":    saleID.String(),
			"reference":  sale.Reference,
			"amount":     sale.GrossAmount.StringFixed(domain.MoneyPlaces),
			"expires_at": code.ExpiresAt.Format(time.RFC3339),
		},
	})
	s.audit.Log(ctx, newAuditEntry(&adminID, domain.AuditActionApprovalCodeIssued, "sale", saleID, map[string]string{
		"expires_at": code.ExpiresAt.Format(time.RFC3339),
	}))
	s.metrics.ApprovalCodeEvent(approvalIssued)

	return &domain.ApprovalCodeIssue{SaleID: saleID, ExpiresAt: code.ExpiresAt}, nil
}

// ConfirmManualApproval checks the code and approves the cancelled sale.
// Each code approves at most one sale, once.
func (s *ApprovalServiceImpl) ConfirmManualApproval(ctx context.Context, saleID uuid.UUID, code string, adminID uuid.UUID) (*domain.Sale, error) {
	now := s.clock().UTC()
	if err := s.checkLockout(ctx, saleID, now); err != nil {
		return nil, err
	}

	stored, err := s.codes.Get(ctx, saleID)
	if err != nil {
		return nil, internalErr("get approval code", err)
	}

	switch {
	case stored == nil || stored.Used || !validCodeFormat(code) || !stored.Matches(code):
		return nil, s.reject(ctx, saleID, adminID, now, approvalInvalidCode, apperror.ErrInvalidCode())
	case stored.AdminID != adminID:
		return nil, s.reject(ctx, saleID, adminID, now, approvalWrongAdmin, apperror.ErrWrongAdmin())
	case stored.IsExpired(now):
		s.metrics.ApprovalCodeEvent(approvalExpired)
		s.audit.Log(ctx, newAuditEntry(&adminID, domain.AuditActionApprovalCodeRejected, "sale", saleID, map[string]string{
			"reason": approvalExpired,
		}))
		return nil, apperror.ErrCodeExpired()
	}

	won, err := s.codes.MarkUsed(ctx, saleID, code)
	if err != nil {
		return nil, internalErr("mark approval code used", err)
	}
	if !won {
		// Another confirmation consumed it first.
		return nil, s.reject(ctx, saleID, adminID, now, approvalInvalidCode, apperror.ErrInvalidCode())
	}

	sale, err := s.settlement.CommitSale(ctx, "manual_approval", func(tx pgx.Tx) (*domain.Sale, bool, error) {
		sale, err := s.sales.GetByIDForUpdate(ctx, tx, saleID)
		if err != nil {
			return nil, false, err
		}
		if sale == nil {
			return nil, false, apperror.ErrNotFound("sale")
		}
		if sale.Status != domain.SaleStatusCancelled {
			return nil, false, apperror.ErrSaleState("sale is no longer cancelled")
		}

		sale.ApplySplit(domain.SplitSale(sale.GrossAmount), now)
		sale.AppendNote(fmt.Sprintf("%s manually approved by admin %s", now.Format(time.RFC3339), adminID))
		if err := s.sales.MarkApproved(ctx, tx, sale); err != nil {
			return nil, false, err
		}
		return sale, true, nil
	})
	if err != nil {
		return nil, internalErr("approve cancelled sale", err)
	}

	if err := s.limiter.Reset(ctx, saleID); err != nil {
		s.log.Warn().Err(err).Str("sale_id", saleID.String()).Msg("failed to reset approval attempts")
	}

	refreshLedger(ctx, s.ledger, s.log, sale.VendorID)

	s.notifier.Notify(ctx, domain.Notification{
		Role:        domain.RoleVendor,
		RecipientID: &sale.VendorID,
		Template:    domain.TemplateSaleManuallyApproved,
		Payload: map[string]string{
			"sale_id":      sale.ID.String(),
			"reference":    sale.Reference,
			"vendor_share": sale.VendorShare.StringFixed(domain.MoneyPlaces),
		},
	})
	s.audit.Log(ctx, newAuditEntry(&adminID, domain.AuditActionSaleManuallyApproved, "sale", sale.ID, map[string]string{
		"vendor_id": sale.VendorID.String(),
		"gross":     sale.GrossAmount.StringFixed(domain.MoneyPlaces),
	}))
	s.metrics.ApprovalCodeEvent(approvalConfirmed)

	s.log.Info().
		Str("sale_id", sale.ID.String()).
		Str("admin_id", adminID.String()).
		Msg("cancelled sale manually approved")
	return sale, nil
}

// ListCancelledSales returns cancelled sales with a flag for those holding a
// usable code.
func (s *ApprovalServiceImpl) ListCancelledSales(ctx context.Context, limit int) ([]ports.CancelledSale, error) {
	if limit < 1 {
		limit = defaultCancelledLimit
	}
	if limit > maxCancelledLimit {
		limit = maxCancelledLimit
	}

	sales, err := s.sales.ListByStatus(ctx, domain.SaleStatusCancelled, limit)
	if err != nil {
		return nil, internalErr("list cancelled sales", err)
	}

	now := s.clock().UTC()
	out := make([]ports.CancelledSale, 0, len(sales))
	for _, sale := range sales {
		row := ports.CancelledSale{Sale: sale}
		c, err := s.codes.Get(ctx, sale.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("sale_id", sale.ID.String()).Msg("failed to read approval code")
		} else {
			row.HasPendingCode = c != nil && c.Usable(now)
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *ApprovalServiceImpl) checkLockout(ctx context.Context, saleID uuid.UUID, now time.Time) error {
	until, err := s.limiter.LockedUntil(ctx, saleID, now)
	if err != nil {
		return internalErr("check approval lockout", err)
	}
	if !until.IsZero() {
		s.metrics.ApprovalCodeEvent(approvalLockedOut)
		return apperror.ErrRateLimited(until.Sub(now))
	}
	return nil
}

// reject counts a failed confirmation and returns appErr. The attempt that
// reaches the limit still reports its own failure; the lockout applies from
// the next one.
func (s *ApprovalServiceImpl) reject(ctx context.Context, saleID, adminID uuid.UUID, now time.Time, outcome string, appErr *apperror.AppError) error {
	until, err := s.limiter.RecordFailure(ctx, saleID, now)
	if err != nil {
		s.log.Warn().Err(err).Str("sale_id", saleID.String()).Msg("failed to record approval failure")
	}

	ev := s.log.Warn().Str("sale_id", saleID.String()).Str("admin_id", adminID.String()).Str("outcome", outcome)
	if !until.IsZero() {
		ev = ev.Time("locked_until", until)
	}
	ev.Msg("manual approval rejected")

	s.metrics.ApprovalCodeEvent(outcome)
	s.audit.Log(ctx, newAuditEntry(&adminID, domain.AuditActionApprovalCodeRejected, "sale", saleID, map[string]string{
		"reason": outcome,
	}))
	return appErr
}
