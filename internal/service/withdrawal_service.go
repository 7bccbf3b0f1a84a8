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
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// WithdrawalPolicy holds the configurable limits of the withdrawal flow.
type WithdrawalPolicy struct {
	MinAmount decimal.Decimal
	CodeTTL   time.Duration
	// AutoMarkPaid moves approved requests straight to PAID for rails that
	// pay out synchronously.
	AutoMarkPaid bool
}

// WithdrawalServiceImpl implements ports.WithdrawalService.
type WithdrawalServiceImpl struct {
	withdrawals ports.WithdrawalRepository
	wallets     ports.WalletRepository
	vendors     vendorDirectory
	codes       ports.ConfirmationCodeStore
	ledger      ports.LedgerService
	settlement  ports.SettlementService
	notifier    ports.Notifier
	audit       ports.AuditService
	metrics     ports.LedgerMetrics
	tx          txRunner
	policy      WithdrawalPolicy
	genCode     CodeGenerator
	clock       func() time.Time
	log         zerolog.Logger
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(
	withdrawals ports.WithdrawalRepository,
	wallets ports.WalletRepository,
	vendors ports.VendorRepository,
	cache ports.VendorCache,
	codes ports.ConfirmationCodeStore,
	ledger ports.LedgerService,
	settlement ports.SettlementService,
	notifier ports.Notifier,
	audit ports.AuditService,
	transactor ports.DBTransactor,
	txPolicy TxPolicy,
	policy WithdrawalPolicy,
	metrics ports.LedgerMetrics,
	log zerolog.Logger,
) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		withdrawals: withdrawals,
		wallets:     wallets,
		vendors:     vendorDirectory{repo: vendors, cache: cache},
		codes:       codes,
		ledger:      ledger,
		settlement:  settlement,
		notifier:    notifier,
		audit:       audit,
		metrics:     metrics,
		tx:          newTxRunner(transactor, txPolicy, metrics, log),
		policy:      policy,
		genCode:     RandomCode,
		clock:       time.Now,
		log:         log,
	}
}

// IssueWithdrawalCode sends the vendor a confirmation code for a withdrawal
// to the given wallet and returns when it expires.
func (s *WithdrawalServiceImpl) IssueWithdrawalCode(ctx context.Context, vendorID, walletID uuid.UUID) (time.Time, error) {
	vendor, err := s.activeVendor(ctx, vendorID)
	if err != nil {
		return time.Time{}, err
	}
	wallet, _, err := s.payoutWallet(ctx, vendorID, walletID)
	if err != nil {
		return time.Time{}, err
	}

	code, err := s.genCode()
	if err != nil {
		return time.Time{}, apperror.InternalError(err)
	}
	if err := s.codes.Save(ctx, vendorID, code, s.policy.CodeTTL); err != nil {
		return time.Time{}, internalErr("save withdrawal code", err)
	}
	expiresAt := s.clock().UTC().Add(s.policy.CodeTTL)

	s.notifier.Notify(ctx, domain.Notification{
		Role:        domain.RoleVendor,
		RecipientID: &vendor.ID,
		Template:    domain.TemplateWithdrawalCode,
		Payload: map[string]string{
			"code":       code,
			"wallet":     wallet.Name,
			"expires_at": expiresAt.Format(time.RFC3339),
		},
	})
	return expiresAt, nil
}

// RequestWithdrawal validates and records a PENDING withdrawal. The vendor's
// balance is recomputed from source rows before the amount is checked.
func (s *WithdrawalServiceImpl) RequestWithdrawal(ctx context.Context, in ports.WithdrawalInput) (*domain.WithdrawalRequest, error) {
	if !domain.ValidAmount(in.Amount) {
		return nil, apperror.ErrInvalidAmount()
	}
	if in.Amount.LessThan(s.policy.MinAmount) {
		return nil, apperror.Validation(fmt.Sprintf("minimum withdrawal is %s", s.policy.MinAmount.StringFixed(domain.MoneyPlaces)))
	}
	if !validCodeFormat(in.Code) {
		return nil, apperror.ErrInvalidConfirmationCode()
	}

	if _, err := s.activeVendor(ctx, in.VendorID); err != nil {
		return nil, err
	}
	wallet, holder, err := s.payoutWallet(ctx, in.VendorID, in.WalletID)
	if err != nil {
		return nil, err
	}

	st, err := s.ledger.ComputeVendorBalance(ctx, in.VendorID)
	if err != nil {
		return nil, err
	}
	if in.Amount.GreaterThan(st.AvailableRevenue) {
		return nil, apperror.ErrInsufficientRevenue()
	}

	pending, err := s.withdrawals.FindPendingByVendor(ctx, in.VendorID)
	if err != nil {
		return nil, internalErr("find pending withdrawal", err)
	}
	if pending != nil {
		return nil, apperror.ErrPendingWithdrawalExists()
	}

	ok, err := s.codes.Consume(ctx, in.VendorID, in.Code)
	if err != nil {
		return nil, internalErr("consume withdrawal code", err)
	}
	if !ok {
		return nil, apperror.ErrInvalidConfirmationCode()
	}

	w := domain.NewWithdrawalRequest(in.VendorID, wallet, holder, in.Amount, s.clock().UTC())
	// The partial unique index settles races between concurrent requests.
	err = s.tx.run(ctx, "create_withdrawal", func(tx pgx.Tx) error {
		return s.withdrawals.Create(ctx, tx, w)
	})
	if err != nil {
		return nil, internalErr("create withdrawal", err)
	}

	refreshLedger(ctx, s.ledger, s.log, w.VendorID)

	s.notifier.Notify(ctx, domain.Notification{
		Role:     domain.RoleAdmin,
		Template: domain.TemplateWithdrawalPending,
		Payload: map[string]string{
			"withdrawal_id": w.ID.String(),
			"vendor_id":     w.VendorID.String(),
			"amount":        w.Amount.StringFixed(domain.MoneyPlaces),
			"method":        string(w.Method),
		},
	})
	s.audit.Log(ctx, newAuditEntry(&w.VendorID, domain.AuditActionWithdrawalRequested, "withdrawal", w.ID, map[string]string{
		"amount":    w.Amount.StringFixed(domain.MoneyPlaces),
		"admin_fee": w.AdminFee.StringFixed(domain.MoneyPlaces),
		"wallet_id": w.WalletID.String(),
	}))
	s.metrics.WithdrawalDecided("request")

	s.log.Info().
		Str("withdrawal_id", w.ID.String()).
		Str("vendor_id", w.VendorID.String()).
		Str("amount", w.Amount.StringFixed(domain.MoneyPlaces)).
		Msg("withdrawal requested")
	return w, nil
}

// DecideWithdrawal approves or rejects a PENDING request. Approval credits
// the 5% fee in the same transaction; rejection releases the reserved amount.
func (s *WithdrawalServiceImpl) DecideWithdrawal(ctx context.Context, in ports.DecisionInput) (*domain.WithdrawalRequest, error) {
	if !in.Action.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown action %q", in.Action))
	}

	target := domain.WithdrawalStatusRejected
	if in.Action == domain.WithdrawalActionApprove {
		target = domain.WithdrawalStatusApproved
	}

	approving := target == domain.WithdrawalStatusApproved
	w, err := s.settlement.CommitWithdrawal(ctx, "decide_withdrawal", func(tx pgx.Tx) (*domain.WithdrawalRequest, bool, error) {
		w, err := s.withdrawals.GetByIDForUpdate(ctx, tx, in.RequestID)
		if err != nil {
			return nil, false, err
		}
		if w == nil {
			return nil, false, apperror.ErrNotFound("withdrawal")
		}
		if !w.Status.CanTransitionTo(target) {
			return nil, false, apperror.ErrInvalidTransition(string(w.Status), string(target))
		}

		now := s.clock().UTC()
		adminID := in.AdminID
		w.Status = target
		w.ProcessedBy = &adminID
		w.ProcessedAt = &now

		line := fmt.Sprintf("%s %s by admin %s", now.Format(time.RFC3339), strings.ToLower(string(target)), adminID)
		if note := strings.TrimSpace(in.Note); note != "" {
			line += ": " + note
		}
		w.AppendNote(line)

		if approving && s.policy.AutoMarkPaid {
			w.Status = domain.WithdrawalStatusPaid
			w.PaidAt = &now
		}
		if err := s.withdrawals.UpdateStatus(ctx, tx, w); err != nil {
			return nil, false, err
		}
		return w, approving, nil
	})
	if err != nil {
		return nil, internalErr("decide withdrawal", err)
	}

	refreshLedger(ctx, s.ledger, s.log, w.VendorID)

	template, action := domain.TemplateWithdrawalRejected, domain.AuditActionWithdrawalRejected
	if approving {
		template, action = domain.TemplateWithdrawalApproved, domain.AuditActionWithdrawalApproved
	}
	payload := map[string]string{
		"withdrawal_id": w.ID.String(),
		"amount":        w.Amount.StringFixed(domain.MoneyPlaces),
		"net_amount":    w.NetAmount.StringFixed(domain.MoneyPlaces),
		"status":        string(w.Status),
	}
	if note := strings.TrimSpace(in.Note); note != "" {
		payload["note"] = note
	}
	s.notifier.Notify(ctx, domain.Notification{
		Role:        domain.RoleVendor,
		RecipientID: &w.VendorID,
		Template:    template,
		Payload:     payload,
	})
	s.audit.Log(ctx, newAuditEntry(&in.AdminID, action, "withdrawal", w.ID, map[string]string{
		"vendor_id": w.VendorID.String(),
		"status":    string(w.Status),
	}))
	s.metrics.WithdrawalDecided(string(in.Action))

	s.log.Info().
		Str("withdrawal_id", w.ID.String()).
		Str("admin_id", in.AdminID.String()).
		Str("status", string(w.Status)).
		Msg("withdrawal decided")
	return w, nil
}

// MarkWithdrawalPaid records the external payout of an APPROVED request.
func (s *WithdrawalServiceImpl) MarkWithdrawalPaid(ctx context.Context, requestID, adminID uuid.UUID, payoutRef string) (*domain.WithdrawalRequest, error) {
	var w *domain.WithdrawalRequest
	err := s.tx.run(ctx, "mark_withdrawal_paid", func(tx pgx.Tx) error {
		var err error
		w, err = s.withdrawals.GetByIDForUpdate(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if w == nil {
			return apperror.ErrNotFound("withdrawal")
		}
		if !w.Status.CanTransitionTo(domain.WithdrawalStatusPaid) {
			return apperror.ErrInvalidTransition(string(w.Status), string(domain.WithdrawalStatusPaid))
		}

		now := s.clock().UTC()
		w.Status = domain.WithdrawalStatusPaid
		w.PaidAt = &now
		line := fmt.Sprintf("%s paid by admin %s", now.Format(time.RFC3339), adminID)
		if ref := strings.TrimSpace(payoutRef); ref != "" {
			w.PayoutReference = &ref
			line += " ref " + ref
		}
		w.AppendNote(line)
		return s.withdrawals.UpdateStatus(ctx, tx, w)
	})
	if err != nil {
		return nil, internalErr("mark withdrawal paid", err)
	}

	refreshLedger(ctx, s.ledger, s.log, w.VendorID)

	s.notifier.Notify(ctx, domain.Notification{
		Role:        domain.RoleVendor,
		RecipientID: &w.VendorID,
		Template:    domain.TemplateWithdrawalPaid,
		Payload: map[string]string{
			"withdrawal_id": w.ID.String(),
			"net_amount":    w.NetAmount.StringFixed(domain.MoneyPlaces),
		},
	})
	s.audit.Log(ctx, newAuditEntry(&adminID, domain.AuditActionWithdrawalPaid, "withdrawal", w.ID, map[string]string{
		"vendor_id": w.VendorID.String(),
	}))
	s.metrics.WithdrawalDecided("paid")
	return w, nil
}

// ListWithdrawals returns one page of the admin queue.
func (s *WithdrawalServiceImpl) ListWithdrawals(ctx context.Context, params ports.WithdrawalListParams) ([]domain.WithdrawalRequest, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	items, total, err := s.withdrawals.List(ctx, params)
	if err != nil {
		return nil, 0, internalErr("list withdrawals", err)
	}
	return items, total, nil
}

func (s *WithdrawalServiceImpl) activeVendor(ctx context.Context, vendorID uuid.UUID) (*domain.Vendor, error) {
	v, err := s.vendors.lookup(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if !v.IsActive() {
		return nil, apperror.ErrVendorSuspended()
	}
	return v, nil
}

// payoutWallet loads a wallet of the vendor and picks the holder to pay.
func (s *WithdrawalServiceImpl) payoutWallet(ctx context.Context, vendorID, walletID uuid.UUID) (*domain.Wallet, domain.WalletMethod, error) {
	wallet, err := s.wallets.GetByID(ctx, walletID)
	if err != nil {
		return nil, domain.WalletMethod{}, internalErr("get wallet", err)
	}
	if wallet == nil || wallet.VendorID != vendorID {
		return nil, domain.WalletMethod{}, apperror.ErrNotFound("wallet")
	}
	if !wallet.Active {
		return nil, domain.WalletMethod{}, apperror.ErrInvalidWallet("wallet is inactive")
	}
	holder, ok := wallet.Holder()
	if !ok {
		return nil, domain.WalletMethod{}, apperror.ErrInvalidWallet("wallet has no complete payout method")
	}
	return wallet, holder, nil
}
