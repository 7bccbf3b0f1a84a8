package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const withdrawalColumns = `id, vendor_id, wallet_id, amount::text, admin_fee::text, net_amount::text, status,
		method, holder_name, holder_contact, notes, payout_reference, processed_by,
		requested_at, processed_at, paid_at`

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

// Create inserts a pending request. The partial unique index on pending rows
// turns a concurrent second request into a conflict.
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.WithdrawalRequest) error {
	query := `INSERT INTO withdrawal_requests
		(id, vendor_id, wallet_id, amount, admin_fee, net_amount, status, method, holder_name, holder_contact, notes, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.VendorID, w.WalletID, w.Amount.String(), w.AdminFee.String(), w.NetAmount.String(),
		string(w.Status), string(w.Method), w.HolderName, w.HolderContact, w.Notes, w.RequestedAt,
	)
	if err != nil {
		if isUniqueViolation(err, pendingWithdrawalIndex) {
			return apperror.ErrPendingWithdrawalExists()
		}
		return storeErr("insert withdrawal", err)
	}
	return nil
}

// GetByID fetches a withdrawal request (without locking).
func (r *WithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1`

	w, err := scanWithdrawal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get withdrawal by id", err)
	}
	return w, nil
}

// GetByIDForUpdate fetches a withdrawal request with pessimistic locking.
// This MUST be called within a transaction.
func (r *WithdrawalRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`

	w, err := scanWithdrawal(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get withdrawal for update", err)
	}
	return w, nil
}

// FindPendingByVendor returns the vendor's pending request, if any.
func (r *WithdrawalRepo) FindPendingByVendor(ctx context.Context, vendorID uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests
		WHERE vendor_id = $1 AND LOWER(status) = ANY($2)
		ORDER BY requested_at DESC
		LIMIT 1`

	pending := domain.WithdrawalStatusSpellings(domain.WithdrawalStatusPending)
	w, err := scanWithdrawal(r.pool.QueryRow(ctx, query, vendorID, pending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("find pending withdrawal", err)
	}
	return w, nil
}

// UpdateStatus writes a decision or payout within a transaction.
func (r *WithdrawalRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, w *domain.WithdrawalRequest) error {
	query := `UPDATE withdrawal_requests
		SET status = $2, processed_by = $3, processed_at = $4, paid_at = $5, payout_reference = $6, notes = $7
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		w.ID, string(w.Status), w.ProcessedBy, w.ProcessedAt, w.PaidAt, w.PayoutReference, w.Notes,
	)
	if err != nil {
		return storeErr("update withdrawal status", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal not found: %s", w.ID)
	}
	return nil
}

// List returns a page of withdrawal requests, newest first.
func (r *WithdrawalRepo) List(ctx context.Context, params ports.WithdrawalListParams) ([]domain.WithdrawalRequest, int64, error) {
	where := ` WHERE ($1::uuid IS NULL OR vendor_id = $1) AND ($2::text[] IS NULL OR LOWER(status) = ANY($2))`

	var statuses []string
	if params.Status != nil {
		statuses = domain.WithdrawalStatusSpellings(*params.Status)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM withdrawal_requests`+where,
		params.VendorID, statuses,
	).Scan(&total); err != nil {
		return nil, 0, storeErr("count withdrawals", err)
	}

	offset := (params.Page - 1) * params.PageSize
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests` + where + `
		ORDER BY requested_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, params.VendorID, statuses, params.PageSize, offset)
	if err != nil {
		return nil, 0, storeErr("list withdrawals", err)
	}
	defer rows.Close()

	var list []domain.WithdrawalRequest
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan withdrawal: %w", err)
		}
		list = append(list, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeErr("iterate withdrawals", err)
	}
	return list, total, nil
}

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var (
		w                        domain.WithdrawalRequest
		amount, fee, net, status string
		method                   string
	)
	if err := row.Scan(
		&w.ID, &w.VendorID, &w.WalletID, &amount, &fee, &net, &status,
		&method, &w.HolderName, &w.HolderContact, &w.Notes, &w.PayoutReference, &w.ProcessedBy,
		&w.RequestedAt, &w.ProcessedAt, &w.PaidAt,
	); err != nil {
		return nil, err
	}

	var err error
	if w.Amount, err = parseDecimal("amount", amount); err != nil {
		return nil, err
	}
	if w.AdminFee, err = parseDecimal("admin_fee", fee); err != nil {
		return nil, err
	}
	if w.NetAmount, err = parseDecimal("net_amount", net); err != nil {
		return nil, err
	}
	if w.Status, err = domain.ParseWithdrawalStatus(status); err != nil {
		return nil, err
	}
	w.Method = domain.PaymentMethod(method)
	return &w, nil
}
