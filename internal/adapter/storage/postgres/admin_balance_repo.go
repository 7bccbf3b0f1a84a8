package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const adminBalanceColumns = `balance::text, sale_commission_total::text, withdrawal_commission_total::text,
		vendor_payout_total::text, updated_at`

// AdminBalanceRepo implements ports.AdminBalanceRepository over the
// single-row admin_balance table.
type AdminBalanceRepo struct {
	pool Pool
}

// NewAdminBalanceRepo creates a new AdminBalanceRepo.
func NewAdminBalanceRepo(pool Pool) *AdminBalanceRepo {
	return &AdminBalanceRepo{pool: pool}
}

// EnsureRow seeds the singleton row.
func (r *AdminBalanceRepo) EnsureRow(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `INSERT INTO admin_balance (id) VALUES (1) ON CONFLICT (id) DO NOTHING`); err != nil {
		return storeErr("ensure admin balance row", err)
	}
	return nil
}

// Get returns the current aggregate, or nil if the row is missing.
func (r *AdminBalanceRepo) Get(ctx context.Context) (*domain.AdminBalance, error) {
	b, err := scanAdminBalance(r.pool.QueryRow(ctx, `SELECT `+adminBalanceColumns+` FROM admin_balance WHERE id = 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get admin balance", err)
	}
	return b, nil
}

// GetForUpdate locks the aggregate row for the rest of the transaction.
func (r *AdminBalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.AdminBalance, error) {
	b, err := scanAdminBalance(tx.QueryRow(ctx, `SELECT `+adminBalanceColumns+` FROM admin_balance WHERE id = 1 FOR UPDATE`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("lock admin balance", err)
	}
	return b, nil
}

// Credit increments the aggregate in a single statement so concurrent
// credits never overwrite each other.
func (r *AdminBalanceRepo) Credit(ctx context.Context, tx pgx.Tx, c domain.AdminCredit) error {
	saleCommission, withdrawalCommission := decimal.Zero, decimal.Zero
	switch c.Reason {
	case domain.CreditReasonSaleCommission:
		saleCommission = c.Amount
	case domain.CreditReasonWithdrawalCommission:
		withdrawalCommission = c.Amount
	default:
		return fmt.Errorf("credit admin balance: unknown reason %q", c.Reason)
	}

	query := `UPDATE admin_balance SET
			balance = balance + $1,
			sale_commission_total = sale_commission_total + $2,
			withdrawal_commission_total = withdrawal_commission_total + $3,
			vendor_payout_total = vendor_payout_total + $4,
			updated_at = NOW()
		WHERE id = 1`

	tag, err := tx.Exec(ctx, query,
		c.Amount.String(), saleCommission.String(), withdrawalCommission.String(), c.VendorPayout.String(),
	)
	if err != nil {
		return storeErr("credit admin balance", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("credit admin balance: %w", errAdminBalanceMissing)
	}
	return nil
}

// Recalculate rebuilds the aggregate from sale and withdrawal rows in one
// statement. Running it twice in a row yields the same values.
func (r *AdminBalanceRepo) Recalculate(ctx context.Context, tx pgx.Tx) (*domain.AdminBalance, error) {
	query := `UPDATE admin_balance SET
			sale_commission_total = agg.sale_total,
			withdrawal_commission_total = agg.fee_total,
			vendor_payout_total = agg.payout_total,
			balance = agg.sale_total + agg.fee_total,
			updated_at = NOW()
		FROM (
			SELECT
				(SELECT COALESCE(SUM(COALESCE(admin_share, ROUND(gross_amount * $3, 2))), 0)
					FROM sales WHERE LOWER(status) = ANY($1)) AS sale_total,
				(SELECT COALESCE(SUM(admin_fee), 0)
					FROM withdrawal_requests WHERE LOWER(status) = ANY($2)) AS fee_total,
				(SELECT COALESCE(SUM(net_amount), 0)
					FROM withdrawal_requests WHERE LOWER(status) = ANY($2)) AS payout_total
		) agg
		WHERE admin_balance.id = 1
		RETURNING ` + adminBalanceColumns

	b, err := scanAdminBalance(tx.QueryRow(ctx, query,
		domain.SaleStatusSpellings(domain.RevenueSaleStatuses()...),
		domain.WithdrawalStatusSpellings(domain.WithdrawalStatusApproved, domain.WithdrawalStatusPaid),
		domain.SaleCommissionRate.String(),
	))
	if err != nil {
		return nil, storeErr("recalculate admin balance", err)
	}
	return b, nil
}

func scanAdminBalance(row pgx.Row) (*domain.AdminBalance, error) {
	var balance, sales, withdrawals, payouts string
	b := &domain.AdminBalance{}
	if err := row.Scan(&balance, &sales, &withdrawals, &payouts, &b.UpdatedAt); err != nil {
		return nil, err
	}

	var err error
	if b.Balance, err = parseDecimal("balance", balance); err != nil {
		return nil, err
	}
	if b.SaleCommissionTotal, err = parseDecimal("sale_commission_total", sales); err != nil {
		return nil, err
	}
	if b.WithdrawalCommissionTotal, err = parseDecimal("withdrawal_commission_total", withdrawals); err != nil {
		return nil, err
	}
	if b.VendorPayoutTotal, err = parseDecimal("vendor_payout_total", payouts); err != nil {
		return nil, err
	}
	return b, nil
}
