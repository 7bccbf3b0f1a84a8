package postgres

import (
	"context"

	"marketplace-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// StatisticsRepo implements ports.StatisticsRepository.
type StatisticsRepo struct{}

// NewStatisticsRepo creates a new StatisticsRepo. All of its work happens
// inside the caller's transaction.
func NewStatisticsRepo() *StatisticsRepo {
	return &StatisticsRepo{}
}

// Recompute aggregates revenue and withdrawals for one vendor straight from
// the source rows and upserts the materialized statistics row. Sales written
// before shares were stored fall back to gross minus the rounded commission.
func (r *StatisticsRepo) Recompute(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID) (*domain.VendorStatistics, error) {
	query := `INSERT INTO vendor_statistics
			(vendor_id, total_revenue, available_revenue, outstanding_withdrawals, total_paid_out, sale_count, computed_at)
		SELECT $1, s.total, s.total - w.outstanding, w.outstanding, w.paid_out, s.cnt, NOW()
		FROM
			(SELECT COALESCE(SUM(COALESCE(vendor_share, gross_amount - ROUND(gross_amount * $5, 2))), 0) AS total,
					COUNT(*) AS cnt
				FROM sales WHERE vendor_id = $1 AND LOWER(status) = ANY($2)) s,
			(SELECT COALESCE(SUM(amount) FILTER (WHERE LOWER(status) = ANY($3)), 0) AS outstanding,
					COALESCE(SUM(net_amount) FILTER (WHERE LOWER(status) = ANY($4)), 0) AS paid_out
				FROM withdrawal_requests WHERE vendor_id = $1) w
		ON CONFLICT (vendor_id) DO UPDATE SET
			total_revenue = EXCLUDED.total_revenue,
			available_revenue = EXCLUDED.available_revenue,
			outstanding_withdrawals = EXCLUDED.outstanding_withdrawals,
			total_paid_out = EXCLUDED.total_paid_out,
			sale_count = EXCLUDED.sale_count,
			computed_at = EXCLUDED.computed_at
		RETURNING vendor_id, total_revenue::text, available_revenue::text, outstanding_withdrawals::text,
			total_paid_out::text, sale_count, computed_at`

	var total, available, outstanding, paidOut string
	st := &domain.VendorStatistics{}
	err := tx.QueryRow(ctx, query,
		vendorID,
		domain.SaleStatusSpellings(domain.RevenueSaleStatuses()...),
		domain.WithdrawalStatusSpellings(domain.WithdrawalStatusPending, domain.WithdrawalStatusApproved, domain.WithdrawalStatusPaid),
		domain.WithdrawalStatusSpellings(domain.WithdrawalStatusApproved, domain.WithdrawalStatusPaid),
		domain.SaleCommissionRate.String(),
	).Scan(&st.VendorID, &total, &available, &outstanding, &paidOut, &st.SaleCount, &st.ComputedAt)
	if err != nil {
		return nil, storeErr("recompute vendor statistics", err)
	}

	if st.TotalRevenue, err = parseDecimal("total_revenue", total); err != nil {
		return nil, err
	}
	if st.AvailableRevenue, err = parseDecimal("available_revenue", available); err != nil {
		return nil, err
	}
	if st.OutstandingWithdrawals, err = parseDecimal("outstanding_withdrawals", outstanding); err != nil {
		return nil, err
	}
	if st.TotalPaidOut, err = parseDecimal("total_paid_out", paidOut); err != nil {
		return nil, err
	}
	return st, nil
}
