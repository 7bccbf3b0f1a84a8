package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const saleColumns = `id, vendor_id, reference, gross_amount::text, admin_share::text, vendor_share::text,
		status, notes, created_at, updated_at, approved_at`

// SaleRepo implements ports.SaleRepository.
type SaleRepo struct {
	pool Pool
}

// NewSaleRepo creates a new SaleRepo.
func NewSaleRepo(pool Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// GetByID fetches a sale by its UUID (without locking).
func (r *SaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`

	s, err := scanSale(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get sale by id", err)
	}
	return s, nil
}

// GetByIDForUpdate fetches a sale with pessimistic locking.
// This MUST be called within a transaction.
func (r *SaleRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 FOR UPDATE`

	s, err := scanSale(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get sale for update", err)
	}
	return s, nil
}

// MarkApproved persists the approve transition together with its split.
func (r *SaleRepo) MarkApproved(ctx context.Context, tx pgx.Tx, s *domain.Sale) error {
	if s.AdminShare == nil || s.VendorShare == nil || s.ApprovedAt == nil {
		return fmt.Errorf("mark sale approved: split not applied to %s", s.ID)
	}

	query := `UPDATE sales
		SET status = $2, admin_share = $3, vendor_share = $4, approved_at = $5, updated_at = $5, notes = $6
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		s.ID, string(domain.SaleStatusApproved), s.AdminShare.String(), s.VendorShare.String(),
		*s.ApprovedAt, s.Notes,
	)
	if err != nil {
		return storeErr("mark sale approved", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sale not found: %s", s.ID)
	}
	return nil
}

// ListByStatus returns the most recently updated sales in status,
// including rows stored under a legacy spelling.
func (r *SaleRepo) ListByStatus(ctx context.Context, status domain.SaleStatus, limit int) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE LOWER(status) = ANY($1)
		ORDER BY updated_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, domain.SaleStatusSpellings(status), limit)
	if err != nil {
		return nil, storeErr("list sales", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate sales", err)
	}
	return sales, nil
}

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var (
		s             domain.Sale
		gross, status string
		admin, vendor *string
	)
	if err := row.Scan(
		&s.ID, &s.VendorID, &s.Reference, &gross, &admin, &vendor,
		&status, &s.Notes, &s.CreatedAt, &s.UpdatedAt, &s.ApprovedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if s.GrossAmount, err = parseDecimal("gross_amount", gross); err != nil {
		return nil, err
	}
	if s.AdminShare, err = parseOptionalDecimal("admin_share", admin); err != nil {
		return nil, err
	}
	if s.VendorShare, err = parseOptionalDecimal("vendor_share", vendor); err != nil {
		return nil, err
	}
	if s.Status, err = domain.ParseSaleStatus(status); err != nil {
		return nil, err
	}
	return &s, nil
}
