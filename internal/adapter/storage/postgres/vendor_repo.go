package postgres

import (
	"context"
	"errors"

	"marketplace-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VendorRepo implements ports.VendorRepository.
type VendorRepo struct {
	pool Pool
}

// NewVendorRepo creates a new VendorRepo.
func NewVendorRepo(pool Pool) *VendorRepo {
	return &VendorRepo{pool: pool}
}

// GetByID fetches a vendor by its UUID.
func (r *VendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	query := `SELECT id, display_name, email, phone, status, created_at FROM vendors WHERE id = $1`

	v := &domain.Vendor{}
	var status string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.DisplayName, &v.Email, &v.Phone, &status, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get vendor by id", err)
	}
	v.Status = domain.VendorStatus(status)
	return v, nil
}
