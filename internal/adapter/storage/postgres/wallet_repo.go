package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository. Wallets belong to the
// account system, so the repository is read-only.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// GetByID fetches a wallet with its payout methods.
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT id, vendor_id, name, email, preferred_method, active, last_used_at, created_at
		FROM wallets WHERE id = $1`

	w := &domain.Wallet{}
	var preferred string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.VendorID, &w.Name, &w.Email, &preferred,
		&w.Active, &w.LastUsedAt, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get wallet by id", err)
	}
	w.PreferredMethod = domain.PaymentMethod(preferred)

	rows, err := r.pool.Query(ctx,
		`SELECT method, holder_name, contact FROM wallet_methods WHERE wallet_id = $1 ORDER BY method`, id)
	if err != nil {
		return nil, storeErr("get wallet methods", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.WalletMethod
		var method string
		if err := rows.Scan(&method, &m.HolderName, &m.Contact); err != nil {
			return nil, fmt.Errorf("scan wallet method: %w", err)
		}
		m.Method = domain.PaymentMethod(method)
		w.Methods = append(w.Methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate wallet methods", err)
	}
	return w, nil
}
