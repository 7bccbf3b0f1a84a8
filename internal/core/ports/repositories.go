package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"marketplace-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaleRepository defines persistence operations for sales.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type SaleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Sale, error)
	// MarkApproved writes the APPROVED status, the split and the notes of s.
	MarkApproved(ctx context.Context, tx pgx.Tx, s *domain.Sale) error
	ListByStatus(ctx context.Context, status domain.SaleStatus, limit int) ([]domain.Sale, error)
}

// WithdrawalRepository defines persistence operations for withdrawal requests.
type WithdrawalRepository interface {
	// Create inserts a PENDING request. A second pending request for the same
	// vendor fails with apperror.ErrPendingWithdrawalExists.
	Create(ctx context.Context, tx pgx.Tx, w *domain.WithdrawalRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WithdrawalRequest, error)
	FindPendingByVendor(ctx context.Context, vendorID uuid.UUID) (*domain.WithdrawalRequest, error)
	// UpdateStatus persists status, processing metadata and notes of w.
	UpdateStatus(ctx context.Context, tx pgx.Tx, w *domain.WithdrawalRequest) error
	List(ctx context.Context, params WithdrawalListParams) ([]domain.WithdrawalRequest, int64, error)
}

// WithdrawalListParams holds filter + pagination for the admin queue.
type WithdrawalListParams struct {
	VendorID *uuid.UUID
	Status   *domain.WithdrawalStatus
	Page     int
	PageSize int
}

// WalletRepository reads vendor wallets and their payout methods.
type WalletRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
}

// VendorRepository reads vendor rows owned by the account system.
type VendorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
}

// AdminBalanceRepository persists the singleton commission aggregate.
type AdminBalanceRepository interface {
	EnsureRow(ctx context.Context) error
	Get(ctx context.Context) (*domain.AdminBalance, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.AdminBalance, error)
	// Credit applies one atomic increment; it never reads the current value.
	Credit(ctx context.Context, tx pgx.Tx, credit domain.AdminCredit) error
	// Recalculate rebuilds every figure from sale and withdrawal rows.
	Recalculate(ctx context.Context, tx pgx.Tx) (*domain.AdminBalance, error)
}

// StatisticsRepository owns the vendor_statistics materialized view.
type StatisticsRepository interface {
	// Recompute aggregates the vendor's source rows and upserts the result.
	Recompute(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID) (*domain.VendorStatistics, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	// WithinTx runs fn in one transaction, committing when fn returns nil.
	// Serialization failures and dropped connections surface as
	// apperror.ErrTransientStore so callers may retry the whole unit.
	WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}
