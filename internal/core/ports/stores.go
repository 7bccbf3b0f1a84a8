package ports

//go:generate mockgen -source=stores.go -destination=mocks/mock_stores.go -package=mocks

import (
	"context"
	"time"

	"marketplace-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
}

// ConfirmationCodeStore holds the single-use codes vendors type to confirm a
// withdrawal request.
type ConfirmationCodeStore interface {
	Save(ctx context.Context, vendorID uuid.UUID, code string, ttl time.Duration) error
	// Consume deletes the code and reports whether it existed and was unexpired.
	Consume(ctx context.Context, vendorID uuid.UUID, code string) (bool, error)
}

// ApprovalCodeStore keeps the latest manual-approval code per sale.
type ApprovalCodeStore interface {
	Get(ctx context.Context, saleID uuid.UUID) (*domain.ApprovalCode, error)
	Save(ctx context.Context, code *domain.ApprovalCode) error
	// MarkUsed flips Used if the stored code still matches and is unused.
	// Only one concurrent caller can win.
	MarkUsed(ctx context.Context, saleID uuid.UUID, code string) (bool, error)
	// Sweep drops codes whose retention ended before now and returns how
	// many went.
	Sweep(ctx context.Context, now time.Time) (int, error)
}

// AttemptLimiter tracks code issuance and failed confirmations per sale.
type AttemptLimiter interface {
	// AllowRequest records a code request if the rolling window has room.
	// When it does not, retryAfter says when the oldest request leaves it.
	AllowRequest(ctx context.Context, saleID uuid.UUID, now time.Time) (allowed bool, retryAfter time.Duration, err error)
	// LockedUntil returns the lockout end, or the zero time when not locked.
	LockedUntil(ctx context.Context, saleID uuid.UUID, now time.Time) (time.Time, error)
	// RecordFailure counts one invalid attempt and starts a lockout once
	// the limit is reached. It returns the lockout end when one is active.
	RecordFailure(ctx context.Context, saleID uuid.UUID, now time.Time) (time.Time, error)
	Reset(ctx context.Context, saleID uuid.UUID) error
	Sweep(ctx context.Context, now time.Time) (int, error)
}

// VendorCache is the process-local read-through cache of vendor identity and
// statistics. Entries are advisory; every write path invalidates them.
type VendorCache interface {
	GetVendor(id uuid.UUID) (*domain.Vendor, bool)
	SetVendor(v *domain.Vendor)
	GetStats(vendorID uuid.UUID) (*domain.VendorStatistics, bool)
	SetStats(s *domain.VendorStatistics)
	Invalidate(vendorID uuid.UUID)
	InvalidateAll()
	DeleteExpired()
	Len() int
}

// Notifier delivers messages to the email and WhatsApp service.
// Notify never blocks on delivery and never returns an error.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// LedgerMetrics receives counters from the settlement paths.
type LedgerMetrics interface {
	SettlementRecorded(kind string)
	PartialSettlement(kind string)
	TxRetried(op string)
	ApprovalCodeEvent(outcome string)
	WithdrawalDecided(action string)
	SweepCompleted(removed int)
}
