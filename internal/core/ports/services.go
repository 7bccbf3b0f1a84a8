package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"marketplace-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body []byte) string
}

// TokenService handles JWT token operations for admin and vendor callers.
type TokenService interface {
	Generate(actorID uuid.UUID, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	ActorID uuid.UUID
	Role    domain.Role
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// LedgerService computes vendor balances.
type LedgerService interface {
	// ComputeVendorBalance recomputes from source rows and refreshes the cache.
	ComputeVendorBalance(ctx context.Context, vendorID uuid.UUID) (*domain.VendorStatistics, error)
	// GetVendorBalance serves from the cache when fresh.
	GetVendorBalance(ctx context.Context, vendorID uuid.UUID) (*domain.VendorStatistics, error)
}

// SettlementService applies commission splits and credits the admin balance.
type SettlementService interface {
	// OnSaleApproved is the checkout hand-off for a successful payment.
	OnSaleApproved(ctx context.Context, saleID, vendorID uuid.UUID, gross decimal.Decimal) (*domain.Sale, error)
	// CommitSale and CommitWithdrawal run a transition and, when it approves,
	// the admin credit and statistics refresh it owes in one transaction.
	// If only the credit fails, the transition is committed alone and
	// reported to operators as a partial settlement; the caller sees success.
	CommitSale(ctx context.Context, op string, transition SaleTransition) (*domain.Sale, error)
	CommitWithdrawal(ctx context.Context, op string, transition WithdrawalTransition) (*domain.WithdrawalRequest, error)
}

// SaleTransition changes a sale inside tx. approved reports that the sale
// has just entered a revenue status and owes its commission.
type SaleTransition func(tx pgx.Tx) (sale *domain.Sale, approved bool, err error)

// WithdrawalTransition changes a withdrawal request inside tx. approved
// reports that the request has just been approved and owes its fee.
type WithdrawalTransition func(tx pgx.Tx) (w *domain.WithdrawalRequest, approved bool, err error)

// AdminBalanceService exposes the commission aggregate.
type AdminBalanceService interface {
	GetBalance(ctx context.Context) (*domain.AdminBalance, error)
	Recalculate(ctx context.Context, actorID uuid.UUID) (*domain.RecalculationReport, error)
}

// WithdrawalService drives withdrawal requests through their state machine.
type WithdrawalService interface {
	IssueWithdrawalCode(ctx context.Context, vendorID, walletID uuid.UUID) (time.Time, error)
	RequestWithdrawal(ctx context.Context, req WithdrawalInput) (*domain.WithdrawalRequest, error)
	DecideWithdrawal(ctx context.Context, req DecisionInput) (*domain.WithdrawalRequest, error)
	MarkWithdrawalPaid(ctx context.Context, requestID, adminID uuid.UUID, payoutRef string) (*domain.WithdrawalRequest, error)
	ListWithdrawals(ctx context.Context, params WithdrawalListParams) ([]domain.WithdrawalRequest, int64, error)
}

// WithdrawalInput holds validated input for a withdrawal request.
type WithdrawalInput struct {
	VendorID uuid.UUID
	WalletID uuid.UUID
	Amount   decimal.Decimal
	Code     string
}

// DecisionInput holds an administrator's decision on a pending request.
type DecisionInput struct {
	RequestID uuid.UUID
	AdminID   uuid.UUID
	Action    domain.WithdrawalAction
	Note      string
}

// ApprovalService gates manual re-approval of cancelled sales behind a
// one-time code.
type ApprovalService interface {
	RequestManualApprovalCode(ctx context.Context, saleID, adminID uuid.UUID) (*domain.ApprovalCodeIssue, error)
	ConfirmManualApproval(ctx context.Context, saleID uuid.UUID, code string, adminID uuid.UUID) (*domain.Sale, error)
	ListCancelledSales(ctx context.Context, limit int) ([]CancelledSale, error)
}

// CancelledSale is a row of the manual approval screen.
type CancelledSale struct {
	Sale           domain.Sale
	HasPendingCode bool
}
