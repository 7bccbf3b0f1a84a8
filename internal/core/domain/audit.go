package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionSaleApproved         AuditAction = "SALE_APPROVED"
	AuditActionSaleManuallyApproved AuditAction = "SALE_MANUALLY_APPROVED"
	AuditActionApprovalCodeIssued   AuditAction = "APPROVAL_CODE_ISSUED"
	AuditActionApprovalCodeRejected AuditAction = "APPROVAL_CODE_REJECTED"
	AuditActionWithdrawalRequested  AuditAction = "WITHDRAWAL_REQUESTED"
	AuditActionWithdrawalApproved   AuditAction = "WITHDRAWAL_APPROVED"
	AuditActionWithdrawalRejected   AuditAction = "WITHDRAWAL_REJECTED"
	AuditActionWithdrawalPaid       AuditAction = "WITHDRAWAL_PAID"
	AuditActionBalanceRecalculated  AuditAction = "ADMIN_BALANCE_RECALCULATED"
	AuditActionSettlementPartial    AuditAction = "SETTLEMENT_PARTIAL"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time   `json:"created_at"`
}
