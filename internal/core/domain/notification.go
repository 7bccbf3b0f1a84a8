package domain

import "github.com/google/uuid"

// Role is the audience of a notification or the caller of an operation.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleVendor Role = "vendor"
)

// Notification template keys understood by the delivery service.
const (
	TemplateApprovalOTP          = "approval.otp"
	TemplateWithdrawalCode       = "withdrawal.code"
	TemplateWithdrawalPending    = "withdrawal.pending"
	TemplateWithdrawalApproved   = "withdrawal.approved"
	TemplateWithdrawalRejected   = "withdrawal.rejected"
	TemplateWithdrawalPaid       = "withdrawal.paid"
	TemplateSaleManuallyApproved = "sale.manually_approved"
	TemplateSettlementPartial    = "settlement.partial"
)

// Notification is a fire-and-forget message. RecipientID is nil for
// messages addressed to the administrators as a group.
type Notification struct {
	Role        Role              `json:"role"`
	RecipientID *uuid.UUID        `json:"recipient_id,omitempty"`
	Template    string            `json:"template"`
	Payload     map[string]string `json:"payload"`
}
