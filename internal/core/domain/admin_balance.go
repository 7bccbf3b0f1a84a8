package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdminBalance is the platform's single commission aggregate.
type AdminBalance struct {
	Balance                   decimal.Decimal `json:"balance"`
	SaleCommissionTotal       decimal.Decimal `json:"sale_commission_total"`
	WithdrawalCommissionTotal decimal.Decimal `json:"withdrawal_commission_total"`
	VendorPayoutTotal         decimal.Decimal `json:"vendor_payout_total"`
	UpdatedAt                 time.Time       `json:"updated_at"`
}

// CreditReason says which commission a credit comes from.
type CreditReason string

const (
	CreditReasonSaleCommission       CreditReason = "SALE_COMMISSION"
	CreditReasonWithdrawalCommission CreditReason = "WITHDRAWAL_COMMISSION"
)

// AdminCredit is one atomic increment of the aggregate.
type AdminCredit struct {
	Reason       CreditReason
	SourceID     uuid.UUID
	Amount       decimal.Decimal
	VendorPayout decimal.Decimal // zero for sale commissions
}

// RecalculationReport compares the stored aggregate with the one rebuilt
// from source rows.
type RecalculationReport struct {
	Previous AdminBalance    `json:"previous"`
	Current  AdminBalance    `json:"current"`
	Drift    decimal.Decimal `json:"drift"`
}
