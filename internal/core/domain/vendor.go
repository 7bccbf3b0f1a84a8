package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorStatus represents the account state owned by the account system.
type VendorStatus string

const (
	VendorStatusActive    VendorStatus = "ACTIVE"
	VendorStatusSuspended VendorStatus = "SUSPENDED"
)

// Vendor is a seller on the marketplace.
type Vendor struct {
	ID          uuid.UUID    `json:"id"`
	DisplayName string       `json:"display_name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone,omitempty"`
	Status      VendorStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}

// IsActive returns true if the vendor may request withdrawals.
func (v *Vendor) IsActive() bool {
	return v.Status == VendorStatusActive
}

// VendorStatistics is the materialized balance view of one vendor.
// AvailableRevenue = TotalRevenue - OutstandingWithdrawals and may be negative
// after historical corrections.
type VendorStatistics struct {
	VendorID               uuid.UUID       `json:"vendor_id"`
	TotalRevenue           decimal.Decimal `json:"total_revenue"`
	AvailableRevenue       decimal.Decimal `json:"available_revenue"`
	OutstandingWithdrawals decimal.Decimal `json:"outstanding_withdrawals"`
	TotalPaidOut           decimal.Decimal `json:"total_paid_out"`
	SaleCount              int64           `json:"sale_count"`
	ComputedAt             time.Time       `json:"computed_at"`
}
