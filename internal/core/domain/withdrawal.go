package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalStatus is the state of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "PENDING"
	WithdrawalStatusApproved WithdrawalStatus = "APPROVED"
	WithdrawalStatusPaid     WithdrawalStatus = "PAID"
	WithdrawalStatusRejected WithdrawalStatus = "REJECTED"
)

var withdrawalTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalStatusPending:  {WithdrawalStatusApproved, WithdrawalStatusRejected},
	WithdrawalStatusApproved: {WithdrawalStatusPaid},
}

// CanTransitionTo reports whether the state machine allows s -> next.
// PAID and REJECTED are terminal.
func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	for _, allowed := range withdrawalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ReservesRevenue reports whether the amount of a request in this status is
// subtracted from the vendor's available revenue.
func (s WithdrawalStatus) ReservesRevenue() bool {
	return s == WithdrawalStatusPending || s == WithdrawalStatusApproved || s == WithdrawalStatusPaid
}

var withdrawalStatusAliases = map[string]WithdrawalStatus{
	"pending":   WithdrawalStatusPending,
	"pendente":  WithdrawalStatusPending,
	"approved":  WithdrawalStatusApproved,
	"aprovado":  WithdrawalStatusApproved,
	"aprovada":  WithdrawalStatusApproved,
	"paid":      WithdrawalStatusPaid,
	"pago":      WithdrawalStatusPaid,
	"paga":      WithdrawalStatusPaid,
	"rejected":  WithdrawalStatusRejected,
	"rejeitado": WithdrawalStatusRejected,
	"rejeitada": WithdrawalStatusRejected,
	"cancelado": WithdrawalStatusRejected,
	"cancelada": WithdrawalStatusRejected,
}

// ParseWithdrawalStatus maps historical spellings onto the closed enum.
func ParseWithdrawalStatus(raw string) (WithdrawalStatus, error) {
	if s, ok := withdrawalStatusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown withdrawal status %q", raw)
}

// WithdrawalStatusSpellings returns every accepted lower-case spelling of the
// given statuses, sorted.
func WithdrawalStatusSpellings(statuses ...WithdrawalStatus) []string {
	var out []string
	for raw, s := range withdrawalStatusAliases {
		for _, want := range statuses {
			if s == want {
				out = append(out, raw)
			}
		}
	}
	sort.Strings(out)
	return out
}

// WithdrawalAction is an administrator's decision on a pending request.
type WithdrawalAction string

const (
	WithdrawalActionApprove WithdrawalAction = "approve"
	WithdrawalActionReject  WithdrawalAction = "reject"
)

// Valid reports whether a is a known action.
func (a WithdrawalAction) Valid() bool {
	return a == WithdrawalActionApprove || a == WithdrawalActionReject
}

// WithdrawalRequest is a vendor's request to move available revenue to a wallet.
// Holder fields are a snapshot taken at request time and never change.
type WithdrawalRequest struct {
	ID              uuid.UUID        `json:"id"`
	VendorID        uuid.UUID        `json:"vendor_id"`
	WalletID        uuid.UUID        `json:"wallet_id"`
	Amount          decimal.Decimal  `json:"amount"`
	AdminFee        decimal.Decimal  `json:"admin_fee"`
	NetAmount       decimal.Decimal  `json:"net_amount"`
	Status          WithdrawalStatus `json:"status"`
	Method          PaymentMethod    `json:"method"`
	HolderName      string           `json:"holder_name"`
	HolderContact   string           `json:"holder_contact"`
	Notes           string           `json:"notes,omitempty"`
	PayoutReference *string          `json:"payout_reference,omitempty"`
	ProcessedBy     *uuid.UUID       `json:"processed_by,omitempty"`
	RequestedAt     time.Time        `json:"requested_at"`
	ProcessedAt     *time.Time       `json:"processed_at,omitempty"`
	PaidAt          *time.Time       `json:"paid_at,omitempty"`
}

// NewWithdrawalRequest builds a PENDING request with its fee preview and the
// wallet holder snapshot.
func NewWithdrawalRequest(vendorID uuid.UUID, wallet *Wallet, holder WalletMethod, amount decimal.Decimal, now time.Time) *WithdrawalRequest {
	split := SplitWithdrawal(amount)
	return &WithdrawalRequest{
		ID:            uuid.New(),
		VendorID:      vendorID,
		WalletID:      wallet.ID,
		Amount:        amount,
		AdminFee:      split.Admin,
		NetAmount:     split.Vendor,
		Status:        WithdrawalStatusPending,
		Method:        holder.Method,
		HolderName:    holder.HolderName,
		HolderContact: holder.Contact,
		RequestedAt:   now,
	}
}

// Split returns the fee split for the request amount.
func (w *WithdrawalRequest) Split() Split {
	return Split{Gross: w.Amount, Admin: w.AdminFee, Vendor: w.NetAmount}
}

// AppendNote adds an audit line to the notes.
func (w *WithdrawalRequest) AppendNote(line string) {
	w.Notes = appendNote(w.Notes, line)
}
