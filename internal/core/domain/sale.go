package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus is the closed set of sale lifecycle states.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "PENDING"
	SaleStatusApproved  SaleStatus = "APPROVED"
	SaleStatusCancelled SaleStatus = "CANCELLED"
	SaleStatusSettled   SaleStatus = "SETTLED"
	SaleStatusFailed    SaleStatus = "FAILED"
)

// IsRevenue reports whether sales in this status count toward vendor revenue.
func (s SaleStatus) IsRevenue() bool {
	return s == SaleStatusApproved || s == SaleStatusSettled
}

// RevenueSaleStatuses lists the statuses summed by the ledger.
func RevenueSaleStatuses() []SaleStatus {
	return []SaleStatus{SaleStatusApproved, SaleStatusSettled}
}

var saleStatusAliases = map[string]SaleStatus{
	"pending":   SaleStatusPending,
	"pendente":  SaleStatusPending,
	"approved":  SaleStatusApproved,
	"aprovado":  SaleStatusApproved,
	"aprovada":  SaleStatusApproved,
	"paid":      SaleStatusSettled,
	"pago":      SaleStatusSettled,
	"paga":      SaleStatusSettled,
	"settled":   SaleStatusSettled,
	"cancelled": SaleStatusCancelled,
	"canceled":  SaleStatusCancelled,
	"cancelado": SaleStatusCancelled,
	"cancelada": SaleStatusCancelled,
	"failed":    SaleStatusFailed,
	"falhou":    SaleStatusFailed,
}

// ParseSaleStatus maps the historical spellings found in imported sale rows
// onto the closed enum. Matching is case-insensitive.
func ParseSaleStatus(raw string) (SaleStatus, error) {
	if s, ok := saleStatusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown sale status %q", raw)
}

// SaleStatusSpellings returns every accepted lower-case spelling of the given
// statuses, sorted. Storage queries match LOWER(status) against it so rows
// written before normalization still count.
func SaleStatusSpellings(statuses ...SaleStatus) []string {
	var out []string
	for raw, s := range saleStatusAliases {
		for _, want := range statuses {
			if s == want {
				out = append(out, raw)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Sale is a single purchase of a vendor's product.
type Sale struct {
	ID          uuid.UUID        `json:"id"`
	VendorID    uuid.UUID        `json:"vendor_id"`
	Reference   string           `json:"reference"`
	GrossAmount decimal.Decimal  `json:"gross_amount"`
	AdminShare  *decimal.Decimal `json:"admin_share,omitempty"`
	VendorShare *decimal.Decimal `json:"vendor_share,omitempty"`
	Status      SaleStatus       `json:"status"`
	Notes       string           `json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	ApprovedAt  *time.Time       `json:"approved_at,omitempty"`
}

// ApplySplit records the approve transition and its commission split.
func (s *Sale) ApplySplit(split Split, at time.Time) {
	admin, vendor := split.Admin, split.Vendor
	s.AdminShare = &admin
	s.VendorShare = &vendor
	s.Status = SaleStatusApproved
	s.ApprovedAt = &at
	s.UpdatedAt = at
}

// AppendNote adds an audit line to the free-form notes.
func (s *Sale) AppendNote(line string) {
	s.Notes = appendNote(s.Notes, line)
}

func appendNote(notes, line string) string {
	if notes == "" {
		return line
	}
	return notes + "\n" + line
}
