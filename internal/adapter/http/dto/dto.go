package dto

import (
	"time"

	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"
)

// SaleApprovedRequest is the checkout callback body for a successful payment.
type SaleApprovedRequest struct {
	VendorID    string `json:"vendor_id" binding:"required,uuid"`
	GrossAmount string `json:"gross_amount" binding:"required,money"`
}

// WithdrawalCodeRequest asks for a confirmation code for the given wallet.
type WithdrawalCodeRequest struct {
	WalletID string `json:"wallet_id" binding:"required,uuid"`
}

// WithdrawalRequest is the vendor's withdrawal request body.
type WithdrawalRequest struct {
	WalletID string `json:"wallet_id" binding:"required,uuid"`
	Amount   string `json:"amount" binding:"required,money"`
	Code     string `json:"confirmation_code" binding:"required,len=6,numeric"`
}

// DecisionRequest carries an administrator's decision on a pending request.
type DecisionRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
	Note   string `json:"note" binding:"max=500"`
}

// MarkPaidRequest records the external payout of an approved request.
type MarkPaidRequest struct {
	PayoutReference string `json:"payout_reference" binding:"required,max=100,safe_id"`
}

// ApprovalConfirmRequest carries the one-time code for a manual approval.
type ApprovalConfirmRequest struct {
	Code string `json:"code" binding:"required"`
}

// VendorBalanceResponse is the vendor's revenue ledger.
type VendorBalanceResponse struct {
	TotalRevenue           string `json:"total_revenue"`
	AvailableRevenue       string `json:"available_revenue"`
	OutstandingWithdrawals string `json:"outstanding_withdrawals"`
	TotalPaidOut           string `json:"total_paid_out"`
	SaleCount              int64  `json:"sale_count"`
	ComputedAt             string `json:"computed_at"`
}

// WithdrawalCodeResponse tells the vendor how long the emailed code lasts.
type WithdrawalCodeResponse struct {
	ExpiresAt string `json:"expires_at"`
}

// WithdrawalResponse is a withdrawal request with amounts as fixed strings.
type WithdrawalResponse struct {
	ID              string  `json:"id"`
	VendorID        string  `json:"vendor_id"`
	WalletID        string  `json:"wallet_id"`
	Amount          string  `json:"amount"`
	AdminFee        string  `json:"admin_fee"`
	NetAmount       string  `json:"net_amount"`
	Status          string  `json:"status"`
	Method          string  `json:"method"`
	HolderName      string  `json:"holder_name"`
	PayoutReference *string `json:"payout_reference,omitempty"`
	RequestedAt     string  `json:"requested_at"`
	ProcessedAt     *string `json:"processed_at,omitempty"`
	PaidAt          *string `json:"paid_at,omitempty"`
}

// SaleResponse is a sale with its split.
type SaleResponse struct {
	ID          string  `json:"id"`
	VendorID    string  `json:"vendor_id"`
	Reference   string  `json:"reference"`
	GrossAmount string  `json:"gross_amount"`
	AdminShare  *string `json:"admin_share,omitempty"`
	VendorShare *string `json:"vendor_share,omitempty"`
	Status      string  `json:"status"`
	ApprovedAt  *string `json:"approved_at,omitempty"`
}

// CancelledSaleResponse is a row of the manual approval screen.
type CancelledSaleResponse struct {
	SaleResponse
	HasPendingCode bool `json:"has_pending_code"`
}

// AdminBalanceResponse is the commission aggregate.
type AdminBalanceResponse struct {
	Balance                   string `json:"balance"`
	SaleCommissionTotal       string `json:"sale_commission_total"`
	WithdrawalCommissionTotal string `json:"withdrawal_commission_total"`
	VendorPayoutTotal         string `json:"vendor_payout_total"`
	UpdatedAt                 string `json:"updated_at"`
}

// RecalculationResponse reports the stored and rebuilt aggregate.
type RecalculationResponse struct {
	Previous AdminBalanceResponse `json:"previous"`
	Current  AdminBalanceResponse `json:"current"`
	Drift    string               `json:"drift"`
}

// ApprovalCodeResponse says when the code sent to the administrator expires.
type ApprovalCodeResponse struct {
	SaleID        string `json:"sale_id"`
	ExpiresAt     string `json:"expires_at"`
	AlreadyIssued bool   `json:"already_issued"`
}

// NewVendorBalanceResponse converts vendor statistics to the response body.
func NewVendorBalanceResponse(st *domain.VendorStatistics) VendorBalanceResponse {
	return VendorBalanceResponse{
		TotalRevenue:           st.TotalRevenue.StringFixed(domain.MoneyPlaces),
		AvailableRevenue:       st.AvailableRevenue.StringFixed(domain.MoneyPlaces),
		OutstandingWithdrawals: st.OutstandingWithdrawals.StringFixed(domain.MoneyPlaces),
		TotalPaidOut:           st.TotalPaidOut.StringFixed(domain.MoneyPlaces),
		SaleCount:              st.SaleCount,
		ComputedAt:             formatTime(st.ComputedAt),
	}
}

// NewWithdrawalResponse converts a withdrawal request to the response body.
func NewWithdrawalResponse(w *domain.WithdrawalRequest) WithdrawalResponse {
	return WithdrawalResponse{
		ID:              w.ID.String(),
		VendorID:        w.VendorID.String(),
		WalletID:        w.WalletID.String(),
		Amount:          w.Amount.StringFixed(domain.MoneyPlaces),
		AdminFee:        w.AdminFee.StringFixed(domain.MoneyPlaces),
		NetAmount:       w.NetAmount.StringFixed(domain.MoneyPlaces),
		Status:          string(w.Status),
		Method:          string(w.Method),
		HolderName:      w.HolderName,
		PayoutReference: w.PayoutReference,
		RequestedAt:     formatTime(w.RequestedAt),
		ProcessedAt:     formatTimePtr(w.ProcessedAt),
		PaidAt:          formatTimePtr(w.PaidAt),
	}
}

// NewSaleResponse converts a sale to the response body.
func NewSaleResponse(s *domain.Sale) SaleResponse {
	resp := SaleResponse{
		ID:          s.ID.String(),
		VendorID:    s.VendorID.String(),
		Reference:   s.Reference,
		GrossAmount: s.GrossAmount.StringFixed(domain.MoneyPlaces),
		Status:      string(s.Status),
		ApprovedAt:  formatTimePtr(s.ApprovedAt),
	}
	if s.AdminShare != nil {
		v := s.AdminShare.StringFixed(domain.MoneyPlaces)
		resp.AdminShare = &v
	}
	if s.VendorShare != nil {
		v := s.VendorShare.StringFixed(domain.MoneyPlaces)
		resp.VendorShare = &v
	}
	return resp
}

// NewCancelledSalesResponse converts the manual approval rows.
func NewCancelledSalesResponse(rows []ports.CancelledSale) []CancelledSaleResponse {
	out := make([]CancelledSaleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, CancelledSaleResponse{
			SaleResponse:   NewSaleResponse(&rows[i].Sale),
			HasPendingCode: rows[i].HasPendingCode,
		})
	}
	return out
}

// NewAdminBalanceResponse converts the aggregate to the response body.
func NewAdminBalanceResponse(b *domain.AdminBalance) AdminBalanceResponse {
	return AdminBalanceResponse{
		Balance:                   b.Balance.StringFixed(domain.MoneyPlaces),
		SaleCommissionTotal:       b.SaleCommissionTotal.StringFixed(domain.MoneyPlaces),
		WithdrawalCommissionTotal: b.WithdrawalCommissionTotal.StringFixed(domain.MoneyPlaces),
		VendorPayoutTotal:         b.VendorPayoutTotal.StringFixed(domain.MoneyPlaces),
		UpdatedAt:                 formatTime(b.UpdatedAt),
	}
}

// NewRecalculationResponse converts a recalculation report.
func NewRecalculationResponse(r *domain.RecalculationReport) RecalculationResponse {
	return RecalculationResponse{
		Previous: NewAdminBalanceResponse(&r.Previous),
		Current:  NewAdminBalanceResponse(&r.Current),
		Drift:    r.Drift.StringFixed(domain.MoneyPlaces),
	}
}

// NewApprovalCodeResponse converts an issuance result.
func NewApprovalCodeResponse(issue *domain.ApprovalCodeIssue) ApprovalCodeResponse {
	return ApprovalCodeResponse{
		SaleID:        issue.SaleID.String(),
		ExpiresAt:     formatTime(issue.ExpiresAt),
		AlreadyIssued: issue.AlreadyIssued,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}
