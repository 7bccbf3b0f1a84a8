package dto

import (
	"testing"
	"time"

	"marketplace-ledger/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyValidator(t *testing.T) {
	walletID := uuid.NewString()
	tests := []struct {
		amount string
		valid  bool
	}{
		{"150.00", true},
		{"0.01", true},
		{"42", true},
		{"0", false},
		{"-10.00", false},
		{"10.001", false},
		{"1e3", true},
		{"ten", false},
		{"", false},
	}
	for _, tc := range tests {
		t.Run(tc.amount, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&WithdrawalRequest{
				WalletID: walletID,
				Amount:   tc.amount,
				Code:     "123456",
			})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestWithdrawalRequest_CodeMustBeSixDigits(t *testing.T) {
	for _, code := range []string{"12345", "1234567", "12a456"} {
		err := binding.Validator.ValidateStruct(&WithdrawalRequest{
			WalletID: uuid.NewString(),
			Amount:   "10.00",
			Code:     code,
		})
		assert.Error(t, err, code)
	}
}

func TestDecisionRequest_Action(t *testing.T) {
	assert.NoError(t, binding.Validator.ValidateStruct(&DecisionRequest{Action: "approve"}))
	assert.NoError(t, binding.Validator.ValidateStruct(&DecisionRequest{Action: "reject", Note: "wrong holder"}))
	assert.Error(t, binding.Validator.ValidateStruct(&DecisionRequest{Action: "pay"}))
}

func TestMarkPaidRequest_SafeReference(t *testing.T) {
	assert.NoError(t, binding.Validator.ValidateStruct(&MarkPaidRequest{PayoutReference: "PIX-2024.0001_a"}))
	assert.Error(t, binding.Validator.ValidateStruct(&MarkPaidRequest{PayoutReference: "ref; DROP TABLE"}))
}

func TestSanitizeStruct_TrimsAndEscapes(t *testing.T) {
	req := DecisionRequest{
		Action: " reject ",
		Note:   "  holder <b>mismatch</b>  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "reject", req.Action)
	assert.Equal(t, "holder &lt;b&gt;mismatch&lt;/b&gt;", req.Note)
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	ref := "  PIX-1  "
	var nilRef *string
	req := struct {
		Ref   *string
		Other *string
	}{Ref: &ref, Other: nilRef}

	SanitizeStruct(&req)

	assert.Equal(t, "PIX-1", *req.Ref)
	assert.Nil(t, req.Other)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	req := DecisionRequest{Note: "  x  "}
	SanitizeStruct(req)
	assert.Equal(t, "  x  ", req.Note)
}

func TestNewSaleResponse_FormatsShares(t *testing.T) {
	approved := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	admin, vendor := decimal.RequireFromString("1.1"), decimal.RequireFromString("9.9")
	sale := &domain.Sale{
		ID:          uuid.New(),
		VendorID:    uuid.New(),
		Reference:   "ORD-77",
		GrossAmount: decimal.RequireFromString("11"),
		AdminShare:  &admin,
		VendorShare: &vendor,
		Status:      domain.SaleStatusApproved,
		ApprovedAt:  &approved,
	}

	resp := NewSaleResponse(sale)

	assert.Equal(t, "11.00", resp.GrossAmount)
	require.NotNil(t, resp.AdminShare)
	assert.Equal(t, "1.10", *resp.AdminShare)
	assert.Equal(t, "9.90", *resp.VendorShare)
	assert.Equal(t, "2026-03-01T15:00:00Z", *resp.ApprovedAt)

	pending := NewSaleResponse(&domain.Sale{GrossAmount: decimal.RequireFromString("5"), Status: domain.SaleStatusCancelled})
	assert.Nil(t, pending.AdminShare)
	assert.Nil(t, pending.ApprovedAt)
}

func TestNewRecalculationResponse(t *testing.T) {
	report := &domain.RecalculationReport{
		Previous: domain.AdminBalance{Balance: decimal.RequireFromString("10")},
		Current:  domain.AdminBalance{Balance: decimal.RequireFromString("13.33")},
		Drift:    decimal.RequireFromString("3.33"),
	}

	resp := NewRecalculationResponse(report)

	assert.Equal(t, "10.00", resp.Previous.Balance)
	assert.Equal(t, "13.33", resp.Current.Balance)
	assert.Equal(t, "3.33", resp.Drift)
}
