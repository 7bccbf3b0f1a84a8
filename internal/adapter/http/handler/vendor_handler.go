package handler

import (
	"time"

	"marketplace-ledger/internal/adapter/http/dto"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/pkg/apperror"
	"marketplace-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VendorHandler serves the vendor's balance and withdrawal endpoints.
type VendorHandler struct {
	ledgerSvc     ports.LedgerService
	withdrawalSvc ports.WithdrawalService
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(ledgerSvc ports.LedgerService, withdrawalSvc ports.WithdrawalService) *VendorHandler {
	return &VendorHandler{ledgerSvc: ledgerSvc, withdrawalSvc: withdrawalSvc}
}

// GetBalance handles GET /api/v1/vendor/balance.
func (h *VendorHandler) GetBalance(c *gin.Context) {
	vendorID, ok := actor(c)
	if !ok {
		return
	}

	stats, err := h.ledgerSvc.GetVendorBalance(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewVendorBalanceResponse(stats))
}

// IssueWithdrawalCode handles POST /api/v1/vendor/withdrawals/code.
func (h *VendorHandler) IssueWithdrawalCode(c *gin.Context) {
	vendorID, ok := actor(c)
	if !ok {
		return
	}

	var req dto.WithdrawalCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	walletID, _ := uuid.Parse(req.WalletID)

	expiresAt, err := h.withdrawalSvc.IssueWithdrawalCode(c.Request.Context(), vendorID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.WithdrawalCodeResponse{ExpiresAt: expiresAt.UTC().Format(time.RFC3339)})
}

// RequestWithdrawal handles POST /api/v1/vendor/withdrawals.
func (h *VendorHandler) RequestWithdrawal(c *gin.Context) {
	vendorID, ok := actor(c)
	if !ok {
		return
	}

	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	walletID, _ := uuid.Parse(req.WalletID)
	amount, ok := dto.ParseMoney(req.Amount)
	if !ok {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	w, err := h.withdrawalSvc.RequestWithdrawal(c.Request.Context(), ports.WithdrawalInput{
		VendorID: vendorID,
		WalletID: walletID,
		Amount:   amount,
		Code:     req.Code,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewWithdrawalResponse(w))
}
