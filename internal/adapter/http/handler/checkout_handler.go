package handler

import (
	"marketplace-ledger/internal/adapter/http/dto"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/pkg/apperror"
	"marketplace-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutHandler receives signed callbacks from the payment checkout.
type CheckoutHandler struct {
	settlementSvc ports.SettlementService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(settlementSvc ports.SettlementService) *CheckoutHandler {
	return &CheckoutHandler{settlementSvc: settlementSvc}
}

// SaleApproved handles POST /api/v1/checkout/sales/:id/approved.
// Replays of an already approved sale answer 200 with the stored split.
func (h *CheckoutHandler) SaleApproved(c *gin.Context) {
	saleID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.SaleApprovedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	vendorID, _ := uuid.Parse(req.VendorID)
	gross, ok := dto.ParseMoney(req.GrossAmount)
	if !ok {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	sale, err := h.settlementSvc.OnSaleApproved(c.Request.Context(), saleID, vendorID, gross)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewSaleResponse(sale))
}
