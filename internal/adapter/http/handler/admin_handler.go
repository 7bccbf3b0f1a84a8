package handler

import (
	"marketplace-ledger/internal/adapter/http/dto"
	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/pkg/apperror"
	"marketplace-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the administrator's withdrawal queue, commission
// balance and manual approval screens.
type AdminHandler struct {
	withdrawalSvc ports.WithdrawalService
	balanceSvc    ports.AdminBalanceService
	approvalSvc   ports.ApprovalService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(withdrawalSvc ports.WithdrawalService, balanceSvc ports.AdminBalanceService, approvalSvc ports.ApprovalService) *AdminHandler {
	return &AdminHandler{
		withdrawalSvc: withdrawalSvc,
		balanceSvc:    balanceSvc,
		approvalSvc:   approvalSvc,
	}
}

// ListWithdrawals handles GET /api/v1/admin/withdrawals.
func (h *AdminHandler) ListWithdrawals(c *gin.Context) {
	params := ports.WithdrawalListParams{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	if raw := c.Query("vendor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("invalid vendor_id"))
			return
		}
		params.VendorID = &id
	}
	if raw := c.Query("status"); raw != "" {
		status, err := domain.ParseWithdrawalStatus(raw)
		if err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		params.Status = &status
	}

	items, total, err := h.withdrawalSvc.ListWithdrawals(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.WithdrawalResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewWithdrawalResponse(&items[i]))
	}
	response.Page(c, out, total, params.Page, params.PageSize)
}

// DecideWithdrawal handles POST /api/v1/admin/withdrawals/:id/decision.
func (h *AdminHandler) DecideWithdrawal(c *gin.Context) {
	adminID, ok := actor(c)
	if !ok {
		return
	}
	requestID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	w, err := h.withdrawalSvc.DecideWithdrawal(c.Request.Context(), ports.DecisionInput{
		RequestID: requestID,
		AdminID:   adminID,
		Action:    domain.WithdrawalAction(req.Action),
		Note:      req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewWithdrawalResponse(w))
}

// MarkWithdrawalPaid handles POST /api/v1/admin/withdrawals/:id/paid.
func (h *AdminHandler) MarkWithdrawalPaid(c *gin.Context) {
	adminID, ok := actor(c)
	if !ok {
		return
	}
	requestID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	w, err := h.withdrawalSvc.MarkWithdrawalPaid(c.Request.Context(), requestID, adminID, req.PayoutReference)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewWithdrawalResponse(w))
}

// GetBalance handles GET /api/v1/admin/balance.
func (h *AdminHandler) GetBalance(c *gin.Context) {
	b, err := h.balanceSvc.GetBalance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewAdminBalanceResponse(b))
}

// RecalculateBalance handles POST /api/v1/admin/balance/recalculate.
func (h *AdminHandler) RecalculateBalance(c *gin.Context) {
	adminID, ok := actor(c)
	if !ok {
		return
	}

	report, err := h.balanceSvc.Recalculate(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewRecalculationResponse(report))
}

// ListCancelledSales handles GET /api/v1/admin/sales/cancelled.
func (h *AdminHandler) ListCancelledSales(c *gin.Context) {
	rows, err := h.approvalSvc.ListCancelledSales(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewCancelledSalesResponse(rows))
}

// RequestApprovalCode handles POST /api/v1/admin/sales/:id/approval-code.
// The code itself only travels through the notifier.
func (h *AdminHandler) RequestApprovalCode(c *gin.Context) {
	adminID, ok := actor(c)
	if !ok {
		return
	}
	saleID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	issue, err := h.approvalSvc.RequestManualApprovalCode(c.Request.Context(), saleID, adminID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if issue.AlreadyIssued {
		response.OK(c, dto.NewApprovalCodeResponse(issue))
		return
	}
	response.Created(c, dto.NewApprovalCodeResponse(issue))
}

// ConfirmApproval handles POST /api/v1/admin/sales/:id/approval.
func (h *AdminHandler) ConfirmApproval(c *gin.Context) {
	adminID, ok := actor(c)
	if !ok {
		return
	}
	saleID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.ApprovalConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	sale, err := h.approvalSvc.ConfirmManualApproval(c.Request.Context(), saleID, req.Code, adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewSaleResponse(sale))
}
