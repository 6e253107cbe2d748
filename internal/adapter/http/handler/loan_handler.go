package handler

import (
	"qubic-pay/internal/adapter/http/dto"
	"qubic-pay/internal/core/ports"
	"qubic-pay/pkg/apperror"
	"qubic-pay/pkg/response"

	"github.com/gin-gonic/gin"
)

// LoanHandler handles credit-line endpoints.
type LoanHandler struct {
	creditSvc ports.CreditService
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(creditSvc ports.CreditService) *LoanHandler {
	return &LoanHandler{creditSvc: creditSvc}
}

// Apply handles POST /loans/apply.
func (h *LoanHandler) Apply(c *gin.Context) {
	var req dto.ApplyLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.InvalidInput("Invalid request body"))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.creditSvc.ApplyForLoan(c.Request.Context(), ports.ApplyLoanRequest{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Duration:   req.Duration,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Repay handles POST /loans/repay.
func (h *LoanHandler) Repay(c *gin.Context) {
	var req dto.RepayLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.InvalidInput("Invalid request body"))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.creditSvc.RepayLoan(c.Request.Context(), ports.RepayLoanRequest{
		CustomerID:  req.CustomerID,
		LoanID:      req.LoanID,
		CardDetails: req.CardDetails,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
