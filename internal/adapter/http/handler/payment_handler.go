package handler

import (
	"errors"
	"io"

	"qubic-pay/internal/adapter/http/dto"
	"qubic-pay/internal/core/ports"
	"qubic-pay/pkg/apperror"
	"qubic-pay/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment-request endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// Create handles POST /payments.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.InvalidInput("Invalid request body"))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.paymentSvc.CreatePayment(c.Request.Context(), ports.CreatePaymentRequest{
		MerchantID:  req.MerchantID,
		Amount:      req.Amount,
		Asset:       req.Asset,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// ListByMerchant handles GET /payments?merchantId=...
func (h *PaymentHandler) ListByMerchant(c *gin.Context) {
	payments, err := h.paymentSvc.ListMerchantPayments(c.Request.Context(), c.Query("merchantId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, payments)
}

// GetPublic handles GET /payments/:id — the unauthenticated projection
// served behind the shareable payment link.
func (h *PaymentHandler) GetPublic(c *gin.Context) {
	payment, err := h.paymentSvc.GetPublicPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, payment)
}

// Pay handles POST /payments/:id/pay. The body is optional: anonymous
// settlements send none.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.InvalidInput("Invalid request body"))
		return
	}

	result, err := h.paymentSvc.PayPayment(c.Request.Context(), c.Param("id"), req.CustomerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
