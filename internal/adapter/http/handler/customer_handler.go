package handler

import (
	"qubic-pay/internal/core/ports"
	"qubic-pay/pkg/response"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles wallet and activity-feed endpoints.
type CustomerHandler struct {
	accountSvc ports.AccountService
	historySvc ports.HistoryService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(accountSvc ports.AccountService, historySvc ports.HistoryService) *CustomerHandler {
	return &CustomerHandler{accountSvc: accountSvc, historySvc: historySvc}
}

// GetWallet handles GET /customer/:id.
func (h *CustomerHandler) GetWallet(c *gin.Context) {
	customer, err := h.accountSvc.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, customer)
}

// GetHistory handles GET /customer/:id/history.
func (h *CustomerHandler) GetHistory(c *gin.Context) {
	events, err := h.historySvc.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, events)
}
