package handler

import (
	"net/http"

	"qubic-pay/internal/adapter/http/dto"
	"qubic-pay/internal/core/ports"
	"qubic-pay/pkg/apperror"
	"qubic-pay/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the name-based login endpoints.
type AuthHandler struct {
	accountSvc ports.AccountService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accountSvc ports.AccountService) *AuthHandler {
	return &AuthHandler{accountSvc: accountSvc}
}

// MerchantLogin handles POST /login.
func (h *AuthHandler) MerchantLogin(c *gin.Context) {
	var req dto.MerchantLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.InvalidInput("Invalid request body"))
		return
	}
	dto.SanitizeStruct(&req)

	merchant, err := h.accountSvc.MerchantLogin(c.Request.Context(), req.MerchantName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, merchant)
}

// CustomerLogin handles POST /customer/login.
func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var req dto.CustomerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.InvalidInput("Invalid request body"))
		return
	}
	dto.SanitizeStruct(&req)

	customer, err := h.accountSvc.CustomerLogin(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, customer)
}

// HealthCheck handles GET /health — deep health check verifying the
// configured store backend.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
