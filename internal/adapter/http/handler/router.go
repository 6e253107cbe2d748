package handler

import (
	"qubic-pay/internal/adapter/http/middleware"
	"qubic-pay/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AccountSvc     ports.AccountService
	PaymentSvc     ports.PaymentService
	CreditSvc      ports.CreditService
	HistorySvc     ports.HistoryService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// The route table is flat: the dashboard and checkout collaborators were
// built against these exact paths.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (verifies the configured store backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	authHandler := NewAuthHandler(deps.AccountSvc)
	r.POST("/login", authHandler.MerchantLogin)
	r.POST("/customer/login", authHandler.CustomerLogin)

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	payments := r.Group("/payments")
	{
		payments.POST("", paymentHandler.Create)
		payments.GET("", paymentHandler.ListByMerchant)
		payments.GET("/:id", paymentHandler.GetPublic)
		payments.POST("/:id/pay", paymentHandler.Pay)
	}

	customerHandler := NewCustomerHandler(deps.AccountSvc, deps.HistorySvc)
	r.GET("/customer/:id", customerHandler.GetWallet)
	r.GET("/customer/:id/history", customerHandler.GetHistory)

	loanHandler := NewLoanHandler(deps.CreditSvc)
	loans := r.Group("/loans")
	{
		loans.POST("/apply", loanHandler.Apply)
		loans.POST("/repay", loanHandler.Repay)
	}

	return r
}
