package ports

import (
	"context"
	"time"

	"qubic-pay/internal/core/domain"

	"github.com/shopspring/decimal"
)

// --- Service Ports (Business Logic) ---

// AccountService covers name-based identity lookup and wallet reads.
// Login operations create the account on first use.
type AccountService interface {
	MerchantLogin(ctx context.Context, name string) (*domain.Merchant, error)
	CustomerLogin(ctx context.Context, name string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
}

// PaymentService governs the payment request lifecycle.
type PaymentService interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResult, error)
	ListMerchantPayments(ctx context.Context, merchantID string) ([]domain.Payment, error)
	GetPublicPayment(ctx context.Context, id string) (*domain.PublicPayment, error)
	PayPayment(ctx context.Context, id string, payerID string) (*PayPaymentResult, error)
}

// CreatePaymentRequest holds validated input for payment creation.
type CreatePaymentRequest struct {
	MerchantID  string
	Amount      decimal.Decimal
	Asset       string
	Description string
}

// CreatePaymentResult is the created payment plus its shareable link.
type CreatePaymentResult struct {
	domain.Payment
	PaymentLink string `json:"paymentLink"`
}

// PayPaymentResult confirms the terminal PENDING -> PAID transition.
type PayPaymentResult struct {
	ID     string               `json:"id"`
	Status domain.PaymentStatus `json:"status"`
	PaidAt time.Time            `json:"paidAt"`
}

// CreditService issues and settles loans against the customer's credit line.
type CreditService interface {
	ApplyForLoan(ctx context.Context, req ApplyLoanRequest) (*ApplyLoanResult, error)
	RepayLoan(ctx context.Context, req RepayLoanRequest) (*RepayLoanResult, error)
}

// ApplyLoanRequest holds validated input for a loan application.
type ApplyLoanRequest struct {
	CustomerID string
	Amount     int64 // principal, whole native units
	Duration   int   // days until due
}

// ApplyLoanResult is the created loan plus the customer's new position.
type ApplyLoanResult struct {
	Loan       domain.Loan          `json:"loan"`
	NewBalance int64                `json:"newBalance"`
	Status     domain.AccountStatus `json:"status"`
}

// RepayLoanRequest holds validated input for a loan repayment.
// CardDetails is a placeholder settlement proof, not a real instrument.
type RepayLoanRequest struct {
	CustomerID  string
	LoanID      string
	CardDetails string
}

// RepayLoanResult is the confirmation message plus the settled loan.
type RepayLoanResult struct {
	Message string      `json:"message"`
	Loan    domain.Loan `json:"loan"`
}

// HistoryService merges payment and loan events into one activity feed.
type HistoryService interface {
	GetHistory(ctx context.Context, customerID string) ([]domain.HistoryEvent, error)
}
