package dto

import "github.com/shopspring/decimal"

// Request validation happens in two layers: binding tags reject ids with
// characters that can never appear in an engine identifier, and the
// services enforce the business rules so their messages reach the caller
// verbatim.

// MerchantLoginRequest is the request body for merchant login.
type MerchantLoginRequest struct {
	MerchantName string `json:"merchantName"`
}

// CustomerLoginRequest is the request body for customer login.
type CustomerLoginRequest struct {
	Name string `json:"name"`
}

// CreatePaymentRequest is the request body for payment creation.
type CreatePaymentRequest struct {
	MerchantID  string          `json:"merchantId" binding:"omitempty,safe_id"`
	Amount      decimal.Decimal `json:"amount"`
	Asset       string          `json:"asset"`
	Description string          `json:"description"`
}

// PayRequest is the request body for settling a payment. CustomerID is
// optional; anonymous settlements carry no payer.
type PayRequest struct {
	CustomerID string `json:"customerId" binding:"omitempty,safe_id"`
}

// ApplyLoanRequest is the request body for a loan application.
type ApplyLoanRequest struct {
	CustomerID string `json:"customerId" binding:"omitempty,safe_id"`
	Amount     int64  `json:"amount"`
	Duration   int    `json:"duration"`
}

// RepayLoanRequest is the request body for a loan repayment.
type RepayLoanRequest struct {
	CustomerID  string `json:"customerId" binding:"omitempty,safe_id"`
	LoanID      string `json:"loanId" binding:"omitempty,safe_id"`
	CardDetails string `json:"cardDetails"`
}
