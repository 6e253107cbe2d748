package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the lifecycle state of a loan. PAID is terminal.
type LoanStatus string

const (
	LoanStatusActive LoanStatus = "ACTIVE"
	LoanStatusPaid   LoanStatus = "PAID"
)

// Loan is a short-term credit draw against a customer's wallet.
type Loan struct {
	ID               string     `json:"id"`
	CustomerID       string     `json:"customerId"`
	AmountPrincipal  int64      `json:"amountPrincipal"`
	AmountInterest   int64      `json:"amountInterest"`
	TotalRepayNative int64      `json:"totalRepayNative"`
	TotalRepayFiat   string     `json:"totalRepayFiat"`
	Duration         int        `json:"duration"`
	DueDate          time.Time  `json:"dueDate"`
	Status           LoanStatus `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	PaidAt           *time.Time `json:"paidAt,omitempty"`
}

// IsActive reports whether the loan still carries debt.
func (ln *Loan) IsActive() bool {
	return ln.Status == LoanStatusActive
}

// LoanTerms is the arithmetic of a loan offer.
type LoanTerms struct {
	Interest         int64
	TotalRepayNative int64
	TotalRepayFiat   string
}

// ComputeLoanTerms prices a loan. Interest is principal times the rate,
// rounded up to the next whole native unit; the fiat settlement figure is
// the native total times the exchange rate, rounded up to the cent and
// rendered with fixed two decimals. Neither rounding ever favors the
// borrower — test fixtures depend on these exact results.
func ComputeLoanTerms(principal int64, interestRate, exchangeRate decimal.Decimal) LoanTerms {
	interest := decimal.NewFromInt(principal).Mul(interestRate).Ceil().IntPart()
	native := principal + interest
	fiat := decimal.NewFromInt(native).Mul(exchangeRate).RoundCeil(2)
	return LoanTerms{
		Interest:         interest,
		TotalRepayNative: native,
		TotalRepayFiat:   fiat.StringFixed(2),
	}
}
