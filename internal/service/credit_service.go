package service

import (
	"context"

	"qubic-pay/internal/core/domain"
	"qubic-pay/internal/core/ports"
	"qubic-pay/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// minCardDetailsLen is the placeholder settlement-proof check. Real
// payment-instrument verification is out of scope.
const minCardDetailsLen = 4

// CreditServiceImpl implements ports.CreditService.
type CreditServiceImpl struct {
	session      ports.LedgerSession
	ids          ports.IDSource
	clock        ports.Clock
	interestRate decimal.Decimal
	exchangeRate decimal.Decimal
	log          zerolog.Logger
}

// NewCreditService creates a new CreditServiceImpl. interestRate is a
// fraction (0.05 = 5%), exchangeRate the native-to-fiat multiplier.
func NewCreditService(
	session ports.LedgerSession,
	ids ports.IDSource,
	clock ports.Clock,
	interestRate float64,
	exchangeRate float64,
	log zerolog.Logger,
) *CreditServiceImpl {
	return &CreditServiceImpl{
		session:      session,
		ids:          ids,
		clock:        clock,
		interestRate: decimal.NewFromFloat(interestRate),
		exchangeRate: decimal.NewFromFloat(exchangeRate),
		log:          log,
	}
}

// ApplyForLoan issues a loan against the customer's credit line.
// Precedence of checks: customer exists, account not frozen, then the
// debt ceiling — the first failing check wins and nothing is persisted.
func (s *CreditServiceImpl) ApplyForLoan(ctx context.Context, req ports.ApplyLoanRequest) (*ports.ApplyLoanResult, error) {
	if req.CustomerID == "" {
		return nil, apperror.InvalidInput("Customer ID is required")
	}
	if req.Amount <= 0 {
		return nil, apperror.InvalidInput("Amount must be positive")
	}
	if req.Duration <= 0 {
		return nil, apperror.InvalidInput("Duration must be positive")
	}

	var out ports.ApplyLoanResult
	err := s.session.Update(ctx, func(led *domain.Ledger) error {
		c := led.CustomerByID(req.CustomerID)
		if c == nil {
			return apperror.NotFound("Customer")
		}

		now := s.clock.Now()

		// The freeze can trigger on any check, not just on login: an
		// overdue loan blocks the application even when the stored
		// status has not caught up yet.
		domain.EvaluateStatus(c, led.Loans, now)
		if c.IsFrozen() {
			return apperror.AccountFrozen()
		}

		terms := domain.ComputeLoanTerms(req.Amount, s.interestRate, s.exchangeRate)
		if c.TotalDebt+terms.TotalRepayNative > c.CreditLimit {
			return apperror.CreditLimitExceeded()
		}

		loan := domain.Loan{
			ID:               s.ids.LoanID(),
			CustomerID:       c.ID,
			AmountPrincipal:  req.Amount,
			AmountInterest:   terms.Interest,
			TotalRepayNative: terms.TotalRepayNative,
			TotalRepayFiat:   terms.TotalRepayFiat,
			Duration:         req.Duration,
			DueDate:          now.AddDate(0, 0, req.Duration),
			Status:           domain.LoanStatusActive,
			CreatedAt:        now,
		}

		c.Balance += req.Amount
		c.TotalDebt += terms.TotalRepayNative
		led.Loans = append(led.Loans, loan)
		domain.EvaluateStatus(c, led.Loans, now)

		out = ports.ApplyLoanResult{Loan: loan, NewBalance: c.Balance, Status: c.Status}
		return nil
	})
	if err != nil {
		return nil, wrapErr(err)
	}

	s.log.Info().
		Str("loan_id", out.Loan.ID).
		Str("customer_id", req.CustomerID).
		Int64("principal", req.Amount).
		Int64("total_repay", out.Loan.TotalRepayNative).
		Msg("loan issued")

	return &out, nil
}

// RepayLoan settles an ACTIVE loan in full. Balance is decremented
// unconditionally and may go negative; debt never goes below zero.
func (s *CreditServiceImpl) RepayLoan(ctx context.Context, req ports.RepayLoanRequest) (*ports.RepayLoanResult, error) {
	if req.CustomerID == "" || req.LoanID == "" {
		return nil, apperror.InvalidInput("Customer ID and loan ID are required")
	}

	var out ports.RepayLoanResult
	err := s.session.Update(ctx, func(led *domain.Ledger) error {
		loan := led.LoanByID(req.LoanID)
		if loan == nil {
			return apperror.NotFound("Loan")
		}
		if !loan.IsActive() {
			return apperror.AlreadyPaid("Loan")
		}

		c := led.CustomerByID(req.CustomerID)
		if c == nil {
			return apperror.NotFound("Customer")
		}
		if loan.CustomerID != c.ID {
			return apperror.NotFound("Loan")
		}

		if len(req.CardDetails) < minCardDetailsLen {
			return apperror.InvalidInput("Invalid card details")
		}

		now := s.clock.Now()
		loan.Status = domain.LoanStatusPaid
		loan.PaidAt = &now

		c.Balance -= loan.TotalRepayNative
		c.TotalDebt -= loan.TotalRepayNative
		if c.TotalDebt < 0 {
			c.TotalDebt = 0
		}
		if c.TotalDebt == 0 {
			c.LastRepaymentDate = &now
		}
		domain.EvaluateStatus(c, led.Loans, now)

		out = ports.RepayLoanResult{Message: "Loan repaid successfully", Loan: *loan}
		return nil
	})
	if err != nil {
		return nil, wrapErr(err)
	}

	s.log.Info().
		Str("loan_id", req.LoanID).
		Str("customer_id", req.CustomerID).
		Int64("amount", out.Loan.TotalRepayNative).
		Msg("loan repaid")

	return &out, nil
}
