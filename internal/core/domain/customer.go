package domain

import "time"

// AccountStatus represents the credit standing of a customer account.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "ACTIVE"
	AccountStatusFrozen AccountStatus = "FROZEN"
)

// Customer holds a wallet balance and a running credit position. Balance
// is in whole native units and may go negative after a repayment; debt is
// tracked independently of spendable balance.
type Customer struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	WalletAddress     string        `json:"walletAddress"`
	Balance           int64         `json:"balance"`
	CreditLimit       int64         `json:"creditLimit"`
	TotalDebt         int64         `json:"totalDebt"`
	Status            AccountStatus `json:"status"`
	LastRepaymentDate *time.Time    `json:"lastRepaymentDate"`
	CreatedAt         time.Time     `json:"createdAt"`
}

// IsFrozen reports whether credit actions are currently blocked.
func (c *Customer) IsFrozen() bool {
	return c.Status == AccountStatusFrozen
}

// EvaluateStatus derives the account status from the customer's loans.
// Any ACTIVE loan past its due date freezes the account; a frozen account
// thaws only once totalDebt is zero. The overdue check runs strictly
// before the debt-zero check so the two rules cannot oscillate. Idempotent;
// call it after every mutation that touches debt or due dates.
func EvaluateStatus(c *Customer, loans []Loan, now time.Time) {
	for i := range loans {
		ln := &loans[i]
		if ln.CustomerID == c.ID && ln.Status == LoanStatusActive && now.After(ln.DueDate) {
			c.Status = AccountStatusFrozen
			return
		}
	}
	if c.Status == AccountStatusFrozen && c.TotalDebt == 0 {
		c.Status = AccountStatusActive
	}
}
