// Package domain holds the persisted entities of the payment and credit
// ledger plus the pure rules that operate on them: payment-id sequencing,
// loan arithmetic, account-status evaluation and history projection.
package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Monetary amounts serialize as JSON numbers, matching the wire format
	// the collaborator already consumes.
	decimal.MarshalJSONWithoutQuotes = true
}

// Ledger is the whole persisted document: four keyed collections replaced
// atomically on every write.
type Ledger struct {
	Merchants []Merchant `json:"merchants"`
	Customers []Customer `json:"customers"`
	Payments  []Payment  `json:"payments"`
	Loans     []Loan     `json:"loans"`
}

// NewLedger returns an empty ledger with non-nil collections so the
// document shape stays stable across marshals.
func NewLedger() *Ledger {
	return &Ledger{
		Merchants: []Merchant{},
		Customers: []Customer{},
		Payments:  []Payment{},
		Loans:     []Loan{},
	}
}

// MerchantByID returns the merchant with the given id, or nil.
func (l *Ledger) MerchantByID(id string) *Merchant {
	for i := range l.Merchants {
		if l.Merchants[i].ID == id {
			return &l.Merchants[i]
		}
	}
	return nil
}

// MerchantByName looks a merchant up by its exact, case-sensitive name.
func (l *Ledger) MerchantByName(name string) *Merchant {
	for i := range l.Merchants {
		if l.Merchants[i].Name == name {
			return &l.Merchants[i]
		}
	}
	return nil
}

// CustomerByID returns the customer with the given id, or nil.
func (l *Ledger) CustomerByID(id string) *Customer {
	for i := range l.Customers {
		if l.Customers[i].ID == id {
			return &l.Customers[i]
		}
	}
	return nil
}

// CustomerByName looks a customer up by name, case-insensitively.
func (l *Ledger) CustomerByName(name string) *Customer {
	for i := range l.Customers {
		if strings.EqualFold(l.Customers[i].Name, name) {
			return &l.Customers[i]
		}
	}
	return nil
}

// PaymentByID returns the payment with the given id, or nil.
func (l *Ledger) PaymentByID(id string) *Payment {
	for i := range l.Payments {
		if l.Payments[i].ID == id {
			return &l.Payments[i]
		}
	}
	return nil
}

// LoanByID returns the loan with the given id, or nil.
func (l *Ledger) LoanByID(id string) *Loan {
	for i := range l.Loans {
		if l.Loans[i].ID == id {
			return &l.Loans[i]
		}
	}
	return nil
}

// NextPaymentID allocates the next sequential payment id for a year:
// P-<year>-<seq> with the sequence zero-padded to four digits. The
// sequence is the count of existing ids carrying this year's prefix plus
// one. Two writers computing the sequence in the same instant would
// collide; the store's single-writer guard serializes them within one
// process, and the cross-process race is an accepted limitation of the
// deployment model.
func (l *Ledger) NextPaymentID(year int) string {
	prefix := fmt.Sprintf("P-%d-", year)
	count := 0
	for i := range l.Payments {
		if strings.HasPrefix(l.Payments[i].ID, prefix) {
			count++
		}
	}
	return fmt.Sprintf("%s%04d", prefix, count+1)
}

// ActiveDebt sums totalRepayNative over the customer's ACTIVE loans.
// The customer's totalDebt field must always equal this sum.
func (l *Ledger) ActiveDebt(customerID string) int64 {
	var sum int64
	for i := range l.Loans {
		ln := &l.Loans[i]
		if ln.CustomerID == customerID && ln.Status == LoanStatusActive {
			sum += ln.TotalRepayNative
		}
	}
	return sum
}
