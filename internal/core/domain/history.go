package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEventType tags the origin of an activity-feed entry.
type HistoryEventType string

const (
	HistoryEventPayment   HistoryEventType = "PAYMENT"
	HistoryEventLoan      HistoryEventType = "LOAN"
	HistoryEventRepayment HistoryEventType = "REPAYMENT"
)

// HistoryEvent is a derived view-model record; it is never persisted.
type HistoryEvent struct {
	ID          string           `json:"id"`
	Type        HistoryEventType `json:"type"`
	Amount      decimal.Decimal  `json:"amount"`
	Status      string           `json:"status"`
	Description string           `json:"description,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
}

// History merges the customer's settled payments, loan draws and loan
// repayments into one feed sorted newest first. Each PAID loan yields two
// entries: the draw (principal, at creation time) and a synthetic
// REPAY-<id> settlement (full native repayment, at paidAt). The sort runs
// over the filtered record set only.
func (l *Ledger) History(customerID string) []HistoryEvent {
	events := make([]HistoryEvent, 0)

	for i := range l.Payments {
		p := &l.Payments[i]
		if p.PaidBy != customerID {
			continue
		}
		events = append(events, HistoryEvent{
			ID:          p.ID,
			Type:        HistoryEventPayment,
			Amount:      p.Amount,
			Status:      string(p.Status),
			Description: p.Description,
			Timestamp:   p.EffectiveTime(),
		})
	}

	for i := range l.Loans {
		ln := &l.Loans[i]
		if ln.CustomerID != customerID {
			continue
		}
		events = append(events, HistoryEvent{
			ID:        ln.ID,
			Type:      HistoryEventLoan,
			Amount:    decimal.NewFromInt(ln.AmountPrincipal),
			Status:    string(ln.Status),
			Timestamp: ln.CreatedAt,
		})
		if ln.Status == LoanStatusPaid && ln.PaidAt != nil {
			events = append(events, HistoryEvent{
				ID:          "REPAY-" + ln.ID,
				Type:        HistoryEventRepayment,
				Amount:      decimal.NewFromInt(ln.TotalRepayNative),
				Status:      string(LoanStatusPaid),
				Description: "Loan Repayment",
				Timestamp:   *ln.PaidAt,
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events
}
