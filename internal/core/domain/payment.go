package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a payment request.
// PENDING -> PAID is the only transition; PAID is terminal.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// Assets accepted on payment requests.
var Assets = []string{"QUBIC", "USDT", "USDC"}

// ValidAsset reports whether the symbol belongs to the accepted set.
func ValidAsset(asset string) bool {
	for _, a := range Assets {
		if a == asset {
			return true
		}
	}
	return false
}

// Payment is a merchant-issued payment request.
type Payment struct {
	ID          string          `json:"id"`
	MerchantID  string          `json:"merchantId"`
	Amount      decimal.Decimal `json:"amount"`
	Asset       string          `json:"asset"`
	Description string          `json:"description"`
	Status      PaymentStatus   `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	PaidAt      *time.Time      `json:"paidAt"`
	PaidBy      string          `json:"paidBy,omitempty"`
	ReceiptID   string          `json:"receiptId,omitempty"`
}

// IsPaid reports whether the payment reached its terminal state.
func (p *Payment) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}

// EffectiveTime is the timestamp a payment sorts by: paidAt once settled,
// createdAt before that.
func (p *Payment) EffectiveTime() time.Time {
	if p.PaidAt != nil {
		return *p.PaidAt
	}
	return p.CreatedAt
}

// PublicPayment is the projection served on the shareable payment link:
// merchant name joined in, internal fields (receipt, payer) withheld.
type PublicPayment struct {
	ID           string          `json:"id"`
	MerchantName string          `json:"merchantName"`
	Amount       decimal.Decimal `json:"amount"`
	Asset        string          `json:"asset"`
	Description  string          `json:"description"`
	Status       PaymentStatus   `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	PaidAt       *time.Time      `json:"paidAt"`
}
