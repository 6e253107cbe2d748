package domain

import "time"

// Merchant is a payment-request issuer. Merchants are immutable once
// created; the name is the login lookup key and is matched case-sensitively.
type Merchant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
