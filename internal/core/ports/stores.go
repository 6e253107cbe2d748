package ports

import (
	"context"
	"time"

	"qubic-pay/internal/core/domain"
)

// LedgerStore persists the whole ledger document. Load returns an empty
// ledger when no document exists yet; Save replaces the document
// atomically. Backends: JSON file, Redis key, Postgres jsonb row.
type LedgerStore interface {
	Load(ctx context.Context) (*domain.Ledger, error)
	Save(ctx context.Context, led *domain.Ledger) error
}

// LedgerSession serializes access to the ledger document. Update runs fn
// under the single-writer lock as load -> mutate -> save; when fn errors
// nothing is persisted. View runs fn read-only over a consistent snapshot
// and may proceed concurrently with other readers.
type LedgerSession interface {
	Update(ctx context.Context, fn func(led *domain.Ledger) error) error
	View(ctx context.Context, fn func(led *domain.Ledger) error) error
}

// Clock supplies the current time so freeze and due-date rules are
// testable with a pinned instant.
type Clock interface {
	Now() time.Time
}

// IDSource mints the engine's random identifiers. Payment ids are NOT
// produced here: their year-scoped sequence is ledger state
// (domain.Ledger.NextPaymentID). Isolating the random ids lets tests
// inject deterministic values.
type IDSource interface {
	MerchantID() string  // uuid
	CustomerID() string  // cust-<8hex>
	WalletAddress() string // QUBIC-<8HEX>
	LoanID() string      // LOAN-<8HEX>
	ReceiptID() string   // 64 hex chars, crypto-random
}
