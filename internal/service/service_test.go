package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"qubic-pay/internal/adapter/storage"
	"qubic-pay/internal/core/domain"
	"qubic-pay/internal/core/ports"

	"github.com/rs/zerolog"
)

// memStore is an in-memory ports.LedgerStore. Load returns a deep copy so
// discarded Update mutations can never leak into the stored document.
type memStore struct {
	led *domain.Ledger
}

func newMemStore() *memStore {
	return &memStore{led: domain.NewLedger()}
}

func (s *memStore) Load(_ context.Context) (*domain.Ledger, error) {
	raw, err := json.Marshal(s.led)
	if err != nil {
		return nil, err
	}
	cp := domain.NewLedger()
	if err := json.Unmarshal(raw, cp); err != nil {
		return nil, err
	}
	return cp, nil
}

func (s *memStore) Save(_ context.Context, led *domain.Ledger) error {
	s.led = led
	return nil
}

// stubIDs mints deterministic sequential identifiers.
type stubIDs struct {
	n int
}

func (s *stubIDs) next(prefix string) string {
	s.n++
	return fmt.Sprintf("%s-%04d", prefix, s.n)
}

func (s *stubIDs) MerchantID() string    { return s.next("merch") }
func (s *stubIDs) CustomerID() string    { return s.next("cust") }
func (s *stubIDs) WalletAddress() string { return s.next("QUBIC") }
func (s *stubIDs) LoanID() string        { return s.next("LOAN") }
func (s *stubIDs) ReceiptID() string     { return s.next("receipt") }

// stubClock pins Now to a fixed instant.
type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

var testTime = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	store   *memStore
	session ports.LedgerSession
	ids     *stubIDs
	clock   *stubClock
	log     zerolog.Logger
}

func newTestEnv() *testEnv {
	store := newMemStore()
	return &testEnv{
		store:   store,
		session: storage.NewGuard(store),
		ids:     &stubIDs{},
		clock:   &stubClock{now: testTime},
		log:     zerolog.Nop(),
	}
}

// seed applies fn directly to the stored document.
func (e *testEnv) seed(fn func(led *domain.Ledger)) {
	fn(e.store.led)
}

// snapshot returns the currently persisted document.
func (e *testEnv) snapshot() *domain.Ledger {
	led, err := e.store.Load(context.Background())
	if err != nil {
		panic(err)
	}
	return led
}
