// Package storage provides the single-writer guard that every engine
// operation goes through. The reference design read and rewrote the whole
// ledger document with no locking; the guard makes that discipline
// explicit so concurrent mutating calls are strictly ordered within one
// process. Lost updates across processes remain possible and are a
// documented limitation.
package storage

import (
	"context"
	"sync"

	"qubic-pay/internal/core/domain"
	"qubic-pay/internal/core/ports"
)

// Guard implements ports.LedgerSession over any ports.LedgerStore.
type Guard struct {
	mu    sync.RWMutex
	store ports.LedgerStore
}

// NewGuard creates a Guard serializing access to the given store.
func NewGuard(store ports.LedgerStore) *Guard {
	return &Guard{store: store}
}

// Update runs fn under the write lock as load -> mutate -> save. When fn
// returns an error the mutated document is discarded, never persisted:
// operations are all-or-nothing against the in-memory record.
func (g *Guard) Update(ctx context.Context, fn func(led *domain.Ledger) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	led, err := g.store.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(led); err != nil {
		return err
	}
	return g.store.Save(ctx, led)
}

// View runs fn over a consistent snapshot under the read lock. Readers
// may proceed concurrently; fn must not mutate the document.
func (g *Guard) View(ctx context.Context, fn func(led *domain.Ledger) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	led, err := g.store.Load(ctx)
	if err != nil {
		return err
	}
	return fn(led)
}
