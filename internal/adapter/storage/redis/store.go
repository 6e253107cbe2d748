// Package redis persists the ledger document under a single Redis key,
// replaced wholesale on every write.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"qubic-pay/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const ledgerKey = "qubicpay:ledger"

// Store implements ports.LedgerStore on a Redis string key.
type Store struct {
	client *goredis.Client
}

// NewStore creates a Redis-backed ledger store.
func NewStore(client *goredis.Client) *Store {
	return &Store{client: client}
}

// Load fetches and decodes the document. A missing key loads as an empty
// ledger.
func (s *Store) Load(ctx context.Context) (*domain.Ledger, error) {
	data, err := s.client.Get(ctx, ledgerKey).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return domain.NewLedger(), nil
		}
		return nil, fmt.Errorf("redis ledger get: %w", err)
	}

	led := domain.NewLedger()
	if err := json.Unmarshal(data, led); err != nil {
		return nil, fmt.Errorf("decode ledger document: %w", err)
	}
	return led, nil
}

// Save replaces the document. No TTL: the ledger is durable state, not a
// cache.
func (s *Store) Save(ctx context.Context, led *domain.Ledger) error {
	data, err := json.Marshal(led)
	if err != nil {
		return fmt.Errorf("encode ledger document: %w", err)
	}
	if err := s.client.Set(ctx, ledgerKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis ledger set: %w", err)
	}
	return nil
}
