// Package postgres persists the ledger document as a single jsonb row,
// replaced wholesale on every write. The engine's single-writer model
// needs no relational decomposition; the row upsert keeps writes atomic.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"qubic-pay/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// Store implements ports.LedgerStore on a single-row table.
type Store struct {
	pool Pool
}

// NewStore creates a Postgres-backed ledger store.
func NewStore(pool Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the ledger table if it does not exist. Called once
// at startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS ledger (
		id smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		doc jsonb NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure ledger schema: %w", err)
	}
	return nil
}

// Load fetches and decodes the document. A missing row loads as an empty
// ledger.
func (s *Store) Load(ctx context.Context) (*domain.Ledger, error) {
	query := `SELECT doc FROM ledger WHERE id = 1`

	var data []byte
	err := s.pool.QueryRow(ctx, query).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewLedger(), nil
		}
		return nil, fmt.Errorf("select ledger document: %w", err)
	}

	led := domain.NewLedger()
	if err := json.Unmarshal(data, led); err != nil {
		return nil, fmt.Errorf("decode ledger document: %w", err)
	}
	return led, nil
}

// Save replaces the document via upsert.
func (s *Store) Save(ctx context.Context, led *domain.Ledger) error {
	data, err := json.Marshal(led)
	if err != nil {
		return fmt.Errorf("encode ledger document: %w", err)
	}

	query := `INSERT INTO ledger (id, doc) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`
	if _, err := s.pool.Exec(ctx, query, data); err != nil {
		return fmt.Errorf("upsert ledger document: %w", err)
	}
	return nil
}
