// Package file persists the ledger document as a single JSON file,
// mirroring the reference deployment's database.json.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"qubic-pay/internal/core/domain"
)

// Store implements ports.LedgerStore on a JSON file.
type Store struct {
	path string
}

// NewStore creates a file-backed store. The file is created lazily on the
// first Save; a missing file loads as an empty ledger.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads and decodes the whole document.
func (s *Store) Load(_ context.Context) (*domain.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewLedger(), nil
		}
		return nil, fmt.Errorf("read ledger file: %w", err)
	}

	led := domain.NewLedger()
	if err := json.Unmarshal(data, led); err != nil {
		return nil, fmt.Errorf("decode ledger file: %w", err)
	}
	return led, nil
}

// Save replaces the whole document. The write goes to a temp file in the
// same directory followed by a rename, so a crash mid-write cannot leave
// a truncated document behind.
func (s *Store) Save(_ context.Context, led *domain.Ledger) error {
	data, err := json.MarshalIndent(led, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close ledger file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace ledger file: %w", err)
	}
	return nil
}
