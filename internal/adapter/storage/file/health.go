package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// HealthCheck implements ports.HealthChecker for the file backend.
type HealthCheck struct {
	path string
}

func NewHealthCheck(path string) *HealthCheck {
	return &HealthCheck{path: path}
}

// Ping verifies the document's directory exists. A missing document is
// healthy (first write creates it); a missing directory is not.
func (h *HealthCheck) Ping(_ context.Context) error {
	dir := filepath.Dir(h.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("ledger directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("ledger directory %s is not a directory", dir)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "file"
}
