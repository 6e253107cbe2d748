package service

import (
	"context"

	"qubic-pay/internal/core/domain"
	"qubic-pay/internal/core/ports"
	"qubic-pay/pkg/apperror"

	"github.com/rs/zerolog"
)

// HistoryServiceImpl implements ports.HistoryService.
type HistoryServiceImpl struct {
	session ports.LedgerSession
	log     zerolog.Logger
}

// NewHistoryService creates a new HistoryServiceImpl.
func NewHistoryService(session ports.LedgerSession, log zerolog.Logger) *HistoryServiceImpl {
	return &HistoryServiceImpl{session: session, log: log}
}

// GetHistory returns the customer's merged activity feed, newest first.
// An unknown customer yields an empty feed, matching the read-only nature
// of the call.
func (s *HistoryServiceImpl) GetHistory(ctx context.Context, customerID string) ([]domain.HistoryEvent, error) {
	if customerID == "" {
		return nil, apperror.InvalidInput("Customer ID is required")
	}

	var out []domain.HistoryEvent
	err := s.session.View(ctx, func(led *domain.Ledger) error {
		out = led.History(customerID)
		return nil
	})
	if err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}
