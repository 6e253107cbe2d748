package service

import (
	"context"
	"strings"

	"qubic-pay/internal/core/domain"
	"qubic-pay/internal/core/ports"
	"qubic-pay/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccountServiceImpl implements ports.AccountService. Login is name-based
// identity lookup with creation on first use; there is no credential
// verification by design.
type AccountServiceImpl struct {
	session     ports.LedgerSession
	ids         ports.IDSource
	clock       ports.Clock
	signupBonus int64
	creditLimit int64
	log         zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl. signupBonus is the
// starting balance granted to new customers, creditLimit their fixed debt
// ceiling.
func NewAccountService(
	session ports.LedgerSession,
	ids ports.IDSource,
	clock ports.Clock,
	signupBonus int64,
	creditLimit int64,
	log zerolog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		session:     session,
		ids:         ids,
		clock:       clock,
		signupBonus: signupBonus,
		creditLimit: creditLimit,
		log:         log,
	}
}

// MerchantLogin finds a merchant by its exact name or creates one.
func (s *AccountServiceImpl) MerchantLogin(ctx context.Context, name string) (*domain.Merchant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.InvalidInput("Merchant name is required")
	}

	var out domain.Merchant
	err := s.session.Update(ctx, func(led *domain.Ledger) error {
		if m := led.MerchantByName(name); m != nil {
			out = *m
			return nil
		}

		m := domain.Merchant{
			ID:        s.ids.MerchantID(),
			Name:      name,
			CreatedAt: s.clock.Now(),
		}
		led.Merchants = append(led.Merchants, m)
		out = m

		s.log.Info().Str("merchant_id", m.ID).Str("name", name).Msg("merchant created")
		return nil
	})
	if err != nil {
		return nil, wrapErr(err)
	}
	return &out, nil
}

// CustomerLogin finds a customer by name (case-insensitive) or signs one
// up with the starting bonus. The account status is re-evaluated on every
// login so an overdue loan freezes the account the moment it is seen.
func (s *AccountServiceImpl) CustomerLogin(ctx context.Context, name string) (*domain.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.InvalidInput("Name is required")
	}

	var out domain.Customer
	err := s.session.Update(ctx, func(led *domain.Ledger) error {
		c := led.CustomerByName(name)
		if c == nil {
			led.Customers = append(led.Customers, domain.Customer{
				ID:            s.ids.CustomerID(),
				Name:          name,
				WalletAddress: s.ids.WalletAddress(),
				Balance:       s.signupBonus,
				CreditLimit:   s.creditLimit,
				Status:        domain.AccountStatusActive,
				CreatedAt:     s.clock.Now(),
			})
			c = &led.Customers[len(led.Customers)-1]
			s.log.Info().Str("customer_id", c.ID).Str("name", name).Msg("customer created")
		}

		domain.EvaluateStatus(c, led.Loans, s.clock.Now())
		out = *c
		return nil
	})
	if err != nil {
		return nil, wrapErr(err)
	}
	return &out, nil
}

// GetCustomer returns the customer's wallet with a freshly evaluated
// account status; the evaluation result is persisted.
func (s *AccountServiceImpl) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	var out domain.Customer
	err := s.session.Update(ctx, func(led *domain.Ledger) error {
		c := led.CustomerByID(id)
		if c == nil {
			return apperror.NotFound("Customer")
		}
		domain.EvaluateStatus(c, led.Loans, s.clock.Now())
		out = *c
		return nil
	})
	if err != nil {
		return nil, wrapErr(err)
	}
	return &out, nil
}
