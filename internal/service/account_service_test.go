package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"qubic-pay/internal/core/domain"
	"qubic-pay/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountService(env *testEnv) *AccountServiceImpl {
	return NewAccountService(env.session, env.ids, env.clock, 1000, 5000, env.log)
}

func requireAppError(t *testing.T, err error, code string) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestMerchantLogin_CreatesOnFirstUse(t *testing.T) {
	env := newTestEnv()
	svc := newAccountService(env)

	m, err := svc.MerchantLogin(context.Background(), "Coffee Shop")
	require.NoError(t, err)
	assert.Equal(t, "merch-0001", m.ID)
	assert.Equal(t, "Coffee Shop", m.Name)
	assert.Equal(t, testTime, m.CreatedAt)

	led := env.snapshot()
	require.Len(t, led.Merchants, 1)
}

func TestMerchantLogin_ReturnsExistingByExactName(t *testing.T) {
	env := newTestEnv()
	svc := newAccountService(env)

	first, err := svc.MerchantLogin(context.Background(), "Coffee Shop")
	require.NoError(t, err)

	again, err := svc.MerchantLogin(context.Background(), "Coffee Shop")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	// Merchant matching is case-sensitive: a different casing is a
	// different merchant.
	other, err := svc.MerchantLogin(context.Background(), "coffee shop")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	led := env.snapshot()
	assert.Len(t, led.Merchants, 2)
}

func TestMerchantLogin_EmptyName(t *testing.T) {
	env := newTestEnv()
	svc := newAccountService(env)

	_, err := svc.MerchantLogin(context.Background(), "   ")
	requireAppError(t, err, "INVALID_INPUT")
}

func TestCustomerLogin_SignupGrantsBonus(t *testing.T) {
	env := newTestEnv()
	svc := newAccountService(env)

	c, err := svc.CustomerLogin(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "cust-0001", c.ID)
	assert.Equal(t, "QUBIC-0002", c.WalletAddress)
	assert.Equal(t, int64(1000), c.Balance)
	assert.Equal(t, int64(5000), c.CreditLimit)
	assert.Equal(t, int64(0), c.TotalDebt)
	assert.Equal(t, domain.AccountStatusActive, c.Status)
}

func TestCustomerLogin_CaseInsensitiveMatch(t *testing.T) {
	env := newTestEnv()
	svc := newAccountService(env)

	first, err := svc.CustomerLogin(context.Background(), "Alice")
	require.NoError(t, err)

	again, err := svc.CustomerLogin(context.Background(), "aLiCe")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	led := env.snapshot()
	assert.Len(t, led.Customers, 1)
}

func TestCustomerLogin_FreezesOnOverdueLoan(t *testing.T) {
	env := newTestEnv()
	svc := newAccountService(env)

	c, err := svc.CustomerLogin(context.Background(), "alice")
	require.NoError(t, err)

	env.seed(func(led *domain.Ledger) {
		led.Loans = append(led.Loans, domain.Loan{
			ID:               "LOAN-OVERDUE",
			CustomerID:       c.ID,
			AmountPrincipal:  500,
			TotalRepayNative: 525,
			DueDate:          testTime.Add(-24 * time.Hour),
			Status:           domain.LoanStatusActive,
			CreatedAt:        testTime.Add(-72 * time.Hour),
		})
		led.Customers[0].TotalDebt = 525
	})

	got, err := svc.CustomerLogin(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusFrozen, got.Status)

	// The freeze is persisted, not just reported.
	led := env.snapshot()
	assert.Equal(t, domain.AccountStatusFrozen, led.Customers[0].Status)
}

func TestGetCustomer_NotFound(t *testing.T) {
	env := newTestEnv()
	svc := newAccountService(env)

	_, err := svc.GetCustomer(context.Background(), "cust-missing")
	requireAppError(t, err, "NOT_FOUND")
}

func TestGetCustomer_ThawsAtZeroDebt(t *testing.T) {
	env := newTestEnv()
	svc := newAccountService(env)

	env.seed(func(led *domain.Ledger) {
		led.Customers = append(led.Customers, domain.Customer{
			ID:          "cust-frozen",
			Name:        "bob",
			Balance:     100,
			CreditLimit: 5000,
			TotalDebt:   0,
			Status:      domain.AccountStatusFrozen,
			CreatedAt:   testTime,
		})
	})

	c, err := svc.GetCustomer(context.Background(), "cust-frozen")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusActive, c.Status)

	led := env.snapshot()
	assert.Equal(t, domain.AccountStatusActive, led.Customers[0].Status)
}

func TestGetCustomer_StaysFrozenWithDebt(t *testing.T) {
	env := newTestEnv()
	svc := newAccountService(env)

	env.seed(func(led *domain.Ledger) {
		led.Customers = append(led.Customers, domain.Customer{
			ID:          "cust-frozen",
			Name:        "bob",
			Balance:     100,
			CreditLimit: 5000,
			TotalDebt:   300,
			Status:      domain.AccountStatusFrozen,
			CreatedAt:   testTime,
		})
	})

	c, err := svc.GetCustomer(context.Background(), "cust-frozen")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusFrozen, c.Status)
}
