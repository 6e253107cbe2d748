package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"qubic-pay/internal/core/domain"
	"qubic-pay/internal/core/ports"
	"qubic-pay/internal/core/ports/mocks"
	"qubic-pay/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServices struct {
	account *mocks.MockAccountService
	payment *mocks.MockPaymentService
	credit  *mocks.MockCreditService
	history *mocks.MockHistoryService
}

func newTestRouter(t *testing.T, checkers ...ports.HealthChecker) (*gin.Engine, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	svcs := &testServices{
		account: mocks.NewMockAccountService(ctrl),
		payment: mocks.NewMockPaymentService(ctrl),
		credit:  mocks.NewMockCreditService(ctrl),
		history: mocks.NewMockHistoryService(ctrl),
	}
	router := SetupRouter(RouterDeps{
		AccountSvc:     svcs.account,
		PaymentSvc:     svcs.payment,
		CreditSvc:      svcs.credit,
		HistorySvc:     svcs.history,
		HealthCheckers: checkers,
		Logger:         zerolog.Nop(),
	})
	return router, svcs
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestMerchantLogin_Success(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.account.EXPECT().MerchantLogin(gomock.Any(), "Coffee Shop").Return(&domain.Merchant{
		ID:   "merch-1",
		Name: "Coffee Shop",
	}, nil)

	w := doJSON(router, http.MethodPost, "/login", gin.H{"merchantName": "Coffee Shop"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "merch-1", resp["id"])
	assert.Equal(t, "Coffee Shop", resp["name"])
}

func TestMerchantLogin_TrimsName(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.account.EXPECT().MerchantLogin(gomock.Any(), "Coffee Shop").Return(&domain.Merchant{ID: "merch-1", Name: "Coffee Shop"}, nil)

	w := doJSON(router, http.MethodPost, "/login", gin.H{"merchantName": "  Coffee Shop  "})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMerchantLogin_MalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_INPUT", resp["error_code"])
}

func TestCustomerLogin_Success(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.account.EXPECT().CustomerLogin(gomock.Any(), "alice").Return(&domain.Customer{
		ID:      "cust-1",
		Name:    "alice",
		Balance: 1000,
		Status:  domain.AccountStatusActive,
	}, nil)

	w := doJSON(router, http.MethodPost, "/customer/login", gin.H{"name": "alice"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cust-1", resp["id"])
	assert.Equal(t, float64(1000), resp["balance"])
	assert.Equal(t, "ACTIVE", resp["status"])
}

func TestCustomerLogin_ServiceError(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.account.EXPECT().CustomerLogin(gomock.Any(), gomock.Any()).Return(nil, apperror.InvalidInput("Name is required"))

	w := doJSON(router, http.MethodPost, "/customer/login", gin.H{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_INPUT", resp["error_code"])
	assert.Equal(t, "Name is required", resp["message"])
}

// --- Payments ---

func TestCreatePayment_Success(t *testing.T) {
	router, svcs := newTestRouter(t)

	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svcs.payment.EXPECT().CreatePayment(gomock.Any(), ports.CreatePaymentRequest{
		MerchantID:  "merch-1",
		Amount:      decimal.NewFromFloat(49.99),
		Asset:       "USDT",
		Description: "latte",
	}).Return(&ports.CreatePaymentResult{
		Payment: domain.Payment{
			ID:         "P-2025-0001",
			MerchantID: "merch-1",
			Amount:     decimal.NewFromFloat(49.99),
			Asset:      "USDT",
			Status:     domain.PaymentStatusPending,
			CreatedAt:  created,
		},
		PaymentLink: "http://localhost:5173/pay/P-2025-0001",
	}, nil)

	w := doJSON(router, http.MethodPost, "/payments", gin.H{
		"merchantId":  "merch-1",
		"amount":      49.99,
		"asset":       "USDT",
		"description": "latte",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "P-2025-0001", resp["id"])
	assert.Equal(t, "PENDING", resp["status"])
	assert.Equal(t, float64(49.99), resp["amount"])
	assert.Equal(t, "http://localhost:5173/pay/P-2025-0001", resp["paymentLink"])
	assert.Nil(t, resp["paidAt"])
}

func TestCreatePayment_UnsafeMerchantID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/payments", gin.H{
		"merchantId": "merch 1; drop",
		"amount":     10,
		"asset":      "USDT",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPayments_PassesMerchantQuery(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.payment.EXPECT().ListMerchantPayments(gomock.Any(), "merch-1").Return([]domain.Payment{
		{ID: "P-2025-0002", MerchantID: "merch-1", Amount: decimal.NewFromInt(20), Asset: "QUBIC", Status: domain.PaymentStatusPending},
		{ID: "P-2025-0001", MerchantID: "merch-1", Amount: decimal.NewFromInt(10), Asset: "USDT", Status: domain.PaymentStatusPaid},
	}, nil)

	w := doJSON(router, http.MethodGet, "/payments?merchantId=merch-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "P-2025-0002", resp[0]["id"])
}

func TestGetPublicPayment_NotFound(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.payment.EXPECT().GetPublicPayment(gomock.Any(), "P-2025-9999").Return(nil, apperror.NotFound("Payment"))

	w := doJSON(router, http.MethodGet, "/payments/P-2025-9999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp["error_code"])
	assert.Equal(t, "Payment not found", resp["message"])
}

func TestPayPayment_WithPayer(t *testing.T) {
	router, svcs := newTestRouter(t)

	paidAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svcs.payment.EXPECT().PayPayment(gomock.Any(), "P-2025-0001", "cust-1").Return(&ports.PayPaymentResult{
		ID:     "P-2025-0001",
		Status: domain.PaymentStatusPaid,
		PaidAt: paidAt,
	}, nil)

	w := doJSON(router, http.MethodPost, "/payments/P-2025-0001/pay", gin.H{"customerId": "cust-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PAID", resp["status"])
}

func TestPayPayment_NoBodyIsAnonymous(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.payment.EXPECT().PayPayment(gomock.Any(), "P-2025-0001", "").Return(&ports.PayPaymentResult{
		ID:     "P-2025-0001",
		Status: domain.PaymentStatusPaid,
		PaidAt: time.Now(),
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/payments/P-2025-0001/pay", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPayPayment_AlreadyPaid(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.payment.EXPECT().PayPayment(gomock.Any(), "P-2025-0001", "").Return(nil, apperror.AlreadyPaid("Payment"))

	w := doJSON(router, http.MethodPost, "/payments/P-2025-0001/pay", gin.H{})

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ALREADY_PAID", resp["error_code"])
}

// --- Customer ---

func TestGetWallet_Success(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.account.EXPECT().GetCustomer(gomock.Any(), "cust-1").Return(&domain.Customer{
		ID:          "cust-1",
		Name:        "alice",
		Balance:     1500,
		CreditLimit: 5000,
		TotalDebt:   525,
		Status:      domain.AccountStatusActive,
	}, nil)

	w := doJSON(router, http.MethodGet, "/customer/cust-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1500), resp["balance"])
	assert.Equal(t, float64(525), resp["totalDebt"])
}

func TestGetHistory_Success(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.history.EXPECT().GetHistory(gomock.Any(), "cust-1").Return([]domain.HistoryEvent{
		{ID: "REPAY-LOAN-AAAA1111", Type: domain.HistoryEventRepayment, Amount: decimal.NewFromInt(525), Status: "PAID", Timestamp: time.Now()},
		{ID: "LOAN-AAAA1111", Type: domain.HistoryEventLoan, Amount: decimal.NewFromInt(500), Status: "PAID", Timestamp: time.Now().Add(-time.Hour)},
	}, nil)

	w := doJSON(router, http.MethodGet, "/customer/cust-1/history", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "REPAYMENT", resp[0]["type"])
}

// --- Loans ---

func TestApplyLoan_Success(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.credit.EXPECT().ApplyForLoan(gomock.Any(), ports.ApplyLoanRequest{
		CustomerID: "cust-1",
		Amount:     500,
		Duration:   30,
	}).Return(&ports.ApplyLoanResult{
		Loan: domain.Loan{
			ID:               "LOAN-AAAA1111",
			CustomerID:       "cust-1",
			AmountPrincipal:  500,
			AmountInterest:   25,
			TotalRepayNative: 525,
			TotalRepayFiat:   "52.50",
			Status:           domain.LoanStatusActive,
		},
		NewBalance: 1500,
		Status:     domain.AccountStatusActive,
	}, nil)

	w := doJSON(router, http.MethodPost, "/loans/apply", gin.H{
		"customerId": "cust-1",
		"amount":     500,
		"duration":   30,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	loan := resp["loan"].(map[string]interface{})
	assert.Equal(t, "LOAN-AAAA1111", loan["id"])
	assert.Equal(t, "52.50", loan["totalRepayFiat"])
	assert.Equal(t, float64(1500), resp["newBalance"])
}

func TestApplyLoan_Frozen(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.credit.EXPECT().ApplyForLoan(gomock.Any(), gomock.Any()).Return(nil, apperror.AccountFrozen())

	w := doJSON(router, http.MethodPost, "/loans/apply", gin.H{
		"customerId": "cust-1",
		"amount":     500,
		"duration":   30,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACCOUNT_FROZEN", resp["error_code"])
}

func TestApplyLoan_OverLimit(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.credit.EXPECT().ApplyForLoan(gomock.Any(), gomock.Any()).Return(nil, apperror.CreditLimitExceeded())

	w := doJSON(router, http.MethodPost, "/loans/apply", gin.H{
		"customerId": "cust-1",
		"amount":     4800,
		"duration":   30,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRepayLoan_Success(t *testing.T) {
	router, svcs := newTestRouter(t)

	svcs.credit.EXPECT().RepayLoan(gomock.Any(), ports.RepayLoanRequest{
		CustomerID:  "cust-1",
		LoanID:      "LOAN-AAAA1111",
		CardDetails: "4242424242424242",
	}).Return(&ports.RepayLoanResult{
		Message: "Loan repaid successfully",
		Loan:    domain.Loan{ID: "LOAN-AAAA1111", Status: domain.LoanStatusPaid},
	}, nil)

	w := doJSON(router, http.MethodPost, "/loans/repay", gin.H{
		"customerId":  "cust-1",
		"loanId":      "LOAN-AAAA1111",
		"cardDetails": "4242424242424242",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Loan repaid successfully", resp["message"])
}

// --- Health ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func TestHealthCheck_Healthy(t *testing.T) {
	router, _ := newTestRouter(t, stubChecker{name: "file"})

	w := doJSON(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	router, _ := newTestRouter(t, stubChecker{name: "postgres", err: errors.New("connection refused")})

	w := doJSON(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
}
