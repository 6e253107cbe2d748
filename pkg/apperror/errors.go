package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Error taxonomy of the ledger engine. Every engine operation fails with
// exactly one of these kinds; messages are shown to the caller verbatim.

// NotFound signals that a referenced entity does not exist.
func NotFound(entity string) *AppError {
	return New("NOT_FOUND", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// InvalidInput signals a missing or malformed required field.
func InvalidInput(message string) *AppError {
	return New("INVALID_INPUT", message, http.StatusBadRequest)
}

// AlreadyPaid signals an attempt to re-run a terminal PAID transition.
func AlreadyPaid(entity string) *AppError {
	return New("ALREADY_PAID", fmt.Sprintf("%s already paid", entity), http.StatusConflict)
}

// AccountFrozen signals a credit action blocked by an overdue-debt freeze.
func AccountFrozen() *AppError {
	return New("ACCOUNT_FROZEN", "Account frozen. Please repay outstanding debt to unlock.", http.StatusForbidden)
}

// CreditLimitExceeded signals a loan application over the debt ceiling.
func CreditLimitExceeded() *AppError {
	return New("CREDIT_LIMIT_EXCEEDED", "Credit limit exceeded.", http.StatusUnprocessableEntity)
}

// InternalError wraps an unexpected failure (store I/O, codec).
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
