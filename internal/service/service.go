// Package service implements the engine operations behind the core ports:
// account lookup, payment lifecycle, credit ledger and history. Every
// operation runs to completion inside one session call against the
// single-writer ledger store.
package service

import (
	"errors"

	"qubic-pay/pkg/apperror"
)

// wrapErr passes engine errors through untouched and wraps anything else
// (store I/O, codec) as an internal failure.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.InternalError(err)
}
