package service

import (
	"errors"
	"fmt"

	"github.com/vmaciel/branchbank/internal/models"
)

// ServiceError represents a business logic error with a code the driver can
// dispatch on.
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidAmount           = "invalid_amount"
	ErrCodeInvalidTaxID            = "invalid_tax_id"
	ErrCodeInvalidBirthDate        = "invalid_birth_date"
	ErrCodeInsufficientFunds       = "insufficient_funds"
	ErrCodeWithdrawalCountExceeded = "withdrawal_count_exceeded"
	ErrCodeWithdrawalLimitExceeded = "withdrawal_limit_exceeded"
	ErrCodeDailyQuotaExceeded      = "daily_quota_exceeded"
	ErrCodeClientNotFound          = "client_not_found"
	ErrCodeDuplicateClient         = "duplicate_client"
	ErrCodeAccountNotFound         = "account_not_found"
	ErrCodeInternalError           = "internal_error"
)

// wrapDomain maps a domain error onto its service error code, keeping the
// original error reachable through errors.Is.
func wrapDomain(err error) *ServiceError {
	code := ErrCodeInternalError
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		code = ErrCodeInvalidAmount
	case errors.Is(err, models.ErrInsufficientFunds):
		code = ErrCodeInsufficientFunds
	case errors.Is(err, models.ErrWithdrawalCountExceeded):
		code = ErrCodeWithdrawalCountExceeded
	case errors.Is(err, models.ErrWithdrawalLimitExceeded):
		code = ErrCodeWithdrawalLimitExceeded
	case errors.Is(err, models.ErrDailyQuotaExceeded):
		code = ErrCodeDailyQuotaExceeded
	case errors.Is(err, models.ErrClientNotFound):
		code = ErrCodeClientNotFound
	case errors.Is(err, models.ErrDuplicateClient):
		code = ErrCodeDuplicateClient
	case errors.Is(err, models.ErrAccountNotFound):
		code = ErrCodeAccountNotFound
	}
	return &ServiceError{
		Code:    code,
		Message: err.Error(),
		Err:     err,
	}
}

func internalError(format string, args ...any) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: fmt.Sprintf(format, args...),
	}
}
