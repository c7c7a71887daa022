package models

import "errors"

// Domain errors returned by accounts, clients, and transactions. Business
// rule violations are reported as values, never panics, and a failed
// operation leaves balance and ledger untouched.
var (
	// ErrInvalidAmount indicates a non-positive deposit or withdrawal amount
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds indicates a withdrawal larger than the balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWithdrawalCountExceeded indicates the account reached its withdrawal count limit
	ErrWithdrawalCountExceeded = errors.New("withdrawal count limit reached")

	// ErrWithdrawalLimitExceeded indicates a withdrawal above the per-withdrawal amount limit
	ErrWithdrawalLimitExceeded = errors.New("withdrawal amount limit exceeded")

	// ErrDailyQuotaExceeded indicates the account already accepted the daily
	// transaction quota for the current calendar day
	ErrDailyQuotaExceeded = errors.New("daily transaction quota reached")

	// ErrClientNotFound indicates no client is registered under the given tax id
	ErrClientNotFound = errors.New("client not found")

	// ErrDuplicateClient indicates a tax id collision at registration
	ErrDuplicateClient = errors.New("client already registered")

	// ErrAccountNotFound indicates the client has no account to operate on
	ErrAccountNotFound = errors.New("account not found")
)
