package ledger

import "errors"

// Service errors
var (
	// Client input errors; never retried
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrInvalidDescription     = errors.New("invalid description")
	ErrInvalidAmount          = errors.New("invalid amount")

	// Business-rule rejections
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Transient contention; safe to retry
	ErrLockTimeout = errors.New("timed out waiting for account lock")
)
