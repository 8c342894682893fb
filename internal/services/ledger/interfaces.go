package ledger

import "context"

// Service defines the main ledger service interface
type Service interface {
	// Apply validates candidate and, holding the account lock, atomically
	// records it and moves the balance. All effects are confined to the
	// storage layer.
	Apply(ctx context.Context, accountID int64, candidate TransactionRequest) (*Balance, error)

	// Statement returns the current balance with the most recent
	// transactions, newest first. Plain read; does not take the account
	// lock.
	Statement(ctx context.Context, accountID int64) (*Statement, error)
}
