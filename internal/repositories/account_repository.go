package repositories

import (
	"context"
	"errors"
	"time"

	"crebito/internal/models"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrLockNotAvailable = errors.New("account lock not available")
)

// AccountRepository defines the interface for account-related database
// operations.
//
// LockAccount, UpdateBalance and CreateTransaction are only meaningful inside
// ExecuteInTransaction: the advisory lock taken by LockAccount is scoped to
// the enclosing database transaction and is released automatically when it
// commits or rolls back.
type AccountRepository interface {
	// Core account operations
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	LockAccount(ctx context.Context, id int64, maxWait time.Duration) error
	UpdateBalance(ctx context.Context, id int64, balance int64) error

	// Transaction record operations (append-only)
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	RecentTransactions(ctx context.Context, accountID int64, limit int) ([]models.Transaction, error)

	// ExecuteInTransaction runs fn inside a single database transaction;
	// fn receives a repository bound to that transaction.
	ExecuteInTransaction(ctx context.Context, fn func(AccountRepository) error) error
}
