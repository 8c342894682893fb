package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"crebito/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE raised by Postgres when lock_timeout expires while waiting
// on pg_advisory_xact_lock.
const lockNotAvailableCode = "55P03"

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// LockAccount takes pg_advisory_xact_lock(id), waiting at most maxWait. The
// lock key space is the account id itself, so two accounts never contend.
// There is no unlock: Postgres releases the lock when the enclosing
// transaction ends.
func (r *accountRepository) LockAccount(ctx context.Context, id int64, maxWait time.Duration) error {
	wait := strconv.FormatInt(maxWait.Milliseconds(), 10) + "ms"
	if err := r.db.WithContext(ctx).Exec("SELECT set_config('lock_timeout', ?, true)", wait).Error; err != nil {
		return fmt.Errorf("failed to set lock timeout: %w", err)
	}

	if err := r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", id).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == lockNotAvailableCode {
			return ErrLockNotAvailable
		}
		return fmt.Errorf("failed to lock account %d: %w", id, err)
	}
	return nil
}

func (r *accountRepository) UpdateBalance(ctx context.Context, id int64, balance int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Update("balance", balance)
	if result.Error != nil {
		return fmt.Errorf("failed to update balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *accountRepository) RecentTransactions(ctx context.Context, accountID int64, limit int) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("committed_at DESC").
		Limit(limit).
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return txns, nil
}

func (r *accountRepository) ExecuteInTransaction(ctx context.Context, fn func(AccountRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&accountRepository{db: tx})
	})
}
