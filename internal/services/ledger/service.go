package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crebito/internal/models"
	"crebito/internal/repositories"

	"github.com/google/uuid"
)

type service struct {
	repo    repositories.AccountRepository
	cache   repositories.CacheRepository
	config  Config
	metrics MetricsCollector
}

// NewService creates a new ledger service
func NewService(
	repo repositories.AccountRepository,
	cache repositories.CacheRepository,
	config Config,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}

	// Set default configuration values if not provided
	if config.LockWait == 0 {
		config.LockWait = DefaultLockWait
	}
	if config.StatementLimit == 0 {
		config.StatementLimit = DefaultStatementLimit
	}
	if config.StatementCacheTTL == 0 {
		config.StatementCacheTTL = DefaultCacheDuration
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:    repo,
		cache:   cache,
		config:  config,
		metrics: metrics,
	}
}

// Apply is the single state transition of the system. It either commits the
// transaction record together with the new balance, or leaves the account and
// its history untouched.
func (s *service) Apply(ctx context.Context, accountID int64, candidate TransactionRequest) (*Balance, error) {
	started := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration("apply", time.Since(started))
	}()

	if err := validateCandidate(candidate); err != nil {
		s.metrics.RecordError("apply", err.Error())
		return nil, err
	}

	var result Balance
	err := s.repo.ExecuteInTransaction(ctx, func(tx repositories.AccountRepository) error {
		// Serialize with every other mutation of this account, across
		// processes. The lock lives until the enclosing transaction
		// ends, so no release is needed on any path below.
		if err := tx.LockAccount(ctx, accountID, s.config.LockWait); err != nil {
			if errors.Is(err, repositories.ErrLockNotAvailable) {
				return ErrLockTimeout
			}
			return fmt.Errorf("failed to acquire account lock: %w", err)
		}

		account, err := tx.GetByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to read account: %w", err)
		}

		delta := candidate.Value
		if candidate.Kind == models.TransactionKindDebit {
			delta = -delta
		}
		newBalance := account.Balance + delta

		if newBalance < -account.Limit {
			return ErrInsufficientFunds
		}

		txn := &models.Transaction{
			Reference:   uuid.NewString(),
			AccountID:   accountID,
			Value:       candidate.Value,
			Kind:        candidate.Kind,
			Description: candidate.Description,
			CommittedAt: time.Now().UTC(),
		}
		if err := tx.CreateTransaction(ctx, txn); err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}
		if err := tx.UpdateBalance(ctx, accountID, newBalance); err != nil {
			return fmt.Errorf("failed to update balance: %w", err)
		}

		s.metrics.RecordBalanceChange(accountID, account.Balance, newBalance)
		result = Balance{Limit: account.Limit, Balance: newBalance}
		return nil
	})
	if err != nil {
		s.metrics.RecordError("apply", classify(err))
		return nil, err
	}

	s.invalidateStatementCache(ctx, accountID)
	s.metrics.RecordTransaction(candidate.Kind, candidate.Value)

	return &result, nil
}

func (s *service) Statement(ctx context.Context, accountID int64) (*Statement, error) {
	cacheKey := fmt.Sprintf("%s%d", StatementCachePrefix, accountID)

	var cached Statement
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to read account: %w", err)
	}

	txns, err := s.repo.RecentTransactions(ctx, accountID, s.config.StatementLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction history: %w", err)
	}

	statement := &Statement{
		Balance: StatementBalance{
			Total:     account.Balance,
			Limit:     account.Limit,
			Timestamp: time.Now().UTC(),
		},
		RecentTransactions: make([]StatementEntry, 0, len(txns)),
	}
	for _, txn := range txns {
		statement.RecentTransactions = append(statement.RecentTransactions, StatementEntry{
			Value:       txn.Value,
			Kind:        txn.Kind,
			Description: txn.Description,
			CommittedAt: txn.CommittedAt,
		})
	}

	if err := s.cache.Set(ctx, cacheKey, statement, s.config.StatementCacheTTL); err != nil {
		// Cache failures must not fail the read
		s.metrics.RecordError("statement", "cache_set")
	}

	return statement, nil
}

// validateCandidate enforces the input preconditions. The fractional-value
// case is rejected where untrusted JSON is parsed (see handlers); Value > 0
// is re-checked here since callers other than the HTTP layer exist in tests.
func validateCandidate(candidate TransactionRequest) error {
	if candidate.Kind != models.TransactionKindCredit && candidate.Kind != models.TransactionKindDebit {
		return ErrInvalidTransactionKind
	}
	if len(candidate.Description) < MinDescriptionLen || len(candidate.Description) > MaxDescriptionLen {
		return ErrInvalidDescription
	}
	if candidate.Value <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (s *service) invalidateStatementCache(ctx context.Context, accountID int64) {
	key := fmt.Sprintf("%s%d", StatementCachePrefix, accountID)
	if err := s.cache.Delete(ctx, key); err != nil {
		s.metrics.RecordError("apply", "cache_invalidate")
	}
}

func classify(err error) string {
	switch {
	case errors.Is(err, ErrLockTimeout):
		return "lock_timeout"
	case errors.Is(err, ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	default:
		return "internal"
	}
}
