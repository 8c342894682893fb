package ledger

import "time"

// Validation bounds
const (
	MinDescriptionLen = 1
	MaxDescriptionLen = 10
)

// Default configuration values
const (
	DefaultLockWait       = 4 * time.Second
	DefaultStatementLimit = 10
)

// Cache keys and durations
const (
	StatementCachePrefix = "statement:"
	DefaultCacheDuration = 5 * time.Second
)
