package ledger

import "time"

// TransactionRequest is a candidate transaction as decoded by the API layer.
// Value is the positive magnitude in cents; the direction is carried by Kind.
type TransactionRequest struct {
	Value       int64  `json:"value"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// Balance is the committed state returned by a successful Apply.
type Balance struct {
	Limit   int64 `json:"limit"`
	Balance int64 `json:"balance"`
}

// Config holds configuration for ledger operations
type Config struct {
	// LockWait bounds how long Apply waits for the account lock before
	// giving up with ErrLockTimeout.
	LockWait time.Duration
	// StatementLimit is how many recent transactions a statement carries.
	StatementLimit int
	// StatementCacheTTL bounds the staleness of cached statements.
	StatementCacheTTL time.Duration
}

// StatementBalance is the balance section of a statement.
type StatementBalance struct {
	Total     int64     `json:"total"`
	Limit     int64     `json:"limit"`
	Timestamp time.Time `json:"timestamp"`
}

// StatementEntry is one transaction as reported in a statement.
type StatementEntry struct {
	Value       int64     `json:"value"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	CommittedAt time.Time `json:"committed_at"`
}

// Statement is the balance-as-of-now plus the most recent transactions,
// newest first.
type Statement struct {
	Balance            StatementBalance `json:"balance"`
	RecentTransactions []StatementEntry `json:"recent_transactions"`
}
