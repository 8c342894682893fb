package models

import (
	"time"
)

// Transaction kinds
const (
	TransactionKindCredit = "credit"
	TransactionKindDebit  = "debit"
)

// Transaction is one committed ledger movement. Rows are append-only:
// nothing in the service updates or deletes them.
type Transaction struct {
	ID          uint      `gorm:"primarykey"`
	Reference   string    `gorm:"uniqueIndex;not null"` // opaque external id (UUID)
	AccountID   int64     `gorm:"index;not null"`
	Value       int64     `gorm:"not null"` // positive magnitude; direction lives in Kind
	Kind        string    `gorm:"not null"`
	Description string    `gorm:"size:10;not null"`
	CommittedAt time.Time `gorm:"index;not null"`
}
