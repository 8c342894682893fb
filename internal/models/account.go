package models

import (
	"time"
)

// Account is a ledger account. Accounts are provisioned externally (see
// cmd/seed); the service only ever mutates Balance.
//
// Limit is the overdraft ceiling expressed as a non-negative magnitude:
// Balance may go negative down to -Limit but never below it. Both fields
// are integer cents.
type Account struct {
	ID        int64 `gorm:"primarykey"`
	Limit     int64 `gorm:"column:credit_limit;not null"`
	Balance   int64 `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
