/*
Package ledger implements the transaction-application core of the service.

The ledger service handles:
- Applying a single credit or debit to an account balance
- The overdraft invariant (balance never drops below -limit)
- Account statements (balance plus recent transactions)
- Statement cache management

Usage:

	// Create a new ledger service
	svc := ledger.NewService(repo, cache, ledger.Config{}, nil)

	// Apply a credit
	balance, err := svc.Apply(ctx, accountID, ledger.TransactionRequest{
	    Value:       100,
	    Kind:        models.TransactionKindCredit,
	    Description: "dep",
	})

	// Read statement
	stmt, err := svc.Statement(ctx, accountID)

Concurrency:

Apply serializes mutations per account with a Postgres advisory lock taken
inside the same database transaction that performs the writes. Concurrent
Apply calls against one account see each other's fully-committed effects;
calls against different accounts run in parallel. Waiting for the lock is
bounded by Config.LockWait, after which Apply fails with ErrLockTimeout and
no side effect.

Error Handling:

The service returns specific errors for different scenarios:
- ErrInvalidTransactionKind: kind is neither credit nor debit
- ErrInvalidDescription: description missing or longer than 10 characters
- ErrInvalidAmount: value is not a positive integer
- ErrAccountNotFound: no account with the given id
- ErrInsufficientFunds: the debit would push balance below -limit
- ErrLockTimeout: the account lock could not be acquired in time

Every error path leaves the account and its history untouched; the database
transaction is the sole mutation point and is all-or-nothing.
*/
package ledger
