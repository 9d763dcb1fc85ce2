package repositories

import "context"

// TxFn runs inside a transaction. Repositories called with the ctx it
// receives join that transaction.
type TxFn func(ctx context.Context) error

// TransactionManager runs units of work atomically.
type TransactionManager interface {
	// ExecTx commits when fn returns nil and rolls back otherwise.
	ExecTx(ctx context.Context, fn TxFn) error
}
