package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-row writes across repositories so that
// either every row commits or none does. The transaction travels inside
// the context returned by Begin; repositories obtained through the
// getters participate in it.
type UnitOfWork interface {
	// Begin opens a transaction and returns a context carrying it
	Begin(ctx context.Context) (context.Context, error)

	// Commit finalizes the transaction carried by ctx
	Commit(ctx context.Context) error

	// Rollback aborts the transaction carried by ctx; safe to defer
	// after a successful Commit
	Rollback(ctx context.Context) error

	// GetProductRepository yields a catalog repository inside the transaction
	GetProductRepository(ctx context.Context) ProductRepository

	// GetTransactionRepository yields a ledger repository inside the transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
