package persistence

import (
	"context"
	"time"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// TransactionRepository defines the ledger side of the store
type TransactionRepository interface {
	// List returns every transaction joined with its items. Each item resolves
	// the referenced product's identity and carries the historical price
	// snapshot, never the current catalog price.
	List(ctx context.Context) ([]entity.Transaction, error)

	// Insert writes one transaction row and returns its assigned ID.
	// Items are inserted separately; the whole unit is made atomic by the
	// surrounding UnitOfWork.
	Insert(ctx context.Context, date time.Time) (uint64, error)

	// InsertItem writes one line item with its price snapshot already bound.
	// The item's ID is assigned on success.
	//
	// Possible errors:
	// - ErrProductNotFound: if product_id references no existing product
	// - ErrTransactionNotFound: if transaction_id references no existing transaction
	InsertItem(ctx context.Context, item *entity.TransactionItem) error

	// Delete removes a transaction; its items cascade in the same statement's
	// transaction scope and may never be orphaned.
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no transaction with the given ID exists
	Delete(ctx context.Context, id uint64) error
}
