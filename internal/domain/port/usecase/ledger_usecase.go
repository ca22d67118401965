package usecase

import (
	"context"
	"time"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// LedgerUseCase defines operations over the transaction ledger
type LedgerUseCase interface {
	// ListTransactions returns every transaction with items, resolved products,
	// per-item subtotals and per-transaction totals
	ListTransactions(ctx context.Context) ([]entity.Transaction, error)

	// CreateTransaction atomically records a sale: one transaction row plus one
	// item row per input, each item snapshotting the product's current price.
	// Returns the new transaction's ID.
	CreateTransaction(ctx context.Context, date time.Time, items []entity.ItemInput) (uint64, error)

	// DeleteTransaction removes a transaction and cascades deletion of its items
	// in the same atomic unit
	DeleteTransaction(ctx context.Context, id uint64) error
}
