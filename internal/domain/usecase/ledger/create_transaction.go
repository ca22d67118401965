package ledger

import (
	"context"
	"time"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
	errs "github.com/zakinadhif/cashierku/internal/domain/error"
)

// CreateTransaction atomically records a sale. It inserts one transaction row,
// then one item row per input with the product's current price copied in as a
// permanent snapshot. If any product lookup or insert fails, the whole unit is
// rolled back and no row of either kind is committed.
func (u *LedgerUseCase) CreateTransaction(ctx context.Context, date time.Time, items []entity.ItemInput) (uint64, error) {
	if err := ValidateNewTransaction(items); err != nil {
		return 0, err
	}
	if u.maxItems > 0 && len(items) > u.maxItems {
		return 0, errs.ErrTooManyItems
	}

	if date.IsZero() {
		date = u.timeProvider.Now()
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		u.logger.Error("Failed to begin transaction unit", map[string]any{
			"error": err.Error(),
		})
		return 0, err
	}

	transactionID, err := u.createTransactionInUnit(txCtx, date, items)
	if err != nil {
		if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Failed to roll back transaction unit", map[string]any{
				"error": rbErr.Error(),
			})
		}
		return 0, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		u.logger.Error("Failed to commit transaction unit", map[string]any{
			"error": err.Error(),
		})
		return 0, err
	}

	u.logger.Info("Transaction recorded", map[string]any{
		"transaction_id": transactionID,
		"date":           date,
		"item_count":     len(items),
	})

	return transactionID, nil
}

// createTransactionInUnit performs the multi-row write inside an open unit of work
func (u *LedgerUseCase) createTransactionInUnit(txCtx context.Context, date time.Time, items []entity.ItemInput) (uint64, error) {
	transactionRepo := u.uow.GetTransactionRepository(txCtx)
	productRepo := u.uow.GetProductRepository(txCtx)

	transactionID, err := transactionRepo.Insert(txCtx, date)
	if err != nil {
		return 0, err
	}

	for _, input := range items {
		// Look up the current catalog price; it becomes the item's frozen snapshot
		product, err := productRepo.GetByID(txCtx, input.ProductID)
		if err != nil {
			u.logger.Warn("Aborting transaction, product lookup failed", map[string]any{
				"product_id": input.ProductID,
				"error":      err.Error(),
			})
			return 0, errs.NewLedgerError(transactionID, input.ProductID, "product lookup failed", err)
		}

		item := &entity.TransactionItem{
			TransactionID: transactionID,
			Product:       *product,
			Quantity:      input.Quantity,
		}

		if err := transactionRepo.InsertItem(txCtx, item); err != nil {
			return 0, errs.NewLedgerError(transactionID, input.ProductID, "item insert failed", err)
		}
	}

	return transactionID, nil
}
