package ledger

import (
	"context"

	errs "github.com/zakinadhif/cashierku/internal/domain/error"
)

// DeleteTransaction removes a transaction and all of its line items in one
// atomic unit. Items cascade with their parent; none may be left referencing
// a removed transaction.
func (u *LedgerUseCase) DeleteTransaction(ctx context.Context, id uint64) error {
	if id == 0 {
		return errs.ErrInvalidTransactionID
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		u.logger.Error("Failed to begin transaction unit", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	transactionRepo := u.uow.GetTransactionRepository(txCtx)
	if err := transactionRepo.Delete(txCtx, id); err != nil {
		if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Failed to roll back transaction unit", map[string]any{
				"error": rbErr.Error(),
			})
		}
		u.logger.Error("Failed to delete transaction", map[string]any{
			"transaction_id": id,
			"error":          err.Error(),
		})
		return err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		u.logger.Error("Failed to commit transaction unit", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	u.logger.Info("Transaction deleted with its items", map[string]any{
		"transaction_id": id,
	})

	return nil
}
