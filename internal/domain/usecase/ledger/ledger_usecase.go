package ledger

import (
	"context"

	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	"github.com/zakinadhif/cashierku/internal/domain/port/persistence"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// LedgerUseCase records sales and reads aggregated transaction history.
// Multi-row writes go through the unit of work so they commit or roll back
// as one unit.
type LedgerUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	maxItems     int
}

// NewLedgerUseCase creates a new LedgerUseCase. maxItems caps the item count
// of a single transaction; zero disables the cap.
func NewLedgerUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	maxItems int,
) *LedgerUseCase {
	return &LedgerUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		maxItems:     maxItems,
	}
}

// ListTransactions returns every transaction with its items, each resolved
// against the product catalog for identity but priced from the stored
// snapshot. Totals are computed from the snapshots, never from live prices.
func (u *LedgerUseCase) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	transactionRepo := u.uow.GetTransactionRepository(ctx)

	transactions, err := transactionRepo.List(ctx)
	if err != nil {
		u.logger.Error("Failed to list transactions", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	return transactions, nil
}
