package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
	errs "github.com/zakinadhif/cashierku/internal/domain/error"
	"github.com/zakinadhif/cashierku/mocks/port/core"
	"github.com/zakinadhif/cashierku/mocks/port/persistence"
)

func TestLedgerUseCase_ListTransactions(t *testing.T) {
	t.Run("should return transactions with snapshot-based totals", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockUow := new(persistence.MockUnitOfWork)
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		history := []entity.Transaction{
			{
				ID:   1,
				Date: time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC),
				Items: []entity.TransactionItem{
					{ID: 1, TransactionID: 1, Product: entity.Product{ID: 1, Code: "SKU-001", Name: "Coffee", Price: 50}, Quantity: 3},
					{ID: 2, TransactionID: 1, Product: entity.Product{ID: 2, Code: "SKU-002", Name: "Tea", Price: 20}, Quantity: 1},
				},
			},
		}

		mockUow.On("GetTransactionRepository", ctx).Return(mockTransactionRepo)
		mockTransactionRepo.On("List", ctx).Return(history, nil)

		useCase := NewLedgerUseCase(mockUow, mockTimeProvider, mockLogger, 0)

		// Act
		transactions, err := useCase.ListTransactions(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, transactions, 1)
		assert.Equal(t, int64(150), transactions[0].Items[0].Subtotal())
		assert.Equal(t, int64(20), transactions[0].Items[1].Subtotal())
		assert.Equal(t, int64(170), transactions[0].Total())

		mockTransactionRepo.AssertExpectations(t)
	})

	t.Run("should surface repository errors", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockUow := new(persistence.MockUnitOfWork)
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockUow.On("GetTransactionRepository", ctx).Return(mockTransactionRepo)
		mockTransactionRepo.On("List", ctx).Return(nil, errs.ErrDatabaseConnection)
		mockLogger.On("Error", "Failed to list transactions", mock.Anything).Return()

		useCase := NewLedgerUseCase(mockUow, mockTimeProvider, mockLogger, 0)

		// Act
		transactions, err := useCase.ListTransactions(ctx)

		// Assert
		assert.Nil(t, transactions)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		mockLogger.AssertExpectations(t)
	})
}
