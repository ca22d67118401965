package datastore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
	errs "github.com/zakinadhif/cashierku/internal/domain/error"
	"github.com/zakinadhif/cashierku/mocks/port/core"
	"github.com/zakinadhif/cashierku/mocks/port/usecase"
)

func TestTransactionDatastore_Handle(t *testing.T) {
	saleDate := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

	t.Run("should dispatch get_transactions to the ledger", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockLedger := new(usecase.MockLedgerUseCase)
		mockLogger := new(core.MockLogger)

		history := []entity.Transaction{{ID: 1, Date: saleDate}}
		mockLedger.On("ListTransactions", ctx).Return(history, nil)

		store := NewTransactionDatastore(mockLedger, mockLogger)

		// Act
		response, err := store.Handle(ctx, GetTransactionsRequest{})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, GetTransactionsResponse{Transactions: history}, response)
		mockLedger.AssertExpectations(t)
	})

	t.Run("should dispatch create_transaction with its payload", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockLedger := new(usecase.MockLedgerUseCase)
		mockLogger := new(core.MockLogger)

		items := []entity.ItemInput{{ProductID: 1, Quantity: 2}}
		mockLedger.On("CreateTransaction", ctx, saleDate, items).Return(uint64(5), nil)

		store := NewTransactionDatastore(mockLedger, mockLogger)

		// Act
		response, err := store.Handle(ctx, CreateTransactionRequest{Date: saleDate, Items: items})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, CreateTransactionResponse{TransactionID: 5}, response)
		mockLedger.AssertExpectations(t)
	})

	t.Run("should surface ledger errors from create_transaction", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockLedger := new(usecase.MockLedgerUseCase)
		mockLogger := new(core.MockLogger)

		items := []entity.ItemInput{{ProductID: 999, Quantity: 1}}
		mockLedger.On("CreateTransaction", ctx, saleDate, items).
			Return(uint64(0), errs.ErrProductNotFound)

		store := NewTransactionDatastore(mockLedger, mockLogger)

		// Act
		_, err := store.Handle(ctx, CreateTransactionRequest{Date: saleDate, Items: items})

		// Assert
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("should dispatch delete_transaction to the ledger", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockLedger := new(usecase.MockLedgerUseCase)
		mockLogger := new(core.MockLogger)

		mockLedger.On("DeleteTransaction", ctx, uint64(9)).Return(nil)

		store := NewTransactionDatastore(mockLedger, mockLogger)

		// Act
		response, err := store.Handle(ctx, DeleteTransactionRequest{TransactionID: 9})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, DeleteTransactionResponse{TransactionID: 9}, response)
		mockLedger.AssertExpectations(t)
	})

	t.Run("should reject update_transaction as unsupported", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockLedger := new(usecase.MockLedgerUseCase)
		mockLogger := new(core.MockLogger)

		mockLogger.On("Warn", "Rejected update_transaction request", mock.Anything).Return()

		store := NewTransactionDatastore(mockLedger, mockLogger)

		// Act
		response, err := store.Handle(ctx, UpdateTransactionRequest{TransactionID: 9})

		// Assert
		assert.Nil(t, response)
		assert.ErrorIs(t, err, errs.ErrUnsupportedOperation)
		mockLedger.AssertNotCalled(t, "DeleteTransaction", mock.Anything, mock.Anything)
		mockLogger.AssertExpectations(t)
	})
}

func TestRequestKinds(t *testing.T) {
	// Each variant must report its own tag
	assert.Equal(t, KindGetTransactions, GetTransactionsRequest{}.kind())
	assert.Equal(t, KindCreateTransaction, CreateTransactionRequest{}.kind())
	assert.Equal(t, KindDeleteTransaction, DeleteTransactionRequest{}.kind())
	assert.Equal(t, KindUpdateTransaction, UpdateTransactionRequest{}.kind())
}
