package persistence

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// MockTransactionRepository is a mock implementation of the TransactionRepository port
type MockTransactionRepository struct {
	mock.Mock
}

// List mocks returning all transactions with items
func (m *MockTransactionRepository) List(ctx context.Context) ([]entity.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

// Insert mocks writing one transaction row
func (m *MockTransactionRepository) Insert(ctx context.Context, date time.Time) (uint64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(uint64), args.Error(1)
}

// InsertItem mocks writing one line item
func (m *MockTransactionRepository) InsertItem(ctx context.Context, item *entity.TransactionItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// Delete mocks removing a transaction with its items
func (m *MockTransactionRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
