package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// MockLedgerUseCase is a mock implementation of the LedgerUseCase port
type MockLedgerUseCase struct {
	mock.Mock
}

// ListTransactions mocks listing the full transaction history
func (m *MockLedgerUseCase) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

// CreateTransaction mocks recording a sale atomically
func (m *MockLedgerUseCase) CreateTransaction(ctx context.Context, date time.Time, items []entity.ItemInput) (uint64, error) {
	args := m.Called(ctx, date, items)
	return args.Get(0).(uint64), args.Error(1)
}

// DeleteTransaction mocks cascade-deleting a transaction
func (m *MockLedgerUseCase) DeleteTransaction(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
