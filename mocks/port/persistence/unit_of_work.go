package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zakinadhif/cashierku/internal/domain/port/persistence"
)

// MockUnitOfWork is a mock implementation of the UnitOfWork port
type MockUnitOfWork struct {
	mock.Mock
}

// Begin mocks starting a new transaction
func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return ctx, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

// Commit mocks committing the transaction in the given context
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Rollback mocks rolling back the transaction in the given context
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// GetProductRepository mocks returning a transaction-bound product repository
func (m *MockUnitOfWork) GetProductRepository(ctx context.Context) persistence.ProductRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.ProductRepository)
}

// GetTransactionRepository mocks returning a transaction-bound transaction repository
func (m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.TransactionRepository)
}
