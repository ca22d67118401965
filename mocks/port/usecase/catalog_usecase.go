package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// MockCatalogUseCase is a mock implementation of the CatalogUseCase port
type MockCatalogUseCase struct {
	mock.Mock
}

// ListProducts mocks returning the full catalog
func (m *MockCatalogUseCase) ListProducts(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

// CreateProduct mocks creating a catalog entry
func (m *MockCatalogUseCase) CreateProduct(ctx context.Context, code, name string, price int64) (*entity.Product, error) {
	args := m.Called(ctx, code, name, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

// UpdateProduct mocks overwriting a catalog entry
func (m *MockCatalogUseCase) UpdateProduct(ctx context.Context, id uint64, code, name string, price int64) (*entity.Product, error) {
	args := m.Called(ctx, id, code, name, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

// DeleteProduct mocks hard-deleting a catalog entry
func (m *MockCatalogUseCase) DeleteProduct(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
