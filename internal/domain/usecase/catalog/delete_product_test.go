package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/zakinadhif/cashierku/internal/domain/error"
	"github.com/zakinadhif/cashierku/mocks/port/core"
	"github.com/zakinadhif/cashierku/mocks/port/persistence"
)

func TestCatalogUseCase_DeleteProduct(t *testing.T) {
	t.Run("should delete an unreferenced product", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockProductRepo := new(persistence.MockProductRepository)
		mockLogger := new(core.MockLogger)

		mockProductRepo.On("Delete", ctx, uint64(5)).Return(nil)
		mockLogger.On("Info", "Product deleted", mock.Anything).Return()

		useCase := NewCatalogUseCase(mockProductRepo, mockLogger)

		// Act
		err := useCase.DeleteProduct(ctx, 5)

		// Assert
		assert.NoError(t, err)
		mockProductRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should reject deletion while transaction items reference the product", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockProductRepo := new(persistence.MockProductRepository)
		mockLogger := new(core.MockLogger)

		mockProductRepo.On("Delete", ctx, uint64(5)).Return(errs.ErrProductInUse)
		mockLogger.On("Warn", "Product deletion rejected, still referenced", mock.Anything).Return()

		useCase := NewCatalogUseCase(mockProductRepo, mockLogger)

		// Act
		err := useCase.DeleteProduct(ctx, 5)

		// Assert
		assert.ErrorIs(t, err, errs.ErrProductInUse)

		var inUseErr *errs.ProductInUseError
		assert.ErrorAs(t, err, &inUseErr)
		assert.Equal(t, uint64(5), inUseErr.ProductID)

		mockProductRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should fail when the product does not exist", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockProductRepo := new(persistence.MockProductRepository)
		mockLogger := new(core.MockLogger)

		mockProductRepo.On("Delete", ctx, uint64(42)).Return(errs.ErrProductNotFound)
		mockLogger.On("Error", "Failed to delete product", mock.Anything).Return()

		useCase := NewCatalogUseCase(mockProductRepo, mockLogger)

		// Act
		err := useCase.DeleteProduct(ctx, 42)

		// Assert
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("should reject zero ID without touching the repository", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockProductRepo := new(persistence.MockProductRepository)
		mockLogger := new(core.MockLogger)

		useCase := NewCatalogUseCase(mockProductRepo, mockLogger)

		// Act
		err := useCase.DeleteProduct(ctx, 0)

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidProductID)
		mockProductRepo.AssertNotCalled(t, "Delete")
	})
}
