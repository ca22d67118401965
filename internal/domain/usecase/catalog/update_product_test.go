package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
	errs "github.com/zakinadhif/cashierku/internal/domain/error"
	"github.com/zakinadhif/cashierku/mocks/port/core"
	"github.com/zakinadhif/cashierku/mocks/port/persistence"
)

func TestCatalogUseCase_UpdateProduct(t *testing.T) {
	t.Run("should overwrite all mutable fields", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockProductRepo := new(persistence.MockProductRepository)
		mockLogger := new(core.MockLogger)

		mockProductRepo.On("Update", ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.ID == 3 && p.Code == "SKU-003" && p.Name == "Green Tea" && p.Price == 2200
		})).Return(nil)
		mockLogger.On("Info", "Product updated", mock.Anything).Return()

		useCase := NewCatalogUseCase(mockProductRepo, mockLogger)

		// Act
		product, err := useCase.UpdateProduct(ctx, 3, "SKU-003", "Green Tea", 2200)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, uint64(3), product.ID)

		mockProductRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should fail when the product does not exist", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockProductRepo := new(persistence.MockProductRepository)
		mockLogger := new(core.MockLogger)

		mockProductRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).
			Return(errs.ErrProductNotFound)
		mockLogger.On("Error", "Failed to update product", mock.Anything).Return()

		useCase := NewCatalogUseCase(mockProductRepo, mockLogger)

		// Act
		product, err := useCase.UpdateProduct(ctx, 999, "SKU-999", "Ghost", 100)

		// Assert
		assert.Nil(t, product)
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("should fail when the new code collides with another product", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockProductRepo := new(persistence.MockProductRepository)
		mockLogger := new(core.MockLogger)

		mockProductRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).
			Return(errs.NewDuplicateProductCodeError("SKU-001"))
		mockLogger.On("Error", "Failed to update product", mock.Anything).Return()

		useCase := NewCatalogUseCase(mockProductRepo, mockLogger)

		// Act
		product, err := useCase.UpdateProduct(ctx, 3, "SKU-001", "Tea", 2000)

		// Assert
		assert.Nil(t, product)
		assert.ErrorIs(t, err, errs.ErrDuplicateProductCode)
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("should reject zero ID without touching the repository", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockProductRepo := new(persistence.MockProductRepository)
		mockLogger := new(core.MockLogger)

		useCase := NewCatalogUseCase(mockProductRepo, mockLogger)

		// Act
		product, err := useCase.UpdateProduct(ctx, 0, "SKU-001", "Coffee", 2500)

		// Assert
		assert.Nil(t, product)
		assert.ErrorIs(t, err, errs.ErrInvalidProductID)
		mockProductRepo.AssertNotCalled(t, "Update")
	})
}
