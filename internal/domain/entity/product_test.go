package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/zakinadhif/cashierku/internal/domain/error"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create product with valid fields", func(t *testing.T) {
		product, err := NewProduct("SKU-001", "Instant Noodles", 3500)

		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, uint64(0), product.ID)
		assert.Equal(t, "SKU-001", product.Code)
		assert.Equal(t, "Instant Noodles", product.Name)
		assert.Equal(t, int64(3500), product.Price)
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		product, err := NewProduct("  SKU-002 ", " Mineral Water ", 5000)

		assert.NoError(t, err)
		assert.Equal(t, "SKU-002", product.Code)
		assert.Equal(t, "Mineral Water", product.Name)
	})

	t.Run("should allow zero price", func(t *testing.T) {
		product, err := NewProduct("SKU-003", "Free Sample", 0)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), product.Price)
	})

	t.Run("should reject empty code", func(t *testing.T) {
		product, err := NewProduct("   ", "Nameless", 100)

		assert.Nil(t, product)
		assert.ErrorIs(t, err, errs.ErrInvalidProductCode)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		product, err := NewProduct("SKU-004", "Refund Trap", -1)

		assert.Nil(t, product)
		assert.ErrorIs(t, err, errs.ErrNegativePrice)
	})
}
