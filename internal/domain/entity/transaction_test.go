package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/zakinadhif/cashierku/internal/domain/error"
)

func TestTransactionItem_Subtotal(t *testing.T) {
	item := TransactionItem{
		Product:  Product{ID: 1, Code: "SKU-001", Name: "Coffee", Price: 50},
		Quantity: 3,
	}

	assert.Equal(t, int64(150), item.Subtotal())
}

func TestTransaction_Total(t *testing.T) {
	date := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

	t.Run("should sum item subtotals", func(t *testing.T) {
		tx := Transaction{
			ID:   1,
			Date: date,
			Items: []TransactionItem{
				{Product: Product{ID: 1, Price: 50}, Quantity: 3},
				{Product: Product{ID: 2, Price: 20}, Quantity: 1},
			},
		}

		assert.Equal(t, int64(170), tx.Total())
	})

	t.Run("should be independent of item ordering", func(t *testing.T) {
		tx := Transaction{
			ID:   2,
			Date: date,
			Items: []TransactionItem{
				{Product: Product{ID: 2, Price: 20}, Quantity: 1},
				{Product: Product{ID: 1, Price: 50}, Quantity: 3},
			},
		}

		assert.Equal(t, int64(170), tx.Total())
	})

	t.Run("should use the stored snapshot price per item", func(t *testing.T) {
		// Two items for the same product with different snapshots
		tx := Transaction{
			ID:   3,
			Date: date,
			Items: []TransactionItem{
				{Product: Product{ID: 1, Price: 100}, Quantity: 2},
				{Product: Product{ID: 1, Price: 150}, Quantity: 2},
			},
		}

		assert.Equal(t, int64(500), tx.Total())
	})

	t.Run("should be zero without items", func(t *testing.T) {
		tx := Transaction{ID: 4, Date: date}

		assert.Equal(t, int64(0), tx.Total())
	})
}

func TestItemInput_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		input    ItemInput
		expected error
	}{
		{"valid item", ItemInput{ProductID: 1, Quantity: 2}, nil},
		{"zero product ID", ItemInput{ProductID: 0, Quantity: 2}, errs.ErrInvalidProductID},
		{"zero quantity", ItemInput{ProductID: 1, Quantity: 0}, errs.ErrInvalidQuantity},
		{"negative quantity", ItemInput{ProductID: 1, Quantity: -3}, errs.ErrInvalidQuantity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate()
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestValidateItems(t *testing.T) {
	t.Run("should accept a valid list", func(t *testing.T) {
		err := ValidateItems([]ItemInput{
			{ProductID: 1, Quantity: 1},
			{ProductID: 2, Quantity: 5},
		})

		assert.NoError(t, err)
	})

	t.Run("should reject an empty list", func(t *testing.T) {
		assert.ErrorIs(t, ValidateItems(nil), errs.ErrEmptyTransaction)
		assert.ErrorIs(t, ValidateItems([]ItemInput{}), errs.ErrEmptyTransaction)
	})

	t.Run("should reject a list with one bad item", func(t *testing.T) {
		err := ValidateItems([]ItemInput{
			{ProductID: 1, Quantity: 1},
			{ProductID: 2, Quantity: 0},
		})

		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})
}
