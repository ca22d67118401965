package ledger

import (
	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// ValidateNewTransaction checks the input of a create-transaction call before
// any row is written: the item list must be non-empty, every product ID
// positive, every quantity positive.
func ValidateNewTransaction(items []entity.ItemInput) error {
	return entity.ValidateItems(items)
}
