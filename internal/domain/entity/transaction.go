package entity

import (
	"time"

	errs "github.com/zakinadhif/cashierku/internal/domain/error"
)

// TransactionItem is one product line within a recorded sale. Product carries
// the identity fields of the referenced product, but its Price is the snapshot
// captured at the moment of sale and never changes with the catalog.
type TransactionItem struct {
	ID            uint64
	TransactionID uint64
	Product       Product
	Quantity      int64
}

// Subtotal computes the line total from the stored price snapshot
func (i *TransactionItem) Subtotal() int64 {
	return i.Product.Price * i.Quantity
}

// Transaction is a completed sale event together with its line items
type Transaction struct {
	ID    uint64
	Date  time.Time
	Items []TransactionItem
}

// Total sums the subtotals of all line items
func (t *Transaction) Total() int64 {
	var total int64
	for i := range t.Items {
		total += t.Items[i].Subtotal()
	}
	return total
}

// ItemInput is the caller-supplied shape for one line of a new transaction.
// The price is deliberately absent: it is looked up at insert time.
type ItemInput struct {
	ProductID uint64
	Quantity  int64
}

// Validate checks a single line item input
func (in ItemInput) Validate() error {
	if in.ProductID == 0 {
		return errs.ErrInvalidProductID
	}
	if in.Quantity <= 0 {
		return errs.ErrInvalidQuantity
	}
	return nil
}

// ValidateItems checks a full item list for a new transaction
func ValidateItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.ErrEmptyTransaction
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}
