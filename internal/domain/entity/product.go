package entity

import (
	"strings"

	errs "github.com/zakinadhif/cashierku/internal/domain/error"
)

// Product is a catalog entry available for sale. Price is expressed in the
// smallest currency unit and is the current catalog price, not a snapshot.
type Product struct {
	ID    uint64
	Code  string
	Name  string
	Price int64
}

// NewProduct creates a validated product with a store-assigned ID of zero
func NewProduct(code, name string, price int64) (*Product, error) {
	product := &Product{
		Code:  strings.TrimSpace(code),
		Name:  strings.TrimSpace(name),
		Price: price,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks the catalog invariants on the product fields
func (p *Product) Validate() error {
	if p.Code == "" {
		return errs.ErrInvalidProductCode
	}
	if p.Price < 0 {
		return errs.ErrNegativePrice
	}
	return nil
}
