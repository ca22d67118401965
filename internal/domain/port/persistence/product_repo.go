package persistence

import (
	"context"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// ProductRepository defines the catalog side of the store
type ProductRepository interface {
	// GetByID retrieves a product by ID
	//
	// Possible errors:
	// - ErrProductNotFound: if no product with the given ID exists
	// - ErrDatabaseConnection: if the database cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.Product, error)

	// List returns the full, unfiltered catalog in storage order
	List(ctx context.Context) ([]entity.Product, error)

	// Create inserts a new product and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateProductCode: if the code is already taken
	// - ErrDatabaseConnection: if the database cannot be reached
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites code, name and price of an existing product.
	// Price snapshots already recorded on transaction items are unaffected.
	//
	// Possible errors:
	// - ErrProductNotFound: if no product with the given ID exists
	// - ErrDuplicateProductCode: if the new code collides with another product
	Update(ctx context.Context, product *entity.Product) error

	// Delete hard-deletes a product
	//
	// Possible errors:
	// - ErrProductNotFound: if no product with the given ID exists
	// - ErrProductInUse: if any transaction item still references the product
	Delete(ctx context.Context, id uint64) error
}
