package usecase

import (
	"context"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// CatalogUseCase defines catalog management operations
type CatalogUseCase interface {
	// ListProducts returns the full catalog with current prices
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// CreateProduct creates a product and returns it with its assigned ID
	CreateProduct(ctx context.Context, code, name string, price int64) (*entity.Product, error)

	// UpdateProduct overwrites code, name and price of an existing product
	UpdateProduct(ctx context.Context, id uint64, code, name string, price int64) (*entity.Product, error)

	// DeleteProduct hard-deletes a product unless transaction items reference it
	DeleteProduct(ctx context.Context, id uint64) error
}
