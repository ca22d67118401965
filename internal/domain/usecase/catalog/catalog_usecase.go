package catalog

import (
	"context"

	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	"github.com/zakinadhif/cashierku/internal/domain/port/persistence"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// CatalogUseCase handles product catalog business logic
type CatalogUseCase struct {
	productRepo persistence.ProductRepository
	logger      coreport.Logger
}

// NewCatalogUseCase creates a new CatalogUseCase
func NewCatalogUseCase(
	productRepo persistence.ProductRepository,
	logger coreport.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListProducts returns the full catalog with current prices, no pagination
func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		u.logger.Error("Failed to list products", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	return products, nil
}
