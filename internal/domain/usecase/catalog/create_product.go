package catalog

import (
	"context"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// CreateProduct creates a new catalog entry with a store-assigned ID
func (u *CatalogUseCase) CreateProduct(ctx context.Context, code, name string, price int64) (*entity.Product, error) {
	product, err := entity.NewProduct(code, name, price)
	if err != nil {
		return nil, err
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		u.logger.Error("Failed to create product", map[string]any{
			"code":  product.Code,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Product created", map[string]any{
		"product_id": product.ID,
		"code":       product.Code,
		"price":      entity.AmountToString(product.Price),
	})

	return product, nil
}
