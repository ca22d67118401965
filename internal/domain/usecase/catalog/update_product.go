package catalog

import (
	"context"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
	errs "github.com/zakinadhif/cashierku/internal/domain/error"
)

// UpdateProduct overwrites code, name and price of an existing product.
// Price snapshots recorded on transaction items keep their original value.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, id uint64, code, name string, price int64) (*entity.Product, error) {
	if id == 0 {
		return nil, errs.ErrInvalidProductID
	}

	product, err := entity.NewProduct(code, name, price)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := u.productRepo.Update(ctx, product); err != nil {
		u.logger.Error("Failed to update product", map[string]any{
			"product_id": id,
			"code":       product.Code,
			"error":      err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Product updated", map[string]any{
		"product_id": id,
		"code":       product.Code,
		"price":      entity.AmountToString(product.Price),
	})

	return product, nil
}
