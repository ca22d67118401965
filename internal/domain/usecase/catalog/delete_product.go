package catalog

import (
	"context"
	"errors"

	errs "github.com/zakinadhif/cashierku/internal/domain/error"
)

// DeleteProduct hard-deletes a product. Deletion is restricted, not cascaded:
// while any transaction item references the product the call fails and the
// row is kept untouched.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		return errs.ErrInvalidProductID
	}

	if err := u.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, errs.ErrProductInUse) {
			u.logger.Warn("Product deletion rejected, still referenced", map[string]any{
				"product_id": id,
			})
			return errs.NewProductInUseError(id)
		}

		u.logger.Error("Failed to delete product", map[string]any{
			"product_id": id,
			"error":      err.Error(),
		})
		return err
	}

	u.logger.Info("Product deleted", map[string]any{
		"product_id": id,
	})

	return nil
}
