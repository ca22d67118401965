package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
	errs "github.com/zakinadhif/cashierku/internal/domain/error"
	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ProductRepository implements the catalog repository interface using GORM
type ProductRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository(db *gorm.DB, logger coreport.Logger) *ProductRepository {
	return &ProductRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a product model to an entity
func (r *ProductRepository) modelToEntity(productModel *model.Product) entity.Product {
	return entity.Product{
		ID:    productModel.ID,
		Code:  productModel.Code,
		Name:  productModel.Name,
		Price: productModel.Price,
	}
}

// handleDatabaseError standardizes database error handling
func (r *ProductRepository) handleDatabaseError(operation string, err error, productID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"product_id": productID,
		"error":      err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Product not found", map[string]any{
			"product_id": productID,
		})
		return errs.ErrProductNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Product code already taken", map[string]any{
			"product_id": productID,
		})
		return errs.ErrDuplicateProductCode
	}

	if r.errorClassifier.IsForeignKeyError(err) {
		r.logger.Warn("Product still referenced by ledger items", map[string]any{
			"product_id": productID,
		})
		return errs.ErrProductInUse
	}

	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*entity.Product, error) {
	r.logger.Debug("Getting product by ID", map[string]any{
		"product_id": id,
	})

	var productModel model.Product
	result := r.db.WithContext(ctx).First(&productModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting product", result.Error, id)
	}

	product := r.modelToEntity(&productModel)
	return &product, nil
}

// List returns the full catalog in primary key order
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	var productModels []model.Product
	result := r.db.WithContext(ctx).Order("id").Find(&productModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing products", result.Error, 0)
	}

	products := make([]entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, r.modelToEntity(&productModels[i]))
	}

	r.logger.Debug("Catalog listed", map[string]any{
		"count": len(products),
	})

	return products, nil
}

// Create inserts a new product and writes the assigned ID back to the entity
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.logger.Debug("Creating new product", map[string]any{
		"code":  product.Code,
		"name":  product.Name,
		"price": entity.AmountToString(product.Price),
	})

	productModel := model.Product{
		Code:  product.Code,
		Name:  product.Name,
		Price: product.Price,
	}

	result := r.db.WithContext(ctx).Create(&productModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating product", result.Error, 0)
	}

	product.ID = productModel.ID

	r.logger.Info("Product created successfully", map[string]any{
		"product_id": product.ID,
		"code":       product.Code,
	})
	return nil
}

// Update overwrites code, name and price of an existing product.
// Recorded price snapshots live on transaction items and stay untouched.
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	r.logger.Debug("Updating product", map[string]any{
		"product_id": product.ID,
		"code":       product.Code,
	})

	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"code":  product.Code,
			"name":  product.Name,
			"price": product.Price,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating product", result.Error, product.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Product not found during update", map[string]any{
			"product_id": product.ID,
		})
		return errs.ErrProductNotFound
	}

	r.logger.Info("Product updated successfully", map[string]any{
		"product_id": product.ID,
		"code":       product.Code,
		"price":      entity.AmountToString(product.Price),
	})
	return nil
}

// Delete hard-deletes a product. The RESTRICT constraint on transaction
// items rejects the delete while any ledger row still references it.
func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	r.logger.Debug("Deleting product", map[string]any{
		"product_id": id,
	})

	result := r.db.WithContext(ctx).Delete(&model.Product{}, id)

	if result.Error != nil {
		return r.handleDatabaseError("deleting product", result.Error, id)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Product not found during delete", map[string]any{
			"product_id": id,
		})
		return errs.ErrProductNotFound
	}

	r.logger.Info("Product deleted successfully", map[string]any{
		"product_id": id,
	})
	return nil
}
