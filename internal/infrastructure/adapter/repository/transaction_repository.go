package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
	errs "github.com/zakinadhif/cashierku/internal/domain/error"
	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the ledger repository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// storeError maps an unclassified driver failure to a domain kind
func (r *TransactionRepository) storeError(err error) error {
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// List returns every transaction with its items. Each item's product
// carries the price snapshot recorded at sale time, not the current
// catalog price.
func (r *TransactionRepository) List(ctx context.Context) ([]entity.Transaction, error) {
	var txModels []model.Transaction
	result := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Order("date, id").
		Find(&txModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing transactions", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, r.storeError(result.Error)
	}

	transactions := make([]entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, r.modelToEntity(&txModels[i]))
	}

	r.logger.Debug("Ledger listed", map[string]any{
		"count": len(transactions),
	})

	return transactions, nil
}

// modelToEntity converts a transaction model with preloaded items to an entity
func (r *TransactionRepository) modelToEntity(txModel *model.Transaction) entity.Transaction {
	items := make([]entity.TransactionItem, 0, len(txModel.Items))
	for _, itemModel := range txModel.Items {
		items = append(items, entity.TransactionItem{
			ID:            itemModel.ID,
			TransactionID: itemModel.TransactionID,
			Product: entity.Product{
				ID:   itemModel.ProductID,
				Code: itemModel.Product.Code,
				Name: itemModel.Product.Name,
				// Snapshot from the item row, never products.price
				Price: itemModel.ProductPrice,
			},
			Quantity: itemModel.Quantity,
		})
	}

	return entity.Transaction{
		ID:    txModel.ID,
		Date:  txModel.Date,
		Items: items,
	}
}

// Insert writes one transaction row and returns its assigned ID
func (r *TransactionRepository) Insert(ctx context.Context, date time.Time) (uint64, error) {
	txModel := model.Transaction{Date: date}

	result := r.db.WithContext(ctx).Create(&txModel)
	if result.Error != nil {
		r.logger.Error("Database error when inserting transaction", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, r.storeError(result.Error)
	}

	r.logger.Debug("Transaction row inserted", map[string]any{
		"transaction_id": txModel.ID,
		"date":           date,
	})

	return txModel.ID, nil
}

// InsertItem writes one line item with its price snapshot already bound
func (r *TransactionRepository) InsertItem(ctx context.Context, item *entity.TransactionItem) error {
	itemModel := model.TransactionItem{
		TransactionID: item.TransactionID,
		ProductID:     item.Product.ID,
		ProductPrice:  item.Product.Price,
		Quantity:      item.Quantity,
	}

	result := r.db.WithContext(ctx).Create(&itemModel)
	if result.Error != nil {
		r.logger.Error("Database error when inserting transaction item", map[string]any{
			"transaction_id": item.TransactionID,
			"product_id":     item.Product.ID,
			"error":          result.Error.Error(),
		})

		// Items are only written after the product row was read in the
		// same transaction, so a FK violation here means the parent
		// references broke mid-flight.
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			return errs.ErrProductNotFound
		}

		return r.storeError(result.Error)
	}

	item.ID = itemModel.ID
	return nil
}

// Delete removes a transaction and its items in one go. Items are
// removed explicitly so the cascade holds even against store files
// created without foreign key enforcement.
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", id).
		Delete(&model.TransactionItem{})
	if result.Error != nil {
		r.logger.Error("Database error when deleting transaction items", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return r.storeError(result.Error)
	}

	itemsRemoved := result.RowsAffected

	result = r.db.WithContext(ctx).Delete(&model.Transaction{}, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return errs.ErrTransactionNotFound
		}
		r.logger.Error("Database error when deleting transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return r.storeError(result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction not found during delete", map[string]any{
			"transaction_id": id,
		})
		return errs.ErrTransactionNotFound
	}

	r.logger.Debug("Transaction rows deleted", map[string]any{
		"transaction_id": id,
		"items_removed":  itemsRemoved,
	})

	return nil
}
