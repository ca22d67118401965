package dto

import (
	"time"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// TransactionItemRequest is one product line in a new transaction
type TransactionItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
}

// CreateTransactionRequest represents the API request for recording a sale.
// Date is optional; the server clock is used when it is absent.
type CreateTransactionRequest struct {
	Date  time.Time                `json:"date"`
	Items []TransactionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ToItemInputs maps the request lines to domain item inputs
func (r *CreateTransactionRequest) ToItemInputs() []entity.ItemInput {
	items := make([]entity.ItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, entity.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return items
}

// TransactionItemResponse is one line of a recorded transaction. ProductPrice
// is the snapshot taken at sale time, not the current catalog price.
type TransactionItemResponse struct {
	ID           uint64 `json:"id"`
	ProductID    uint64 `json:"productId"`
	ProductCode  string `json:"productCode"`
	ProductName  string `json:"productName"`
	ProductPrice int64  `json:"productPrice"`
	Quantity     int64  `json:"quantity"`
	Subtotal     int64  `json:"subtotal"`
}

// TransactionResponse represents a recorded transaction in API responses
type TransactionResponse struct {
	ID           uint64                    `json:"id"`
	Date         time.Time                 `json:"date"`
	Items        []TransactionItemResponse `json:"items"`
	Total        int64                     `json:"total"`
	TotalDisplay string                    `json:"totalDisplay"`
}

// CreateTransactionResponse carries the assigned ID of a new transaction
type CreateTransactionResponse struct {
	ID uint64 `json:"id"`
}

// NewTransactionResponse maps a transaction entity to its response shape
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	items := make([]TransactionItemResponse, 0, len(tx.Items))
	for i := range tx.Items {
		item := &tx.Items[i]
		items = append(items, TransactionItemResponse{
			ID:           item.ID,
			ProductID:    item.Product.ID,
			ProductCode:  item.Product.Code,
			ProductName:  item.Product.Name,
			ProductPrice: item.Product.Price,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal(),
		})
	}

	return TransactionResponse{
		ID:           tx.ID,
		Date:         tx.Date,
		Items:        items,
		Total:        tx.Total(),
		TotalDisplay: entity.AmountToString(tx.Total()),
	}
}

// NewTransactionListResponse maps a transaction slice to response shapes
func NewTransactionListResponse(transactions []entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, NewTransactionResponse(&transactions[i]))
	}
	return responses
}
