package datastore

import (
	"time"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// The store is consumed through a narrow request/response contract. Requests
// form a closed sum type over operation kinds: every variant implements the
// unexported kind method, so no outside package can add one, and the
// dispatcher handles each variant with its own function.

// RequestKind tags a request variant
type RequestKind string

// Request kinds
const (
	KindGetTransactions   RequestKind = "get_transactions"
	KindCreateTransaction RequestKind = "create_transaction"
	KindDeleteTransaction RequestKind = "delete_transaction"
	KindUpdateTransaction RequestKind = "update_transaction"
)

// Request is the closed set of ledger request variants
type Request interface {
	kind() RequestKind
}

// GetTransactionsRequest asks for the full transaction history
type GetTransactionsRequest struct{}

func (GetTransactionsRequest) kind() RequestKind { return KindGetTransactions }

// CreateTransactionRequest records a sale with its line items
type CreateTransactionRequest struct {
	Date  time.Time
	Items []entity.ItemInput
}

func (CreateTransactionRequest) kind() RequestKind { return KindCreateTransaction }

// DeleteTransactionRequest removes a transaction and its items
type DeleteTransactionRequest struct {
	TransactionID uint64
}

func (DeleteTransactionRequest) kind() RequestKind { return KindDeleteTransaction }

// UpdateTransactionRequest names a contract variant with no defined semantics;
// dispatching it always fails with ErrUnsupportedOperation
type UpdateTransactionRequest struct {
	TransactionID uint64
}

func (UpdateTransactionRequest) kind() RequestKind { return KindUpdateTransaction }

// GetTransactionsResponse carries the full transaction history
type GetTransactionsResponse struct {
	Transactions []entity.Transaction
}

// CreateTransactionResponse carries the ID assigned to a recorded sale
type CreateTransactionResponse struct {
	TransactionID uint64
}

// DeleteTransactionResponse confirms a cascade deletion
type DeleteTransactionResponse struct {
	TransactionID uint64
}
