package datastore

import (
	"context"
	"fmt"

	errs "github.com/zakinadhif/cashierku/internal/domain/error"
	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	usecaseport "github.com/zakinadhif/cashierku/internal/domain/port/usecase"
)

// TransactionDatastore dispatches tagged ledger requests to the operation
// handling each variant
type TransactionDatastore struct {
	ledger usecaseport.LedgerUseCase
	logger coreport.Logger
}

// NewTransactionDatastore creates a new dispatcher over the ledger use case
func NewTransactionDatastore(ledger usecaseport.LedgerUseCase, logger coreport.Logger) *TransactionDatastore {
	return &TransactionDatastore{
		ledger: ledger,
		logger: logger,
	}
}

// Handle routes a request to the handler for its variant
func (d *TransactionDatastore) Handle(ctx context.Context, request Request) (any, error) {
	switch request := request.(type) {
	case GetTransactionsRequest:
		return d.getTransactions(ctx, request)
	case CreateTransactionRequest:
		return d.createTransaction(ctx, request)
	case DeleteTransactionRequest:
		return d.deleteTransaction(ctx, request)
	case UpdateTransactionRequest:
		return d.updateTransaction(ctx, request)
	default:
		return nil, fmt.Errorf("%w: unknown request kind", errs.ErrInvalidRequest)
	}
}

func (d *TransactionDatastore) getTransactions(ctx context.Context, _ GetTransactionsRequest) (GetTransactionsResponse, error) {
	transactions, err := d.ledger.ListTransactions(ctx)
	if err != nil {
		return GetTransactionsResponse{}, err
	}
	return GetTransactionsResponse{Transactions: transactions}, nil
}

func (d *TransactionDatastore) createTransaction(ctx context.Context, request CreateTransactionRequest) (CreateTransactionResponse, error) {
	transactionID, err := d.ledger.CreateTransaction(ctx, request.Date, request.Items)
	if err != nil {
		return CreateTransactionResponse{}, err
	}
	return CreateTransactionResponse{TransactionID: transactionID}, nil
}

func (d *TransactionDatastore) deleteTransaction(ctx context.Context, request DeleteTransactionRequest) (DeleteTransactionResponse, error) {
	if err := d.ledger.DeleteTransaction(ctx, request.TransactionID); err != nil {
		return DeleteTransactionResponse{}, err
	}
	return DeleteTransactionResponse{TransactionID: request.TransactionID}, nil
}

func (d *TransactionDatastore) updateTransaction(_ context.Context, request UpdateTransactionRequest) (any, error) {
	d.logger.Warn("Rejected update_transaction request", map[string]any{
		"transaction_id": request.TransactionID,
	})
	return nil, errs.ErrUnsupportedOperation
}
