package handler

import (
	"net/http"
	"strconv"

	"github.com/zakinadhif/cashierku/internal/domain/datastore"
	domainerr "github.com/zakinadhif/cashierku/internal/domain/error"
	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	usecaseport "github.com/zakinadhif/cashierku/internal/domain/port/usecase"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles ledger-related HTTP requests. Every endpoint is
// a thin translation between HTTP and the tagged datastore contract.
type TransactionHandler struct {
	store  *datastore.TransactionDatastore
	logger coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledgerService usecaseport.LedgerUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		store:  datastore.NewTransactionDatastore(ledgerService, logger),
		logger: logger,
	}
}

// ListTransactions handles the GET /transactions endpoint
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	result, err := h.store.Handle(c.Request.Context(), datastore.GetTransactionsRequest{})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := result.(datastore.GetTransactionsResponse)
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(response.Transactions))
}

// CreateTransaction handles the POST /transactions endpoint
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid transaction request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.store.Handle(c.Request.Context(), datastore.CreateTransactionRequest{
		Date:  req.Date,
		Items: req.ToItemInputs(),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := result.(datastore.CreateTransactionResponse)
	c.JSON(http.StatusCreated, dto.CreateTransactionResponse{ID: response.TransactionID})
}

// DeleteTransaction handles the DELETE /transactions/:transactionId endpoint
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, ok := h.transactionIDParam(c)
	if !ok {
		return
	}

	if _, err := h.store.Handle(c.Request.Context(), datastore.DeleteTransactionRequest{
		TransactionID: id,
	}); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateTransaction handles the PUT /transactions/:transactionId endpoint.
// Recorded sales are immutable; the dispatch always rejects.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, ok := h.transactionIDParam(c)
	if !ok {
		return
	}

	if _, err := h.store.Handle(c.Request.Context(), datastore.UpdateTransactionRequest{
		TransactionID: id,
	}); err != nil {
		h.respondError(c, err)
		return
	}
}

// transactionIDParam extracts and validates the transaction ID path parameter
func (h *TransactionHandler) transactionIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("transactionId"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidTransactionID),
			Message: "Invalid transaction ID format",
		})
		return 0, false
	}
	return id, true
}

// respondError writes the mapped error response
func (h *TransactionHandler) respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: messageForError(err),
	})
}
