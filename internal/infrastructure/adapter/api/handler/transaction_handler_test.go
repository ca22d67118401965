package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
	errs "github.com/zakinadhif/cashierku/internal/domain/error"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/api/dto"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/logger"
	mockusecase "github.com/zakinadhif/cashierku/mocks/port/usecase"
)

func setupTransactionRouter(ledger *mockusecase.MockLedgerUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewTransactionHandler(ledger, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/transactions", h.ListTransactions)
	router.POST("/transactions", h.CreateTransaction)
	router.PUT("/transactions/:transactionId", h.UpdateTransaction)
	router.DELETE("/transactions/:transactionId", h.DeleteTransaction)
	return router
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("should return ledger with snapshot prices and totals", func(t *testing.T) {
		// Arrange
		date := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
		mockLedger := new(mockusecase.MockLedgerUseCase)
		mockLedger.On("ListTransactions", mock.Anything).Return([]entity.Transaction{
			{
				ID:   1,
				Date: date,
				Items: []entity.TransactionItem{
					{
						ID:            10,
						TransactionID: 1,
						Product:       entity.Product{ID: 3, Code: "SKU-003", Name: "Coffee", Price: 2000},
						Quantity:      3,
					},
				},
			},
		}, nil)

		router := setupTransactionRouter(mockLedger)

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)

		var resp []dto.TransactionResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, int64(6000), resp[0].Total)
		assert.Equal(t, "60.00", resp[0].TotalDisplay)
		assert.Equal(t, int64(2000), resp[0].Items[0].ProductPrice)
		assert.Equal(t, int64(6000), resp[0].Items[0].Subtotal)

		mockLedger.AssertExpectations(t)
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("should record transaction and return its ID", func(t *testing.T) {
		// Arrange
		mockLedger := new(mockusecase.MockLedgerUseCase)
		mockLedger.On("CreateTransaction", mock.Anything, mock.AnythingOfType("time.Time"),
			[]entity.ItemInput{{ProductID: 3, Quantity: 2}}).
			Return(uint64(11), nil)

		router := setupTransactionRouter(mockLedger)
		body, _ := json.Marshal(dto.CreateTransactionRequest{
			Items: []dto.TransactionItemRequest{{ProductID: 3, Quantity: 2}},
		})

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.CreateTransactionResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint64(11), resp.ID)

		mockLedger.AssertExpectations(t)
	})

	t.Run("should return 400 for empty item list without calling usecase", func(t *testing.T) {
		// Arrange
		mockLedger := new(mockusecase.MockLedgerUseCase)
		router := setupTransactionRouter(mockLedger)

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader([]byte(`{"items":[]}`)))
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockLedger.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should return 404 when an item references a missing product", func(t *testing.T) {
		// Arrange
		mockLedger := new(mockusecase.MockLedgerUseCase)
		mockLedger.On("CreateTransaction", mock.Anything, mock.AnythingOfType("time.Time"),
			[]entity.ItemInput{{ProductID: 99, Quantity: 1}}).
			Return(uint64(0), errs.ErrProductNotFound)

		router := setupTransactionRouter(mockLedger)
		body, _ := json.Marshal(dto.CreateTransactionRequest{
			Items: []dto.TransactionItemRequest{{ProductID: 99, Quantity: 1}},
		})

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.ErrorCode(errs.ErrProductNotFound), resp.Code)
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("should return 204 on success", func(t *testing.T) {
		// Arrange
		mockLedger := new(mockusecase.MockLedgerUseCase)
		mockLedger.On("DeleteTransaction", mock.Anything, uint64(5)).Return(nil)

		router := setupTransactionRouter(mockLedger)

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/transactions/5", nil)
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, w.Code)
		mockLedger.AssertExpectations(t)
	})

	t.Run("should return 404 when transaction does not exist", func(t *testing.T) {
		// Arrange
		mockLedger := new(mockusecase.MockLedgerUseCase)
		mockLedger.On("DeleteTransaction", mock.Anything, uint64(5)).
			Return(errs.ErrTransactionNotFound)

		router := setupTransactionRouter(mockLedger)

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/transactions/5", nil)
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("should always reject with 501", func(t *testing.T) {
		// Arrange
		mockLedger := new(mockusecase.MockLedgerUseCase)
		router := setupTransactionRouter(mockLedger)

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/transactions/5", bytes.NewReader([]byte(`{}`)))
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotImplemented, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.ErrorCode(errs.ErrUnsupportedOperation), resp.Code)
	})
}
