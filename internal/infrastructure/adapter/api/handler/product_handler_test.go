package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zakinadhif/cashierku/internal/domain/entity"
	errs "github.com/zakinadhif/cashierku/internal/domain/error"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/api/dto"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/logger"
	mockusecase "github.com/zakinadhif/cashierku/mocks/port/usecase"
)

func setupProductRouter(catalog *mockusecase.MockCatalogUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewProductHandler(catalog, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/products", h.ListProducts)
	router.POST("/products", h.CreateProduct)
	router.PUT("/products/:productId", h.UpdateProduct)
	router.DELETE("/products/:productId", h.DeleteProduct)
	return router
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("should return catalog with display prices", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockusecase.MockCatalogUseCase)
		mockCatalog.On("ListProducts", mock.Anything).Return([]entity.Product{
			{ID: 1, Code: "SKU-001", Name: "Coffee", Price: 2500},
			{ID: 2, Code: "SKU-002", Name: "Tea", Price: 1050},
		}, nil)

		router := setupProductRouter(mockCatalog)

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)

		var resp []dto.ProductResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "SKU-001", resp[0].Code)
		assert.Equal(t, "25.00", resp[0].PriceDisplay)
		assert.Equal(t, "10.50", resp[1].PriceDisplay)

		mockCatalog.AssertExpectations(t)
	})
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Run("should create product and return 201", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockusecase.MockCatalogUseCase)
		mockCatalog.On("CreateProduct", mock.Anything, "SKU-001", "Coffee", int64(2500)).
			Return(&entity.Product{ID: 7, Code: "SKU-001", Name: "Coffee", Price: 2500}, nil)

		router := setupProductRouter(mockCatalog)
		body, _ := json.Marshal(dto.CreateProductRequest{Code: "SKU-001", Name: "Coffee", Price: 2500})

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.ProductResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint64(7), resp.ID)

		mockCatalog.AssertExpectations(t)
	})

	t.Run("should return 409 for duplicate code", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockusecase.MockCatalogUseCase)
		mockCatalog.On("CreateProduct", mock.Anything, "SKU-001", "Coffee", int64(2500)).
			Return(nil, errs.NewDuplicateProductCodeError("SKU-001"))

		router := setupProductRouter(mockCatalog)
		body, _ := json.Marshal(dto.CreateProductRequest{Code: "SKU-001", Name: "Coffee", Price: 2500})

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusConflict, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.ErrorCode(errs.ErrDuplicateProductCode), resp.Code)
	})

	t.Run("should return 400 for malformed body without calling usecase", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockusecase.MockCatalogUseCase)
		router := setupProductRouter(mockCatalog)

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader([]byte(`{"name":"Coffee"}`)))
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockCatalog.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	t.Run("should return 404 when product does not exist", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockusecase.MockCatalogUseCase)
		mockCatalog.On("UpdateProduct", mock.Anything, uint64(42), "SKU-001", "Coffee", int64(2500)).
			Return(nil, errs.ErrProductNotFound)

		router := setupProductRouter(mockCatalog)
		body, _ := json.Marshal(dto.UpdateProductRequest{Code: "SKU-001", Name: "Coffee", Price: 2500})

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/products/42", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should return 400 for non-numeric product ID", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockusecase.MockCatalogUseCase)
		router := setupProductRouter(mockCatalog)
		body, _ := json.Marshal(dto.UpdateProductRequest{Code: "SKU-001", Name: "Coffee", Price: 2500})

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/products/abc", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockCatalog.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	t.Run("should return 204 on success", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockusecase.MockCatalogUseCase)
		mockCatalog.On("DeleteProduct", mock.Anything, uint64(7)).Return(nil)

		router := setupProductRouter(mockCatalog)

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/products/7", nil)
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, w.Code)
		mockCatalog.AssertExpectations(t)
	})

	t.Run("should return 409 when product is still referenced", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mockusecase.MockCatalogUseCase)
		mockCatalog.On("DeleteProduct", mock.Anything, uint64(7)).
			Return(errs.NewProductInUseError(7))

		router := setupProductRouter(mockCatalog)

		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/products/7", nil)
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusConflict, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.ErrorCode(errs.ErrProductInUse), resp.Code)
	})
}
