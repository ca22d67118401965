package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/zakinadhif/cashierku/internal/domain/error"
	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	usecaseport "github.com/zakinadhif/cashierku/internal/domain/port/usecase"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles catalog-related HTTP requests
type ProductHandler struct {
	catalogService usecaseport.CatalogUseCase
	logger         coreport.Logger
}

// NewProductHandler creates a new product handler instance
func NewProductHandler(catalogService usecaseport.CatalogUseCase, logger coreport.Logger) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListProducts handles the GET /products endpoint
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductListResponse(products))
}

// CreateProduct handles the POST /products endpoint
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid product request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req.Code, req.Name, req.Price)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

// UpdateProduct handles the PUT /products/:productId endpoint
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.productIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid product request format", map[string]any{
			"product_id": id,
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, req.Code, req.Name, req.Price)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// DeleteProduct handles the DELETE /products/:productId endpoint
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.productIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// productIDParam extracts and validates the product ID path parameter
func (h *ProductHandler) productIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidProductID),
			Message: "Invalid product ID format",
		})
		return 0, false
	}
	return id, true
}

// respondError writes the mapped error response
func (h *ProductHandler) respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: messageForError(err),
	})
}
