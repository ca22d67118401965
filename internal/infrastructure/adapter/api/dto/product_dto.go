package dto

import (
	"github.com/zakinadhif/cashierku/internal/domain/entity"
)

// CreateProductRequest represents the API request for creating a catalog product
type CreateProductRequest struct {
	Code  string `json:"code" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"min=0"`
}

// UpdateProductRequest represents the API request for updating a catalog product
type UpdateProductRequest struct {
	Code  string `json:"code" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"min=0"`
}

// ProductResponse represents a catalog product in API responses
type ProductResponse struct {
	ID           uint64 `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"priceDisplay"`
}

// NewProductResponse maps a product entity to its response shape
func NewProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           product.ID,
		Code:         product.Code,
		Name:         product.Name,
		Price:        product.Price,
		PriceDisplay: entity.AmountToString(product.Price),
	}
}

// NewProductListResponse maps a product slice to response shapes
func NewProductListResponse(products []entity.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, NewProductResponse(&products[i]))
	}
	return responses
}
