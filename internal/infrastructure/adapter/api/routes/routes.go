package routes

import (
	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/api/handler"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	productHandler *handler.ProductHandler,
	transactionHandler *handler.TransactionHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	// Catalog routes
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", productHandler.ListProducts)
		productRoutes.POST("", productHandler.CreateProduct)
		productRoutes.PUT("/:productId", productHandler.UpdateProduct)
		productRoutes.DELETE("/:productId", productHandler.DeleteProduct)
	}

	// Ledger routes
	transactionRoutes := router.Group("/transactions")
	{
		transactionRoutes.GET("", transactionHandler.ListTransactions)
		transactionRoutes.POST("", transactionHandler.CreateTransaction)
		transactionRoutes.PUT("/:transactionId", transactionHandler.UpdateTransaction)
		transactionRoutes.DELETE("/:transactionId", transactionHandler.DeleteTransaction)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Applied in order: recovery first so everything below is covered
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
