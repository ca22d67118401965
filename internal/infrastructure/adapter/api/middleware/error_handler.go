package middleware

import (
	"net/http"

	domainerr "github.com/zakinadhif/cashierku/internal/domain/error"
	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler turns handler panics into a masked 500 response instead of
// tearing down the connection
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			logger.Error("Panic recovered in API request", map[string]any{
				"panic":      recovered,
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"client_ip":  c.ClientIP(),
				"request_id": c.GetString(RequestIDKey),
			})

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
				Message: "Internal server error",
			})
		}()

		c.Next()
	}
}
