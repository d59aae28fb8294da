package delivery

import (
	"errors"
	"net/http"

	"storefront/internal/clients"
	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response is the same {success, message, data} envelope the backend
// speaks, so page code handles both layers uniformly.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

func mapErrorToStatus(err error) int {
	if errors.Is(err, domain.ErrLoginRequired) {
		return http.StatusUnauthorized
	}

	var apiErr *clients.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= http.StatusBadRequest {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	}

	// Transport and decode failures land here.
	return http.StatusBadGateway
}
