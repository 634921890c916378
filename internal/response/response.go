// Package response provides standardized JSON response helpers.
package response

import (
	"net/http"

	app_errors "locman/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope returned for any non-2xx response.
type ErrorResponse struct {
	Detail     string `json:"detail"`
	StatusCode int    `json:"status_code"`
}

// APIResponse is the envelope for operations that report an outcome message
// rather than a resource (delete, bulk update, CSV import).
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success sends a 200 response with the payload as the body.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the payload as the body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends a standardized error envelope from an APIError.
func Error(c *gin.Context, apiErr *app_errors.APIError) {
	c.JSON(apiErr.HTTPStatus, ErrorResponse{
		Detail:     apiErr.Message,
		StatusCode: apiErr.HTTPStatus,
	})
}
