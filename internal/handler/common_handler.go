package handler

import (
	"net/http"

	"locman/internal/i18n"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: i18n.Message(c, "health.ok"),
	})
}
