// Package handler provides HTTP handlers for the application
package handler

import (
	app_errors "locman/internal/errors"
	"locman/internal/response"
	"locman/internal/services"
	"locman/internal/store"
	"locman/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/dig"
	"gorm.io/gorm"
)

// Server holds the handlers' shared dependencies.
type Server struct {
	DB                 *gorm.DB
	config             types.ConfigManager
	Storage            store.Store
	TranslationService *services.TranslationService
	CSVImporter        *services.CSVImporter
}

// ServerParams defines the dependencies for the Server.
type ServerParams struct {
	dig.In
	DB                 *gorm.DB
	Config             types.ConfigManager
	Storage            store.Store
	TranslationService *services.TranslationService
	CSVImporter        *services.CSVImporter
}

// NewServer creates a Server with injected dependencies.
func NewServer(params ServerParams) *Server {
	return &Server{
		DB:                 params.DB,
		config:             params.Config,
		Storage:            params.Storage,
		TranslationService: params.TranslationService,
		CSVImporter:        params.CSVImporter,
	}
}

// HandleServiceError writes an error response when err is non-nil. Returns
// true when the request has been answered and the handler should stop.
func HandleServiceError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	apiErr := app_errors.ParseDBError(err)
	if apiErr.HTTPStatus >= 500 {
		logrus.WithError(err).Error("Service operation failed")
	}
	response.Error(c, apiErr)
	return true
}
