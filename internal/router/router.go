// Package router builds the gin engine and registers all routes.
package router

import (
	"strings"

	app_errors "locman/internal/errors"
	"locman/internal/handler"
	"locman/internal/i18n"
	"locman/internal/middleware"
	"locman/internal/response"
	"locman/internal/types"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// NewRouter creates the gin engine with all middleware and routes registered.
func NewRouter(server *handler.Server, configManager types.ConfigManager) *gin.Engine {
	logConfig := configManager.GetLogConfig()
	if logConfig.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(logConfig))
	engine.Use(middleware.CORS(configManager.GetCORSConfig()))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(i18n.Middleware())

	engine.GET("/health", server.Health)
	engine.GET("/categories", server.GetCategories)
	engine.GET("/localizations/:project_id/:locale", server.GetLocalizations)

	keys := engine.Group("/translation-keys")
	{
		keys.GET("", server.ListTranslationKeys)
		keys.POST("", server.CreateTranslationKey)
		keys.GET("/:id", server.GetTranslationKey)
		keys.DELETE("/:id", server.DeleteTranslationKey)
		keys.GET("/:id/translations", server.ListTranslationsForKey)
		keys.GET("/:id/translations/:locale", server.GetTranslation)
		keys.PUT("/:id/translations/:locale", server.UpsertTranslation)

		// gin's routing tree cannot hold the static "bulk" segment next to
		// the ":id" wildcard within the same method, so PUT and POST routes
		// under /:id dispatch manually.
		keys.PUT("/:id", func(c *gin.Context) {
			if c.Param("id") == "bulk" {
				server.BulkUpdateTranslations(c)
				return
			}
			server.UpdateTranslationKey(c)
		})
		keys.POST("/:id/*subpath", func(c *gin.Context) {
			subpath := strings.TrimPrefix(c.Param("subpath"), "/")
			switch {
			case c.Param("id") == "bulk" && subpath == "csv":
				server.ImportCSV(c)
			case strings.HasPrefix(subpath, "translations/"):
				locale := strings.TrimPrefix(subpath, "translations/")
				if locale == "" || strings.Contains(locale, "/") {
					response.Error(c, app_errors.ErrResourceNotFound)
					return
				}
				c.Params = append(c.Params, gin.Param{Key: "locale", Value: locale})
				server.CreateTranslation(c)
			default:
				response.Error(c, app_errors.ErrResourceNotFound)
			}
		})
	}

	return engine
}
