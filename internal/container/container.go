// Package container wires the application dependencies together.
package container

import (
	"locman/internal/app"
	"locman/internal/config"
	"locman/internal/db"
	"locman/internal/handler"
	"locman/internal/router"
	"locman/internal/services"
	"locman/internal/store"

	"go.uber.org/dig"
)

// BuildContainer creates the dig container with all providers registered.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		config.NewManager,
		db.NewDB,
		store.NewStore,
		services.NewTranslationService,
		services.NewCSVImporter,
		handler.NewServer,
		router.NewRouter,
		app.NewApp,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}
