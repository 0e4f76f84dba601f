// Package app contains the application setup for the inventory console.
package app

import (
	"io"
	"log/slog"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/product/handler"
	"github.com/abgdnv/inventory/internal/product/repository"
	"github.com/abgdnv/inventory/internal/product/service"
	"github.com/abgdnv/inventory/internal/product/store"
)

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
}

// SetupDependencies builds the store, the file repository and the service for one session.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	pService := service.NewService(
		store.NewInMemoryStore(cfg.Storage.Capacity),
		repository.NewFileProductRepository(cfg.Storage.File),
		logger,
	)

	return &Dependencies{
		ProductService: pService,
		Logger:         logger,
	}
}

// SetupConsole creates the interactive console over the given input and output.
func SetupConsole(deps *Dependencies, in io.Reader, out io.Writer) *handler.Console {
	return handler.NewConsole(deps.ProductService, in, out, deps.Logger)
}
