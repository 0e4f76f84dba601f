// Package main runs the interactive inventory console.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/platform/logger"
	"github.com/abgdnv/inventory/internal/product/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

// run loads the configuration, wires the application and serves the console on stdin/stdout.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs go to stderr so they never interleave with the menu.
	appLogger := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	appLogger.Debug("Configuration loaded", "config", cfg.String())

	ctx = logger.WithSessionID(ctx)
	deps := app.SetupDependencies(cfg, appLogger)
	console := app.SetupConsole(deps, os.Stdin, os.Stdout)

	if err := console.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
