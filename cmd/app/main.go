package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/PlotFarm_Go/internal/bootstrap"
	"github.com/osse101/PlotFarm_Go/internal/config"
	"github.com/osse101/PlotFarm_Go/internal/handler"
	"github.com/osse101/PlotFarm_Go/internal/server"
	"github.com/osse101/PlotFarm_Go/internal/worker"
)

// @title PlotFarm API
// @version 1.0
// @description Grid farming game: plant, harvest, upgrade tiles and sell crops.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("PlotFarm exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if handler.Version == "dev" && cfg.Version != "" {
		handler.Version = cfg.Version
	}

	logFile, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	farmService, store, err := bootstrap.BuildFarm(ctx, cfg)
	if err != nil {
		return err
	}
	if err := bootstrap.RestoreFarm(ctx, farmService); err != nil {
		_ = store.Close()
		return err
	}

	autosave := worker.NewAutosaveWorker(farmService, cfg.AutosaveInterval)
	autosave.Start()

	srv := server.NewServer(server.Config{Port: cfg.Port, APIKey: cfg.APIKey}, farmService, store)
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err = <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:         srv,
		AutosaveWorker: autosave,
		Store:          store,
	})
	return err
}
