package main

import (
	"log/slog"
	"os"

	"github.com/osse101/PlotFarm_Go/internal/bootstrap"
	"github.com/osse101/PlotFarm_Go/internal/config"
)

// initLogger sets up session logging, then reports environment warnings
// through it. The returned file must be closed on exit.
func initLogger(cfg *config.Config) (*os.File, error) {
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return nil, err
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, warning := range warnings {
		slog.Warn(warning)
	}
	return logFile, nil
}
