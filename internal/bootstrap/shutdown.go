package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PlotFarm_Go/internal/server"
	"github.com/osse101/PlotFarm_Go/internal/storage"
	"github.com/osse101/PlotFarm_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server         *server.Server
	AutosaveWorker *worker.AutosaveWorker
	Store          storage.Store
}

// GracefulShutdown stops accepting requests, lets the autosave worker write
// the final snapshot, then closes the store. Errors are logged and do not
// stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.AutosaveWorker != nil {
		if err := components.AutosaveWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
