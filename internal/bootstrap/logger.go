package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/PlotFarm_Go/internal/config"
	"github.com/osse101/PlotFarm_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// Old session logs beyond the retention count are removed first.
// Returns the log file handle (caller must close).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateLogDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
	logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenLogFile, err)
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.Version, cfg.Environment)
	logger.InitLogger(logCfg, io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel())
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigLoaded,
		"port", cfg.Port,
		"grid_width", cfg.GridWidth,
		"grid_height", cfg.GridHeight,
		"save_driver", cfg.SaveDriver,
		"autosave_interval", cfg.AutosaveInterval)

	return logFile, nil
}

// cleanupLogs keeps the newest keep session logs. Names embed a sortable
// timestamp, so lexical order is age order.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgOldLogDeleteFailed, "file", name, "error", err)
		}
	}
}
