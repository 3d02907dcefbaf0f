package bootstrap

import "time"

// File system permissions
const (
	DirPermission     = 0o755
	LogFilePermission = 0o644
)

// Logger configuration
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	// LogFileRetentionCount old files survive each start, plus the new one
	LogFileRetentionCount = 9
)

// Shutdown
const (
	DefaultShutdownTimeout = 15 * time.Second
)

// Error messages
const (
	ErrMsgCreateLogDir = "failed to create logs directory"
	ErrMsgOpenLogFile  = "failed to open log file"
	ErrMsgLoadCatalog  = "failed to load plant catalog"
	ErrMsgOpenStore    = "failed to open snapshot store"
	ErrMsgCreateFarm   = "failed to create farm"
	ErrMsgRestoreFarm  = "failed to restore saved farm"
)

// Log messages
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStarting             = "Starting PlotFarm"
	LogMsgConfigLoaded         = "Configuration loaded"
	LogMsgOldLogDeleteFailed   = "Failed to delete old log file"
	LogMsgFarmRestored         = "Saved farm restored"
	LogMsgFreshFarm            = "Starting a fresh farm"
	LogMsgCorruptSave          = "Saved farm is corrupt; fix or remove it, or run cmd/reset -force"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgWorkerShutdownFailed = "Autosave worker shutdown failed"
	LogMsgStoreCloseFailed     = "Failed to close snapshot store"
	LogMsgServerStopped        = "Server stopped"
)
