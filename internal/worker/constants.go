package worker

import "time"

// WorkerNameAutosave names the autosave worker in logs
const WorkerNameAutosave = "autosave worker"

// Timeouts
const (
	DefaultSaveTimeout = 10 * time.Second
)

// Log messages
const (
	LogMsgShuttingDown      = "Shutting down worker"
	LogMsgShutdownComplete  = "Worker shutdown complete"
	LogMsgShutdownTimeout   = "Worker shutdown timeout"
	LogMsgAutosaveStarted   = "Autosave started"
	LogMsgAutosaveDisabled  = "Autosave disabled"
	LogMsgAutosaveFailed    = "Autosave failed"
	LogMsgAutosaveCompleted = "Autosave completed"
	LogMsgFinalSaveFailed   = "Final save on shutdown failed"
)
