package storage

// Defaults
const (
	DefaultSlot       = "farm"
	DefaultFilePath   = "data/farm.json"
	DefaultSQLitePath = "data/farm.db"
	DefaultS3Region   = "us-east-1"
	DefaultS3Key      = "plotfarm/farm.json"
	DefaultGdataApp   = "plotfarm"
	snapshotFileMode  = 0o600
	snapshotDirMode   = 0o750
	snapshotMediaType = "application/json"
)

// gdata object layout: two payload slots plus a pointer to the live one
const (
	gdataObject     = "save"
	gdataSlotA      = "slot_a"
	gdataSlotB      = "slot_b"
	gdataActiveProp = "active"
)

// Error messages
const (
	ErrMsgUnknownDriver     = "unknown save driver %q"
	ErrMsgReadFailed        = "failed to read snapshot"
	ErrMsgWriteFailed       = "failed to write snapshot"
	ErrMsgOpenFailed        = "failed to open %s store"
	ErrMsgMigrateFailed     = "failed to migrate database"
	ErrMsgBucketRequired    = "s3 bucket required"
	ErrMsgDatabaseRequired  = "database url required"
	ErrMsgBeginTxFailed     = "failed to begin transaction"
	ErrMsgCommitTxFailed    = "failed to commit transaction"
	ErrMsgCorruptSlotMarker = "invalid active slot marker %q"
)

// Log messages
const (
	LogMsgStoreOpened    = "Snapshot store opened"
	LogMsgRollbackFailed = "Failed to rollback transaction"
)
