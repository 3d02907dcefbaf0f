package farm

// Action names used in logs and metrics
const (
	ActionPlant   = "plant"
	ActionHarvest = "harvest"
	ActionUpgrade = "upgrade"
	ActionSell    = "sell"
)

// Load sources
const (
	SourceStore    = "store"
	SourceSnapshot = "snapshot"
)

// Error messages
const (
	ErrMsgNoStore        = "no snapshot store configured"
	ErrMsgInvalidConfig  = "invalid farm config"
	ErrMsgEncodeSnapshot = "failed to encode snapshot"
	ErrMsgWriteSnapshot  = "failed to write snapshot"
	ErrMsgReadSnapshot   = "failed to read snapshot"
)

// Log messages
const (
	LogMsgPlanted         = "Seed planted"
	LogMsgHarvested       = "Crop harvested"
	LogMsgUpgraded        = "Tile upgraded"
	LogMsgSold            = "Harvest sold"
	LogMsgActionRejected  = "Action rejected"
	LogMsgSnapshotSaved   = "Farm snapshot persisted"
	LogMsgSnapshotLoaded  = "Farm snapshot loaded"
	LogMsgNoSnapshotFound = "No saved farm found, starting fresh"
	LogMsgPlantsDropped   = "Saved cells referenced unknown plants and were cleared"
	LogMsgFarmReset       = "Farm reset"
)
