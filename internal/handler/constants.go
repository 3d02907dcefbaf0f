package handler

import "time"

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgCorruptSaveError      = "Save data is corrupt"
	ErrMsgNoSaveError           = "No saved farm found"
	ErrMsgStoreUnavailable      = "snapshot store unreachable"
)

// User-facing result messages
const (
	MsgPlantedFmt      = "Planted %s"
	MsgHarvestedFmt    = "Harvested %s! +%d seeds, +%d crops"
	MsgUpgradedFmt     = "Upgraded tile to Lv.%d"
	MsgSoldFmt         = "Sold all crops for %d Gold!"
	MsgFarmSaved       = "Farm saved"
	MsgFarmLoaded      = "Farm loaded"
	MsgSnapshotApplied = "Snapshot applied"
)

// Health check values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	ReadinessTimeout        = 2 * time.Second
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode %s request"
	LogMsgRequestDecoded  = "%s request decoded"
	LogMsgActionFailed    = "Farm action failed"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
)

// Query parameters
const (
	QueryParamX         = "x"
	QueryParamY         = "y"
	QueryParamPlantable = "plantable"
)
