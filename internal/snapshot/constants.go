package snapshot

// Error messages
const (
	ErrMsgDecodeFailed       = "failed to decode snapshot"
	ErrMsgEncodeFailed       = "failed to encode snapshot"
	ErrMsgUnsupportedVersion = "unsupported snapshot version %d"
	ErrMsgEmptyFarm          = "farm has no rows"
	ErrMsgRaggedFarm         = "row %d has %d cells, expected %d"
	ErrMsgNegativeLevel      = "cell (%d, %d) has negative level %d"
	ErrMsgBadInventory       = "bad inventory"
	ErrMsgMissingInventory   = "inventory is missing"
)
