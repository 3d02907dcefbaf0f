package economy

// Error message formats
const (
	ErrMsgNoSeedsFmt      = "%w: no %s seeds"
	ErrMsgNeedGoldFmt     = "%w: need %d gold, have %d"
	ErrMsgDebitFailedFmt  = "failed to debit %s: %w"
	ErrMsgCreditFailedFmt = "failed to credit %s: %w"
	ErrMsgClearFailedFmt  = "failed to clear %s: %w"
)
