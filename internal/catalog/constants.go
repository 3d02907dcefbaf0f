package catalog

import "time"

// Suggestion cache sizing
const (
	suggestionCacheSize = 256
	suggestionCacheTTL  = 10 * time.Minute
)

// Error messages
const (
	ErrMsgReadCatalog      = "failed to read catalog file"
	ErrMsgParseCatalog     = "failed to parse catalog"
	ErrMsgValidateCatalog  = "catalog validation failed"
	ErrMsgDuplicatePlant   = "duplicate plant name"
	ErrMsgNoSeasons        = "plant has no valid seasons"
	ErrMsgUnknownSeason    = "unknown season label"
	ErrMsgBadSeasonBonus   = "season bonus must be positive"
	ErrMsgBadGrowthTime    = "growth time must be positive"
	ErrMsgNegativeYield    = "yield values must not be negative"
	ErrMsgEmptyCatalog     = "catalog has no plants"
	ErrMsgDidYouMean       = "did you mean %q?"
	ErrMsgUnknownPlantName = "%w: %q"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Plant catalog loaded"
	LogMsgEmbeddedUsed  = "Using embedded plant catalog"
)
