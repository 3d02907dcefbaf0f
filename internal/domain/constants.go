package domain

import "time"

// Resource names as they appear in the persisted inventory
const (
	CurrencyGold      = "Gold"
	SeedsSuffix       = " Seeds"
	SnapshotVersion   = 1
	DefaultGridWidth  = 10
	DefaultGridHeight = 10
)

// Starting economy for a fresh farm
const (
	DefaultStartingGold  = 100
	DefaultStartingSeeds = 5
)

// Yield and upgrade curves
const (
	LevelYieldBase    = 1.1
	UpgradeCostBase   = 100.0
	UpgradeCostGrowth = 1.2
	DefaultSeasonMult = 1.0
)

// PlantedTimeResolution is the precision of planting times. Snapshots store
// Unix milliseconds, so cells never hold finer times than that.
const PlantedTimeResolution = time.Millisecond

// Display thresholds for tile glyphs
const (
	SproutProgressThreshold = 0.1
	GlyphSprout             = "."
	GlyphEmptyTile          = "_"
)

// DefaultAutosaveInterval is how often the farm is written to its store
const DefaultAutosaveInterval = 30 * time.Second
