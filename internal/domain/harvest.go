package domain

import "time"

// HarvestResult is what a ready cell produced
type HarvestResult struct {
	PlantName string `json:"plant"`
	Seeds     int    `json:"seeds"`
	Harvested int    `json:"harvest_amount"`
}

// PlantResult reports a successful planting
type PlantResult struct {
	PlantName      string    `json:"plant"`
	SeedsRemaining int       `json:"seeds_remaining"`
	ReadyAt        time.Time `json:"ready_at"`
}

// UpgradeResult reports a successful tile upgrade
type UpgradeResult struct {
	Level    int `json:"level"`
	Cost     int `json:"cost"`
	NextCost int `json:"next_cost"`
	Gold     int `json:"gold"`
}

// SellResult reports the outcome of selling every harvested good
type SellResult struct {
	TotalCredited int            `json:"total_credited"`
	Sold          map[string]int `json:"sold"`
	Gold          int            `json:"gold"`
}

// CellView is the read model of one grid cell
type CellView struct {
	X           int           `json:"x"`
	Y           int           `json:"y"`
	PlantName   *string       `json:"plant"`
	Progress    *float64      `json:"progress"`
	Level       int           `json:"level"`
	Remaining   time.Duration `json:"-"`
	RemainingMs int64         `json:"remaining_ms"`
	Ready       bool          `json:"ready"`
	UpgradeCost int           `json:"upgrade_cost"`
	Glyph       string        `json:"glyph"`
	Info        string        `json:"info"`
}

// BoardView is the whole farm at a glance
type BoardView struct {
	Season Season   `json:"season"`
	Gold   int      `json:"gold"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}
