package domain

import "time"

// Season is one of the four labels gating planting and scaling yield
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
)

// AllSeasons lists the seasons in calendar order
var AllSeasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// IsValid reports whether s is one of the four known seasons
func (s Season) IsValid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return true
	}
	return false
}

// YieldRange is a base amount with a symmetric spread: base ± spread
type YieldRange struct {
	Base   int `json:"base"`
	Spread int `json:"range"`
}

// PlantDefinition is an immutable catalog entry
type PlantDefinition struct {
	Name           string             `json:"name"`
	GrowthDuration time.Duration      `json:"growth_duration"`
	SeedYield      YieldRange         `json:"seed_yield"`
	HarvestYield   YieldRange         `json:"harvest_yield"`
	SellPrice      int                `json:"sell_price"`
	ValidSeasons   []Season           `json:"valid_seasons"`
	SeasonBonus    map[Season]float64 `json:"season_bonus,omitempty"`
}

// GrowsIn reports whether the plant may be planted during season
func (p *PlantDefinition) GrowsIn(season Season) bool {
	for _, s := range p.ValidSeasons {
		if s == season {
			return true
		}
	}
	return false
}

// SeasonMultiplier returns the yield multiplier for season, 1 when unlisted
func (p *PlantDefinition) SeasonMultiplier(season Season) float64 {
	if mult, ok := p.SeasonBonus[season]; ok {
		return mult
	}
	return DefaultSeasonMult
}

// PlantInfo is the public listing of a catalog plant
type PlantInfo struct {
	Name          string             `json:"name"`
	GrowthSeconds int64              `json:"growth_seconds"`
	SellPrice     int                `json:"sell_price"`
	Seasons       []Season           `json:"seasons"`
	SeasonBonus   map[Season]float64 `json:"season_bonus,omitempty"`
	Plantable     bool               `json:"plantable"`
}
