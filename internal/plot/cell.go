// Package plot models farm tiles and the grid that holds them.
//
// A Cell is either Empty or Planted; growth is a pure function of the
// planting time and the current time, so nothing ticks.
package plot

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/utils"
)

// IntRange returns a uniformly distributed integer in [min, max].
type IntRange func(min, max int) int

// Cell is one farm tile. The zero value is an empty level-0 tile.
type Cell struct {
	plant     *domain.PlantDefinition
	plantedAt time.Time
	level     int
}

// Plant places def into the cell. The cell is unchanged on error. The planting
// time is truncated to domain.PlantedTimeResolution.
func (c *Cell) Plant(def *domain.PlantDefinition, season domain.Season, now time.Time) error {
	if c.plant != nil {
		return domain.ErrCellOccupied
	}
	if !def.GrowsIn(season) {
		return fmt.Errorf("%w: %s in %s", domain.ErrWrongSeason, def.Name, season)
	}
	c.plant = def
	c.plantedAt = now.Truncate(domain.PlantedTimeResolution)
	return nil
}

// IsEmpty reports whether nothing is planted.
func (c *Cell) IsEmpty() bool { return c.plant == nil }

// PlantDef returns the growing plant, nil when empty.
func (c *Cell) PlantDef() *domain.PlantDefinition { return c.plant }

func (c *Cell) PlantedAt() time.Time { return c.plantedAt }

func (c *Cell) Level() int { return c.level }

// ReadyAt is when the crop becomes harvestable. Zero for empty cells.
func (c *Cell) ReadyAt() time.Time {
	if c.plant == nil {
		return time.Time{}
	}
	return c.plantedAt.Add(c.plant.GrowthDuration)
}

// IsReady reports whether a crop is planted and fully grown at now.
func (c *Cell) IsReady(now time.Time) bool {
	if c.plant == nil {
		return false
	}
	return now.Sub(c.plantedAt) >= c.plant.GrowthDuration
}

// ProgressRatio is elapsed growth over total growth, clamped to [0, 1].
// The bool is false for empty cells.
func (c *Cell) ProgressRatio(now time.Time) (float64, bool) {
	if c.plant == nil {
		return 0, false
	}
	elapsed := now.Sub(c.plantedAt)
	switch {
	case elapsed <= 0:
		return 0, true
	case elapsed >= c.plant.GrowthDuration:
		return 1, true
	}
	return float64(elapsed) / float64(c.plant.GrowthDuration), true
}

// Remaining is the growth time left, never negative.
func (c *Cell) Remaining(now time.Time) time.Duration {
	if c.plant == nil {
		return 0
	}
	left := c.plant.GrowthDuration - now.Sub(c.plantedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Harvest collects a ready crop and empties the cell, keeping its level.
// Yields are floor(rand(base±spread) * 1.1^level * seasonBonus), never
// below zero.
func (c *Cell) Harvest(season domain.Season, now time.Time, intn IntRange) (*domain.HarvestResult, error) {
	if c.plant == nil {
		return nil, domain.ErrCellEmpty
	}
	if !c.IsReady(now) {
		return nil, fmt.Errorf("%w: %s needs %s more", domain.ErrNotReady, c.plant.Name, c.Remaining(now).Round(time.Second))
	}

	levelBonus := math.Pow(domain.LevelYieldBase, float64(c.level))
	seasonMult := c.plant.SeasonMultiplier(season)

	result := &domain.HarvestResult{
		PlantName: c.plant.Name,
		Seeds:     scaleYield(utils.RandomRange(intn, c.plant.SeedYield.Base, c.plant.SeedYield.Spread), levelBonus, seasonMult),
		Harvested: scaleYield(utils.RandomRange(intn, c.plant.HarvestYield.Base, c.plant.HarvestYield.Spread), levelBonus, seasonMult),
	}

	c.plant = nil
	c.plantedAt = time.Time{}
	return result, nil
}

func scaleYield(raw int, levelBonus, seasonMult float64) int {
	amount := utils.SaturatingInt(math.Floor(float64(raw) * levelBonus * seasonMult))
	if amount < 0 {
		return 0
	}
	return amount
}

// UpgradeCost is floor(100 * 1.2^level), saturating at math.MaxInt.
func (c *Cell) UpgradeCost() int {
	return UpgradeCostAt(c.level)
}

// UpgradeCostAt is the cost to upgrade a tile from level.
func UpgradeCostAt(level int) int {
	return utils.SaturatingInt(math.Floor(domain.UpgradeCostBase * math.Pow(domain.UpgradeCostGrowth, float64(level))))
}

// Upgrade raises the level by one. Payment is the caller's job.
func (c *Cell) Upgrade() {
	if c.level < math.MaxInt {
		c.level++
	}
}

// Restore overwrites the cell with decoded state. A nil def empties the cell.
func (c *Cell) Restore(def *domain.PlantDefinition, plantedAt time.Time, level int) {
	c.plant = def
	c.plantedAt = plantedAt.Truncate(domain.PlantedTimeResolution)
	if def == nil {
		c.plantedAt = time.Time{}
	}
	c.level = level
}

// Glyph is the one-character board symbol: empty string for empty cells,
// "." for a fresh sprout, the plant initial in lower case while growing and
// upper case when ready.
func (c *Cell) Glyph(now time.Time) string {
	if c.plant == nil {
		return ""
	}
	progress, _ := c.ProgressRatio(now)
	if progress < domain.SproutProgressThreshold {
		return domain.GlyphSprout
	}
	initial := firstRune(c.plant.Name)
	if progress >= 1 {
		return strings.ToUpper(initial)
	}
	return strings.ToLower(initial)
}

// Describe renders the tile info line, e.g. "Wheat | 12s left | Lv. 0".
func (c *Cell) Describe(now time.Time) string {
	if c.plant == nil {
		return fmt.Sprintf(infoEmptyFormat, c.level)
	}
	secs := int64(c.Remaining(now) / time.Second)
	return fmt.Sprintf(infoPlantedFormat, c.plant.Name, secs, c.level)
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
