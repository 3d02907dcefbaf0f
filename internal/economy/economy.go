// Package economy applies player actions to a cell and the ledger together.
// Every function either fully succeeds or leaves both untouched.
package economy

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/inventory"
	"github.com/osse101/PlotFarm_Go/internal/plot"
)

// PlantSeed spends one seed of def to plant it in cell.
// Seed stock is checked before the cell so an empty stock reports ErrNoSeeds.
func PlantSeed(cell *plot.Cell, def *domain.PlantDefinition, season domain.Season, now time.Time, ledger *inventory.Ledger) (*domain.PlantResult, error) {
	seedKey := domain.SeedKey(def.Name)
	if ledger.Get(seedKey) <= 0 {
		return nil, fmt.Errorf(ErrMsgNoSeedsFmt, domain.ErrNoSeeds, def.Name)
	}

	if err := cell.Plant(def, season, now); err != nil {
		return nil, err
	}
	if err := ledger.Debit(seedKey, 1); err != nil {
		// unreachable after the stock check, but keep the pair consistent
		cell.Restore(nil, time.Time{}, cell.Level())
		return nil, fmt.Errorf(ErrMsgDebitFailedFmt, seedKey, err)
	}

	return &domain.PlantResult{
		PlantName:      def.Name,
		SeedsRemaining: ledger.Get(seedKey),
		ReadyAt:        cell.ReadyAt(),
	}, nil
}

// HarvestCell collects a ready crop and credits its seeds and goods. If a
// credit is refused the cell and ledger are put back as they were.
func HarvestCell(cell *plot.Cell, season domain.Season, now time.Time, intn plot.IntRange, ledger *inventory.Ledger) (*domain.HarvestResult, error) {
	savedCell, savedLedger := *cell, ledger.Copy()

	result, err := cell.Harvest(season, now, intn)
	if err != nil {
		return nil, err
	}

	credits := []struct {
		key    domain.ResourceKey
		amount int
	}{
		{domain.SeedKey(result.PlantName), result.Seeds},
		{domain.HarvestedKey(result.PlantName), result.Harvested},
	}
	for _, c := range credits {
		if err := ledger.Credit(c.key, c.amount); err != nil {
			*cell = savedCell
			ledger.Restore(savedLedger)
			return nil, fmt.Errorf(ErrMsgCreditFailedFmt, c.key, err)
		}
	}
	return result, nil
}

// Upgrade pays the cell's upgrade cost in gold and raises its level.
func Upgrade(cell *plot.Cell, ledger *inventory.Ledger) (*domain.UpgradeResult, error) {
	cost := cell.UpgradeCost()
	gold := ledger.Gold()
	if gold < cost {
		return nil, fmt.Errorf(ErrMsgNeedGoldFmt, domain.ErrInsufficientFunds, cost, gold)
	}
	if err := ledger.Debit(domain.GoldKey, cost); err != nil {
		return nil, fmt.Errorf(ErrMsgDebitFailedFmt, domain.GoldKey, err)
	}
	cell.Upgrade()

	return &domain.UpgradeResult{
		Level:    cell.Level(),
		Cost:     cost,
		NextCost: cell.UpgradeCost(),
		Gold:     ledger.Gold(),
	}, nil
}

// SellAll sells every harvested good of the given plants at its sell price.
// Seed stock is untouched. Plants with nothing harvested are left out of Sold.
// On error the ledger is unchanged.
func SellAll(ledger *inventory.Ledger, plants []*domain.PlantDefinition) (*domain.SellResult, error) {
	saved := ledger.Copy()
	result := &domain.SellResult{Sold: make(map[string]int)}

	for _, p := range plants {
		key := domain.HarvestedKey(p.Name)
		if !ledger.Has(key) {
			continue
		}
		count := ledger.Get(key)
		if count > 0 {
			result.Sold[p.Name] = count
			result.TotalCredited = addSaturating(result.TotalCredited, mulSaturating(count, p.SellPrice))
		}
		if err := ledger.Set(key, 0); err != nil {
			ledger.Restore(saved)
			return nil, fmt.Errorf(ErrMsgClearFailedFmt, key, err)
		}
	}

	if err := ledger.Credit(domain.GoldKey, result.TotalCredited); err != nil {
		ledger.Restore(saved)
		return nil, fmt.Errorf(ErrMsgCreditFailedFmt, domain.GoldKey, err)
	}
	result.Gold = ledger.Gold()
	return result, nil
}

func mulSaturating(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

func addSaturating(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
