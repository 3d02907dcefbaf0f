package farm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotFarm_Go/internal/catalog"
	"github.com/osse101/PlotFarm_Go/internal/clock"
	"github.com/osse101/PlotFarm_Go/internal/domain"
)

// 11:00 UTC is Summer
var summerNoon = time.Date(2026, 7, 1, 11, 0, 0, 0, time.UTC)

func middle(min, max int) int { return min + (max-min)/2 }

func setupService(t *testing.T, opts ...Option) (Service, *clock.Fake) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	clk := clock.NewFake(summerNoon)
	opts = append([]Option{WithClock(clk), WithRandom(middle)}, opts...)
	svc, err := NewService(cat, DefaultConfig(), opts...)
	require.NoError(t, err)
	return svc, clk
}

func TestNewService_FreshFarm(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	inv, err := svc.GetInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, inv.Gold)
	require.Len(t, inv.Plants, 24)
	for _, p := range inv.Plants {
		assert.Equal(t, 5, p.Seeds, p.Plant)
		assert.Zero(t, p.Harvested, p.Plant)
	}
	assert.Len(t, inv.Entries, 49)

	board, err := svc.GetBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SeasonSummer, board.Season)
	assert.Equal(t, 10, board.Width)
	assert.Equal(t, 10, board.Height)
	assert.Equal(t, "__________", board.Rows[0])
}

func TestNewService_InvalidConfig(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	_, err = NewService(cat, Config{Width: 0, Height: 10})
	assert.Error(t, err)
}

func TestPlant(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	res, err := svc.Plant(ctx, 2, 3, "wheat")
	require.NoError(t, err)
	assert.Equal(t, "Wheat", res.PlantName)
	assert.Equal(t, 4, res.SeedsRemaining)
	assert.Equal(t, summerNoon.Add(2*time.Minute), res.ReadyAt)

	view, err := svc.GetCellView(ctx, 2, 3)
	require.NoError(t, err)
	require.NotNil(t, view.PlantName)
	assert.Equal(t, "Wheat", *view.PlantName)
}

func TestPlant_Rejections(t *testing.T) {
	svc, clk := setupService(t)
	ctx := context.Background()

	_, err := svc.Plant(ctx, 0, 0, "Wheat")
	require.NoError(t, err)
	before, err := svc.GetInventory(ctx)
	require.NoError(t, err)

	tests := []struct {
		name  string
		x, y  int
		plant string
		want  error
	}{
		{"occupied", 0, 0, "Wheat", domain.ErrCellOccupied},
		{"unknown plant", 1, 0, "Dragonfruit", domain.ErrUnknownPlant},
		{"out of bounds", 10, 0, "Wheat", domain.ErrOutOfBounds},
		{"negative coords", -1, 0, "Wheat", domain.ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Plant(ctx, tt.x, tt.y, tt.plant)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrInvalidAction)
		})
	}

	// 09:00 is Spring; Tomato only grows in Summer
	clk.Set(time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC))
	_, err = svc.Plant(ctx, 1, 1, "Tomato")
	assert.ErrorIs(t, err, domain.ErrWrongSeason)

	after, err := svc.GetInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "rejected actions leave inventory untouched")
}

func TestPlant_RunsOutOfSeeds(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	for x := 0; x < 5; x++ {
		_, err := svc.Plant(ctx, x, 0, "Corn")
		require.NoError(t, err)
	}
	_, err := svc.Plant(ctx, 5, 0, "Corn")
	assert.ErrorIs(t, err, domain.ErrNoSeeds)

	view, err := svc.GetCellView(ctx, 5, 0)
	require.NoError(t, err)
	assert.Nil(t, view.PlantName)
}

func TestHarvest(t *testing.T) {
	svc, clk := setupService(t)
	ctx := context.Background()

	_, err := svc.Harvest(ctx, 0, 0)
	assert.ErrorIs(t, err, domain.ErrCellEmpty)

	_, err = svc.Plant(ctx, 0, 0, "Wheat")
	require.NoError(t, err)

	clk.Advance(119 * time.Second)
	_, err = svc.Harvest(ctx, 0, 0)
	assert.ErrorIs(t, err, domain.ErrNotReady)

	clk.Advance(time.Second)
	res, err := svc.Harvest(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, &domain.HarvestResult{PlantName: "Wheat", Seeds: 5, Harvested: 10}, res)

	inv, err := svc.GetInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4+5, inv.Entries["Wheat Seeds"])
	assert.Equal(t, 10, inv.Entries["Wheat"])

	view, err := svc.GetCellView(ctx, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, view.PlantName)
	assert.Equal(t, "Empty | Upgrade Lv. 0", view.Info)
}

func TestHarvest_SeasonBonus(t *testing.T) {
	svc, clk := setupService(t)
	ctx := context.Background()

	_, err := svc.Plant(ctx, 0, 0, "Tomato")
	require.NoError(t, err)
	clk.Advance(8 * time.Minute)

	res, err := svc.Harvest(ctx, 0, 0)
	require.NoError(t, err)
	// floor(3 * 1.5), floor(7 * 1.5)
	assert.Equal(t, 4, res.Seeds)
	assert.Equal(t, 10, res.Harvested)
}

func TestUpgrade(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	res, err := svc.Upgrade(ctx, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Level)
	assert.Equal(t, 100, res.Cost)
	assert.Equal(t, 120, res.NextCost)
	assert.Zero(t, res.Gold)

	_, err = svc.Upgrade(ctx, 4, 4)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	view, err := svc.GetCellView(ctx, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Level)
	assert.Equal(t, 120, view.UpgradeCost)
}

func TestSellAll(t *testing.T) {
	svc, clk := setupService(t)
	ctx := context.Background()

	_, err := svc.Plant(ctx, 0, 0, "Wheat")
	require.NoError(t, err)
	clk.Advance(2 * time.Minute)
	_, err = svc.Harvest(ctx, 0, 0)
	require.NoError(t, err)

	res, err := svc.SellAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, res.TotalCredited)
	assert.Equal(t, map[string]int{"Wheat": 10}, res.Sold)
	assert.Equal(t, 140, res.Gold)

	inv, err := svc.GetInventory(ctx)
	require.NoError(t, err)
	assert.Zero(t, inv.Entries["Wheat"])
	assert.Equal(t, 9, inv.Entries["Wheat Seeds"])

	res, err = svc.SellAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.TotalCredited)
}

func TestGetCellView(t *testing.T) {
	svc, clk := setupService(t)
	ctx := context.Background()

	_, err := svc.GetCellView(ctx, 10, 10)
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)

	_, err = svc.Plant(ctx, 1, 1, "Wheat")
	require.NoError(t, err)
	clk.Advance(time.Minute)

	view, err := svc.GetCellView(ctx, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, view.Progress)
	assert.InDelta(t, 0.5, *view.Progress, 1e-9)
	assert.Equal(t, time.Minute, view.Remaining)
	assert.Equal(t, int64(60000), view.RemainingMs)
	assert.False(t, view.Ready)
	assert.Equal(t, "w", view.Glyph)
	assert.Equal(t, "Wheat | 60s left | Lv. 0", view.Info)

	clk.Advance(time.Minute)
	view, err = svc.GetCellView(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, view.Ready)
	assert.Equal(t, "W", view.Glyph)

	board, err := svc.GetBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "_W________", board.Rows[1])
}

func TestListPlants(t *testing.T) {
	svc, clk := setupService(t)
	ctx := context.Background()

	all, err := svc.ListPlants(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 24)

	// 16:00 is Winter
	clk.Set(time.Date(2026, 7, 1, 16, 0, 0, 0, time.UTC))
	assert.Equal(t, domain.SeasonWinter, svc.Season(ctx))

	winter, err := svc.ListPlants(ctx, true)
	require.NoError(t, err)
	require.Len(t, winter, 1)
	assert.Equal(t, "Wheat", winter[0].Name)
}

func TestReset(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Plant(ctx, 0, 0, "Wheat")
	require.NoError(t, err)
	_, err = svc.Upgrade(ctx, 1, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))

	inv, err := svc.GetInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, inv.Gold)
	assert.Equal(t, 5, inv.Entries["Wheat Seeds"])
	view, err := svc.GetCellView(ctx, 1, 1)
	require.NoError(t, err)
	assert.Zero(t, view.Level)
}

func TestConcurrentPlantSameCell(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Plant(ctx, 3, 3, "Wheat"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	inv, err := svc.GetInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, inv.Entries["Wheat Seeds"], "exactly one seed spent")
}
