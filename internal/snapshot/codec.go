// Package snapshot converts between the live farm and its persisted form.
//
// The layout is:
//
//	{ "version": 1,
//	  "farm": [[{"plant": "Wheat"|null, "plantedTime": <unix ms>|null, "level": 0}, ...], ...],
//	  "inventory": {"Gold": 100, "Wheat": 0, "Wheat Seeds": 5, ...} }
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/inventory"
	"github.com/osse101/PlotFarm_Go/internal/plot"
)

// PlantLookup resolves persisted plant names. *catalog.Catalog satisfies it.
type PlantLookup interface {
	Get(name string) (*domain.PlantDefinition, bool)
}

// Report describes repairs made while decoding.
type Report struct {
	DroppedPlants []string // names not found in the catalog
	ClearedCells  int      // cells emptied because their plant or time was unusable
}

// Serialize captures the grid and ledger.
func Serialize(grid *plot.Grid, ledger *inventory.Ledger) domain.SaveSnapshot {
	farm := make([][]domain.SavedCell, grid.Height())
	for y := range farm {
		farm[y] = make([]domain.SavedCell, grid.Width())
	}

	grid.Each(func(x, y int, c *plot.Cell) {
		level := c.Level()
		saved := domain.SavedCell{Level: &level}
		if def := c.PlantDef(); def != nil {
			name := def.Name
			ms := c.PlantedAt().UnixMilli()
			saved.Plant = &name
			saved.PlantedTime = &ms
		}
		farm[y][x] = saved
	})

	return domain.SaveSnapshot{
		Version:   domain.SnapshotVersion,
		Farm:      farm,
		Inventory: ledger.ToMap(),
	}
}

// Deserialize rebuilds a grid and ledger. The grid takes the snapshot's
// dimensions. Cells naming an unknown plant, or a plant without a planting
// time, come back empty with their level kept. A missing level reads as 0.
// Structural problems return domain.ErrCorruptSave and nothing else.
func Deserialize(snap domain.SaveSnapshot, plants PlantLookup) (*plot.Grid, *inventory.Ledger, *Report, error) {
	if err := checkShape(snap); err != nil {
		return nil, nil, nil, err
	}

	grid, err := plot.NewGrid(len(snap.Farm[0]), len(snap.Farm))
	if err != nil {
		return nil, nil, nil, corrupt("%v", err)
	}

	report := &Report{}
	dropped := make(map[string]bool)

	for y, row := range snap.Farm {
		for x, saved := range row {
			level := 0
			if saved.Level != nil {
				level = *saved.Level
			}
			if level < 0 {
				return nil, nil, nil, corrupt(ErrMsgNegativeLevel, x, y, level)
			}

			var def *domain.PlantDefinition
			var plantedAt time.Time
			if saved.Plant != nil {
				found, ok := plants.Get(*saved.Plant)
				switch {
				case !ok:
					if !dropped[*saved.Plant] {
						dropped[*saved.Plant] = true
						report.DroppedPlants = append(report.DroppedPlants, *saved.Plant)
					}
					report.ClearedCells++
				case saved.PlantedTime == nil:
					report.ClearedCells++
				default:
					def = found
					plantedAt = time.UnixMilli(*saved.PlantedTime)
				}
			}

			cell, _ := grid.Cell(x, y)
			cell.Restore(def, plantedAt, level)
		}
	}

	ledger, err := inventory.FromMap(snap.Inventory)
	if err != nil {
		return nil, nil, nil, corrupt("%s: %v", ErrMsgBadInventory, err)
	}

	return grid, ledger, report, nil
}

func checkShape(snap domain.SaveSnapshot) error {
	version := snap.Version
	if version == 0 {
		version = 1
	}
	if version != domain.SnapshotVersion {
		return corrupt(ErrMsgUnsupportedVersion, snap.Version)
	}
	if len(snap.Farm) == 0 || len(snap.Farm[0]) == 0 {
		return corrupt(ErrMsgEmptyFarm)
	}
	width := len(snap.Farm[0])
	for y, row := range snap.Farm {
		if len(row) != width {
			return corrupt(ErrMsgRaggedFarm, y, len(row), width)
		}
	}
	if snap.Inventory == nil {
		return corrupt(ErrMsgMissingInventory)
	}
	return nil
}

// Marshal encodes a snapshot as JSON.
func Marshal(snap domain.SaveSnapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeFailed, err)
	}
	return data, nil
}

// Unmarshal decodes JSON into a snapshot. Malformed input is domain.ErrCorruptSave.
func Unmarshal(data []byte) (domain.SaveSnapshot, error) {
	var snap domain.SaveSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.SaveSnapshot{}, fmt.Errorf("%w: %s: %v", domain.ErrCorruptSave, ErrMsgDecodeFailed, err)
	}
	return snap, nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrCorruptSave, fmt.Sprintf(format, args...))
}
