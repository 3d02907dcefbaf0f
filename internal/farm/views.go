package farm

import (
	"context"

	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/season"
)

func (s *service) GetCellView(_ context.Context, x, y int) (*domain.CellView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cell, err := s.grid.Cell(x, y)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	view := &domain.CellView{
		X:           x,
		Y:           y,
		Level:       cell.Level(),
		UpgradeCost: cell.UpgradeCost(),
		Glyph:       cell.Glyph(now),
		Info:        cell.Describe(now),
	}
	if def := cell.PlantDef(); def != nil {
		name := def.Name
		progress, _ := cell.ProgressRatio(now)
		view.PlantName = &name
		view.Progress = &progress
		view.Remaining = cell.Remaining(now)
		view.RemainingMs = view.Remaining.Milliseconds()
		view.Ready = cell.IsReady(now)
	}
	return view, nil
}

func (s *service) GetBoard(_ context.Context) (*domain.BoardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	return &domain.BoardView{
		Season: season.Current(now),
		Gold:   s.ledger.Gold(),
		Width:  s.grid.Width(),
		Height: s.grid.Height(),
		Rows:   s.grid.Rows(now),
	}, nil
}

func (s *service) GetInventory(_ context.Context) (*domain.InventoryView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.ledger.View(s.catalog.Names())
	return &view, nil
}

func (s *service) ListPlants(_ context.Context, plantableOnly bool) ([]domain.PlantInfo, error) {
	return s.catalog.Infos(season.Current(s.clock.Now()), plantableOnly), nil
}
