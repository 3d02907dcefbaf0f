// Package farm is the simulation context: it owns the grid, ledger, catalog
// and clock, and serializes every player action behind one lock.
package farm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PlotFarm_Go/internal/catalog"
	"github.com/osse101/PlotFarm_Go/internal/clock"
	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/economy"
	"github.com/osse101/PlotFarm_Go/internal/inventory"
	"github.com/osse101/PlotFarm_Go/internal/logger"
	"github.com/osse101/PlotFarm_Go/internal/metrics"
	"github.com/osse101/PlotFarm_Go/internal/plot"
	"github.com/osse101/PlotFarm_Go/internal/season"
	"github.com/osse101/PlotFarm_Go/internal/utils"
)

// Service defines the farm operations
type Service interface {
	Plant(ctx context.Context, x, y int, plantName string) (*domain.PlantResult, error)
	Harvest(ctx context.Context, x, y int) (*domain.HarvestResult, error)
	Upgrade(ctx context.Context, x, y int) (*domain.UpgradeResult, error)
	SellAll(ctx context.Context) (*domain.SellResult, error)

	GetCellView(ctx context.Context, x, y int) (*domain.CellView, error)
	GetBoard(ctx context.Context) (*domain.BoardView, error)
	GetInventory(ctx context.Context) (*domain.InventoryView, error)
	ListPlants(ctx context.Context, plantableOnly bool) ([]domain.PlantInfo, error)
	Season(ctx context.Context) domain.Season

	Save(ctx context.Context) domain.SaveSnapshot
	Load(ctx context.Context, snap domain.SaveSnapshot) error
	Persist(ctx context.Context) error
	Restore(ctx context.Context) (bool, error)
	Reset(ctx context.Context) error
}

// SnapshotStore persists encoded snapshots. storage.Store satisfies it.
type SnapshotStore interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// Config sizes a fresh farm.
type Config struct {
	Width         int `validate:"min=1,max=100"`
	Height        int `validate:"min=1,max=100"`
	StartingGold  int `validate:"min=0"`
	StartingSeeds int `validate:"min=0"`
}

// DefaultConfig is the classic 10x10 farm with 100 gold and 5 of each seed.
func DefaultConfig() Config {
	return Config{
		Width:         domain.DefaultGridWidth,
		Height:        domain.DefaultGridHeight,
		StartingGold:  domain.DefaultStartingGold,
		StartingSeeds: domain.DefaultStartingSeeds,
	}
}

// Option customizes a service
type Option func(*service)

// WithClock replaces the wall clock.
func WithClock(c clock.Clock) Option {
	return func(s *service) { s.clock = c }
}

// WithRandom replaces the yield random source.
func WithRandom(intn plot.IntRange) Option {
	return func(s *service) { s.intn = intn }
}

// WithStore sets where Persist and Restore go.
func WithStore(store SnapshotStore, driver string) Option {
	return func(s *service) {
		s.store = store
		s.storeDriver = driver
	}
}

type service struct {
	mu     sync.Mutex
	grid   *plot.Grid
	ledger *inventory.Ledger

	catalog     *catalog.Catalog
	cfg         Config
	clock       clock.Clock
	intn        plot.IntRange
	store       SnapshotStore
	storeDriver string
}

// NewService creates a farm with a fresh grid and starting inventory.
func NewService(cat *catalog.Catalog, cfg Config, opts ...Option) (Service, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	s := &service{
		catalog: cat,
		cfg:     cfg,
		clock:   clock.RealClock{},
		intn:    utils.RandomInt,
	}
	for _, opt := range opts {
		opt(s)
	}

	grid, ledger, err := s.fresh()
	if err != nil {
		return nil, err
	}
	s.grid, s.ledger = grid, ledger
	return s, nil
}

func (s *service) fresh() (*plot.Grid, *inventory.Ledger, error) {
	grid, err := plot.NewGrid(s.cfg.Width, s.cfg.Height)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return grid, inventory.New(s.catalog.Names(), s.cfg.StartingGold, s.cfg.StartingSeeds), nil
}

func (s *service) Season(_ context.Context) domain.Season {
	return season.Current(s.clock.Now())
}

func (s *service) Plant(ctx context.Context, x, y int, plantName string) (*domain.PlantResult, error) {
	log := logger.FromContext(ctx)

	def, err := s.catalog.Resolve(plantName)
	if err != nil {
		return nil, s.rejected(ctx, ActionPlant, err, "x", x, "y", y, "plant", plantName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cell, err := s.grid.Cell(x, y)
	if err != nil {
		return nil, s.rejected(ctx, ActionPlant, err, "x", x, "y", y)
	}

	now := s.clock.Now()
	result, err := economy.PlantSeed(cell, def, season.Current(now), now, s.ledger)
	if err != nil {
		return nil, s.rejected(ctx, ActionPlant, err, "x", x, "y", y, "plant", def.Name)
	}

	metrics.PlantsPlanted.WithLabelValues(def.Name).Inc()
	log.Info(LogMsgPlanted, "x", x, "y", y, "plant", def.Name, "seeds_remaining", result.SeedsRemaining)
	return result, nil
}

func (s *service) Harvest(ctx context.Context, x, y int) (*domain.HarvestResult, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	cell, err := s.grid.Cell(x, y)
	if err != nil {
		return nil, s.rejected(ctx, ActionHarvest, err, "x", x, "y", y)
	}

	now := s.clock.Now()
	result, err := economy.HarvestCell(cell, season.Current(now), now, s.intn, s.ledger)
	if err != nil {
		return nil, s.rejected(ctx, ActionHarvest, err, "x", x, "y", y)
	}

	metrics.Harvests.WithLabelValues(result.PlantName).Inc()
	metrics.HarvestYield.WithLabelValues(result.PlantName, metrics.KindSeeds).Add(float64(result.Seeds))
	metrics.HarvestYield.WithLabelValues(result.PlantName, metrics.KindHarvested).Add(float64(result.Harvested))
	log.Info(LogMsgHarvested, "x", x, "y", y, "plant", result.PlantName, "seeds", result.Seeds, "harvested", result.Harvested)
	return result, nil
}

func (s *service) Upgrade(ctx context.Context, x, y int) (*domain.UpgradeResult, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	cell, err := s.grid.Cell(x, y)
	if err != nil {
		return nil, s.rejected(ctx, ActionUpgrade, err, "x", x, "y", y)
	}

	result, err := economy.Upgrade(cell, s.ledger)
	if err != nil {
		return nil, s.rejected(ctx, ActionUpgrade, err, "x", x, "y", y)
	}

	metrics.TileUpgrades.Inc()
	metrics.GoldSpent.Add(float64(result.Cost))
	log.Info(LogMsgUpgraded, "x", x, "y", y, "level", result.Level, "cost", result.Cost)
	return result, nil
}

func (s *service) SellAll(ctx context.Context) (*domain.SellResult, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := economy.SellAll(s.ledger, s.catalog.All())
	if err != nil {
		return nil, err
	}

	metrics.GoldEarned.Add(float64(result.TotalCredited))
	log.Info(LogMsgSold, "total_credited", result.TotalCredited, "kinds", len(result.Sold))
	return result, nil
}

// rejected records an expected player mistake. Other errors pass through untouched.
func (s *service) rejected(ctx context.Context, action string, err error, args ...any) error {
	if errors.Is(err, domain.ErrInvalidAction) {
		metrics.ActionsRejected.WithLabelValues(action).Inc()
		logger.FromContext(ctx).Info(LogMsgActionRejected, append([]any{"action", action, "reason", err.Error()}, args...)...)
	}
	return err
}
