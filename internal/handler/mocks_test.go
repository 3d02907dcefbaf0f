package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PlotFarm_Go/internal/domain"
)

type MockFarmService struct {
	mock.Mock
}

func (m *MockFarmService) Plant(ctx context.Context, x, y int, plantName string) (*domain.PlantResult, error) {
	args := m.Called(ctx, x, y, plantName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlantResult), args.Error(1)
}

func (m *MockFarmService) Harvest(ctx context.Context, x, y int) (*domain.HarvestResult, error) {
	args := m.Called(ctx, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HarvestResult), args.Error(1)
}

func (m *MockFarmService) Upgrade(ctx context.Context, x, y int) (*domain.UpgradeResult, error) {
	args := m.Called(ctx, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpgradeResult), args.Error(1)
}

func (m *MockFarmService) SellAll(ctx context.Context) (*domain.SellResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellResult), args.Error(1)
}

func (m *MockFarmService) GetCellView(ctx context.Context, x, y int) (*domain.CellView, error) {
	args := m.Called(ctx, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CellView), args.Error(1)
}

func (m *MockFarmService) GetBoard(ctx context.Context) (*domain.BoardView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BoardView), args.Error(1)
}

func (m *MockFarmService) GetInventory(ctx context.Context) (*domain.InventoryView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryView), args.Error(1)
}

func (m *MockFarmService) ListPlants(ctx context.Context, plantableOnly bool) ([]domain.PlantInfo, error) {
	args := m.Called(ctx, plantableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlantInfo), args.Error(1)
}

func (m *MockFarmService) Season(ctx context.Context) domain.Season {
	return m.Called(ctx).Get(0).(domain.Season)
}

func (m *MockFarmService) Save(ctx context.Context) domain.SaveSnapshot {
	return m.Called(ctx).Get(0).(domain.SaveSnapshot)
}

func (m *MockFarmService) Load(ctx context.Context, snap domain.SaveSnapshot) error {
	return m.Called(ctx, snap).Error(0)
}

func (m *MockFarmService) Persist(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockFarmService) Restore(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockFarmService) Reset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
