package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osse101/PlotFarm_Go/internal/catalog"
	"github.com/osse101/PlotFarm_Go/internal/config"
	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/farm"
	"github.com/osse101/PlotFarm_Go/internal/storage"
)

// StorageConfig maps the application config onto the store settings
func StorageConfig(cfg *config.Config) storage.Config {
	return storage.Config{
		Driver:          storage.Driver(cfg.SaveDriver),
		Path:            cfg.SavePath,
		Slot:            cfg.SaveSlot,
		DatabaseURL:     cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdle,
		MaxConnLifetime: cfg.DBMaxConnLife,
		S3: storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Key:       cfg.S3Key,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		},
		GdataAppName: cfg.GdataAppName,
	}
}

// FarmConfig maps the application config onto the farm settings
func FarmConfig(cfg *config.Config) farm.Config {
	return farm.Config{
		Width:         cfg.GridWidth,
		Height:        cfg.GridHeight,
		StartingGold:  cfg.StartingGold,
		StartingSeeds: cfg.StartingSeeds,
	}
}

// LoadCatalog loads the catalog file, or the embedded one when path is empty
func LoadCatalog(path string) (*catalog.Catalog, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}
	if path == "" {
		slog.Info(catalog.LogMsgEmbeddedUsed)
	}
	slog.Info(catalog.LogMsgCatalogLoaded, "plants", cat.Len(), "path", path)
	return cat, nil
}

// BuildFarm opens the configured store and creates a farm backed by it.
// The caller owns the returned store and must close it.
func BuildFarm(ctx context.Context, cfg *config.Config, opts ...farm.Option) (farm.Service, storage.Store, error) {
	cat, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.Open(ctx, StorageConfig(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgOpenStore, err)
	}

	opts = append([]farm.Option{farm.WithStore(store, string(store.Driver()))}, opts...)
	svc, err := farm.NewService(cat, FarmConfig(cfg), opts...)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgCreateFarm, err)
	}
	return svc, store, nil
}

// RestoreFarm loads the saved farm if there is one. A corrupt save leaves svc
// on its fresh farm and is returned as an error wrapping domain.ErrCorruptSave;
// callers stop there so autosave never overwrites the bad snapshot.
func RestoreFarm(ctx context.Context, svc farm.Service) error {
	found, err := svc.Restore(ctx)
	if errors.Is(err, domain.ErrCorruptSave) {
		slog.Error(LogMsgCorruptSave, "error", err)
		return fmt.Errorf("%s: %w", ErrMsgRestoreFarm, err)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRestoreFarm, err)
	}
	if found {
		slog.Info(LogMsgFarmRestored)
	} else {
		slog.Info(LogMsgFreshFarm)
	}
	return nil
}
