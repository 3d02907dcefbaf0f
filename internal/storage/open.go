package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/PlotFarm_Go/internal/database"
	"github.com/osse101/PlotFarm_Go/internal/logger"
)

// Config selects and configures a backend.
type Config struct {
	Driver Driver
	// Path is the file or SQLite database location.
	Path string
	Slot string

	DatabaseURL     string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration

	S3 S3Config

	GdataAppName string
}

// Open builds the configured store. Postgres stores run migrations first.
func Open(ctx context.Context, cfg Config) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Driver {
	case DriverMemory:
		store = NewMemoryStore()
	case DriverFile, "":
		store, err = NewFileStore(cfg.Path)
	case DriverSQLite:
		path := cfg.Path
		if path == "" {
			path = DefaultSQLitePath
		}
		store, err = NewSQLiteStore(path, cfg.Slot)
	case DriverPostgres:
		store, err = openPostgres(ctx, cfg)
	case DriverS3:
		store, err = NewS3Store(ctx, cfg.S3)
	case DriverGdata:
		store, err = NewGdataStore(cfg.GdataAppName)
	default:
		return nil, fmt.Errorf(ErrMsgUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgStoreOpened, "driver", store.Driver())
	return store, nil
}

func openPostgres(ctx context.Context, cfg Config) (Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New(ErrMsgDatabaseRequired)
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.MaxConns, cfg.MaxConnIdleTime, cfg.MaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenFailed+": %w", DriverPostgres, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrateFailed, err)
	}
	return NewPostgresStore(pool, cfg.Slot), nil
}
