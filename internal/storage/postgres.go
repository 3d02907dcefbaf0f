package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/logger"
)

// PostgresStore keeps the snapshot as a JSONB row in farm_snapshots.
// The table is created by database.Migrate.
type PostgresStore struct {
	pool *pgxpool.Pool
	slot string
}

// NewPostgresStore takes ownership of pool; Close closes it.
func NewPostgresStore(pool *pgxpool.Pool, slot string) *PostgresStore {
	if slot == "" {
		slot = DefaultSlot
	}
	return &PostgresStore{pool: pool, slot: slot}
}

func (s *PostgresStore) Read(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, `SELECT payload::text FROM farm_snapshots WHERE slot = $1`, s.slot).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
	}
	return payload, nil
}

func (s *PostgresStore) Write(ctx context.Context, data []byte) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
		}
	}()

	if _, err := tx.Exec(ctx, `INSERT INTO farm_snapshots (slot, payload, saved_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, saved_at = EXCLUDED.saved_at`,
		s.slot, string(data)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitTxFailed, err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) Driver() Driver { return DriverPostgres }
