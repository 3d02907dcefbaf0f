package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/logger"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS farm_snapshots (
	slot TEXT PRIMARY KEY,
	payload BLOB NOT NULL,
	saved_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteStore keeps the snapshot as a row in a local SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	slot string
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path, slot string) (*SQLiteStore, error) {
	if path == "" {
		path = DefaultSQLitePath
	}
	if slot == "" {
		slot = DefaultSlot
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), snapshotDirMode); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps :memory: databases shared and serializes writers
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}
	return &SQLiteStore{db: db, slot: slot}, nil
}

func (s *SQLiteStore) Read(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM farm_snapshots WHERE slot = ?`, s.slot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
	}
	return payload, nil
}

func (s *SQLiteStore) Write(ctx context.Context, data []byte) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer func() {
		if retErr != nil {
			if err := tx.Rollback(); err != nil {
				logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
			}
		}
	}()

	if _, err := tx.ExecContext(ctx, `INSERT INTO farm_snapshots (slot, payload, saved_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		s.slot, data); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitTxFailed, err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
func (s *SQLiteStore) Close() error                   { return s.db.Close() }
func (s *SQLiteStore) Driver() Driver                 { return DriverSQLite }
