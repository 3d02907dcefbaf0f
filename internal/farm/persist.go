package farm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/logger"
	"github.com/osse101/PlotFarm_Go/internal/metrics"
	"github.com/osse101/PlotFarm_Go/internal/snapshot"
)

// Save captures the current farm.
func (s *service) Save(_ context.Context) domain.SaveSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot.Serialize(s.grid, s.ledger)
}

// Load replaces the farm with snap. The snapshot is fully decoded before the
// live state is touched; on error nothing changes.
func (s *service) Load(ctx context.Context, snap domain.SaveSnapshot) error {
	return s.load(ctx, snap, SourceSnapshot)
}

func (s *service) load(ctx context.Context, snap domain.SaveSnapshot, source string) error {
	log := logger.FromContext(ctx)

	grid, ledger, report, err := snapshot.Deserialize(snap, s.catalog)
	if err != nil {
		metrics.SnapshotLoads.WithLabelValues(source, metrics.ResultFailure).Inc()
		return err
	}

	s.mu.Lock()
	s.grid, s.ledger = grid, ledger
	s.mu.Unlock()

	if report.ClearedCells > 0 {
		metrics.CellsClearedOnLoad.Add(float64(report.ClearedCells))
		log.Warn(LogMsgPlantsDropped, "cells", report.ClearedCells, "unknown_plants", report.DroppedPlants)
	}
	metrics.SnapshotLoads.WithLabelValues(source, metrics.ResultSuccess).Inc()
	log.Info(LogMsgSnapshotLoaded, "source", source, "width", grid.Width(), "height", grid.Height())
	return nil
}

// Persist serializes under the lock and writes outside it.
func (s *service) Persist(ctx context.Context) error {
	if s.store == nil {
		return errors.New(ErrMsgNoStore)
	}
	start := time.Now()

	data, err := snapshot.Marshal(s.Save(ctx))
	if err != nil {
		metrics.SnapshotSaves.WithLabelValues(s.storeDriver, metrics.ResultFailure).Inc()
		return fmt.Errorf("%s: %w", ErrMsgEncodeSnapshot, err)
	}
	if err := s.store.Write(ctx, data); err != nil {
		metrics.SnapshotSaves.WithLabelValues(s.storeDriver, metrics.ResultFailure).Inc()
		return fmt.Errorf("%s: %w", ErrMsgWriteSnapshot, err)
	}

	metrics.SnapshotSaves.WithLabelValues(s.storeDriver, metrics.ResultSuccess).Inc()
	metrics.SnapshotSaveDuration.WithLabelValues(s.storeDriver).Observe(time.Since(start).Seconds())
	logger.FromContext(ctx).Debug(LogMsgSnapshotSaved, "driver", s.storeDriver, "bytes", len(data))
	return nil
}

// Restore loads the stored snapshot. It reports false, with no error, when
// the store is empty.
func (s *service) Restore(ctx context.Context) (bool, error) {
	if s.store == nil {
		return false, errors.New(ErrMsgNoStore)
	}

	data, err := s.store.Read(ctx)
	if errors.Is(err, domain.ErrNoSave) {
		metrics.SnapshotLoads.WithLabelValues(SourceStore, metrics.ResultEmpty).Inc()
		logger.FromContext(ctx).Info(LogMsgNoSnapshotFound)
		return false, nil
	}
	if err != nil {
		metrics.SnapshotLoads.WithLabelValues(SourceStore, metrics.ResultFailure).Inc()
		return false, fmt.Errorf("%s: %w", ErrMsgReadSnapshot, err)
	}

	snap, err := snapshot.Unmarshal(data)
	if err != nil {
		metrics.SnapshotLoads.WithLabelValues(SourceStore, metrics.ResultFailure).Inc()
		return false, err
	}
	if err := s.load(ctx, snap, SourceStore); err != nil {
		return false, err
	}
	return true, nil
}

// Reset starts over with an empty grid and starting inventory.
func (s *service) Reset(ctx context.Context) error {
	grid, ledger, err := s.fresh()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.grid, s.ledger = grid, ledger
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgFarmReset, "width", grid.Width(), "height", grid.Height())
	return nil
}
