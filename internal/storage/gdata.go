package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"

	"github.com/osse101/PlotFarm_Go/internal/domain"
)

// GdataStore keeps the snapshot in the per-user application data directory.
// Writes go to the inactive of two slots; the active marker flips only after
// the slot is fully written, so a crash mid-write keeps the old snapshot.
type GdataStore struct {
	mu      sync.Mutex
	manager *gdata.Manager
}

// NewGdataStore opens the data area for appName.
func NewGdataStore(appName string) (*GdataStore, error) {
	if appName == "" {
		appName = DefaultGdataApp
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenFailed+": %w", DriverGdata, err)
	}
	return &GdataStore{manager: m}, nil
}

func (s *GdataStore) activeSlot() (string, error) {
	if !s.manager.ObjectPropExists(gdataObject, gdataActiveProp) {
		return "", nil
	}
	raw, err := s.manager.LoadObjectProp(gdataObject, gdataActiveProp)
	if err != nil {
		return "", err
	}
	switch slot := string(raw); slot {
	case gdataSlotA, gdataSlotB:
		return slot, nil
	default:
		return "", fmt.Errorf(ErrMsgCorruptSlotMarker, slot)
	}
}

func (s *GdataStore) Read(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, err := s.activeSlot()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
	}
	if slot == "" || !s.manager.ObjectPropExists(gdataObject, slot) {
		return nil, domain.ErrNoSave
	}
	data, err := s.manager.LoadObjectProp(gdataObject, slot)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
	}
	return data, nil
}

func (s *GdataStore) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, err := s.activeSlot()
	if err != nil {
		// an unreadable marker is replaced on the next successful write
		active = ""
	}
	next := gdataSlotA
	if active == gdataSlotA {
		next = gdataSlotB
	}

	if err := s.manager.SaveObjectProp(gdataObject, next, data); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := s.manager.SaveObjectProp(gdataObject, gdataActiveProp, []byte(next)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	return nil
}

func (s *GdataStore) Ping(context.Context) error { return nil }
func (s *GdataStore) Close() error               { return nil }
func (s *GdataStore) Driver() Driver             { return DriverGdata }
