package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotFarm_Go/internal/domain"
)

// exerciseStore runs the behavior every backend must share.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	_, err := store.Read(ctx)
	require.ErrorIs(t, err, domain.ErrNoSave, "empty store reports no save")

	first := []byte(`{"version":1,"farm":[[{"plant":null,"plantedTime":null,"level":0}]],"inventory":{"Gold":100}}`)
	require.NoError(t, store.Write(ctx, first))
	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(got))

	second := []byte(`{"version":1,"farm":[[{"plant":"Wheat","plantedTime":1000,"level":2}]],"inventory":{"Gold":5}}`)
	require.NoError(t, store.Write(ctx, second))
	got, err = store.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, string(second), string(got), "write replaces the slot")

	for i := 0; i < 3; i++ {
		payload := []byte(fmt.Sprintf(`{"inventory":{"Gold":%d}}`, i))
		require.NoError(t, store.Write(ctx, payload))
		got, err = store.Read(ctx)
		require.NoError(t, err)
		assert.JSONEq(t, string(payload), string(got))
	}

	require.NoError(t, store.Close())
}

func TestParseDriver(t *testing.T) {
	for _, d := range Drivers() {
		got, err := ParseDriver(string(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := ParseDriver("  SQLite ")
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, got)

	_, err = ParseDriver("mongo")
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	assert.Equal(t, DriverMemory, store.Driver())
	exerciseStore(t, store)
}

func TestMemoryStore_CopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	data := []byte(`{"a":1}`)
	require.NoError(t, store.Write(ctx, data))
	data[0] = 'X'

	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "farm.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, DriverFile, store.Driver())
	assert.Equal(t, path, store.Path())
	exerciseStore(t, store)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	assert.Equal(t, "farm.json", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(snapshotFileMode), info.Mode().Perm())
}

func TestFileStore_ReadError(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	// the path is a directory, not a missing file
	_, err = store.Read(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoSave)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "farm.db")
	store, err := NewSQLiteStore(path, "")
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, store.Driver())
	exerciseStore(t, store)
}

func TestSQLiteStore_SlotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "farm.db")

	a, err := NewSQLiteStore(path, "a")
	require.NoError(t, err)
	defer a.Close()
	require.NoError(t, a.Write(ctx, []byte(`{"slot":"a"}`)))

	b, err := NewSQLiteStore(path, "b")
	require.NoError(t, err)
	defer b.Close()
	_, err = b.Read(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSave)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "farm.db")

	store, err := NewSQLiteStore(path, "")
	require.NoError(t, err)
	require.NoError(t, store.Write(ctx, []byte(`{"kept":true}`)))
	require.NoError(t, store.Close())

	store, err = NewSQLiteStore(path, "")
	require.NoError(t, err)
	defer store.Close()
	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kept":true}`, string(got))
}

func TestGdataStore(t *testing.T) {
	appName := fmt.Sprintf("plotfarm_test_%d", time.Now().UnixNano())
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			_ = os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})

	store, err := NewGdataStore(appName)
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	assert.Equal(t, DriverGdata, store.Driver())
	exerciseStore(t, store)
}

func TestGdataStore_AlternatesSlots(t *testing.T) {
	appName := fmt.Sprintf("plotfarm_slots_%d", time.Now().UnixNano())
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			_ = os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})

	store, err := NewGdataStore(appName)
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, []byte("one")))
	slot, err := store.activeSlot()
	require.NoError(t, err)
	assert.Equal(t, gdataSlotA, slot)

	require.NoError(t, store.Write(ctx, []byte("two")))
	slot, err = store.activeSlot()
	require.NoError(t, err)
	assert.Equal(t, gdataSlotB, slot)

	// the previous snapshot survives in the inactive slot
	old, err := store.manager.LoadObjectProp(gdataObject, gdataSlotA)
	require.NoError(t, err)
	assert.Equal(t, "one", string(old))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		cfg    Config
		driver Driver
	}{
		{Config{Driver: DriverMemory}, DriverMemory},
		{Config{Driver: DriverFile, Path: filepath.Join(dir, "farm.json")}, DriverFile},
		{Config{Path: filepath.Join(dir, "default.json")}, DriverFile},
		{Config{Driver: DriverSQLite, Path: filepath.Join(dir, "farm.db")}, DriverSQLite},
	}
	for _, tt := range tests {
		t.Run(string(tt.driver), func(t *testing.T) {
			store, err := Open(ctx, tt.cfg)
			require.NoError(t, err)
			defer store.Close()
			assert.Equal(t, tt.driver, store.Driver())
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, Config{Driver: "mongo"})
	assert.Error(t, err)

	_, err = Open(ctx, Config{Driver: DriverPostgres})
	assert.ErrorContains(t, err, ErrMsgDatabaseRequired)

	_, err = Open(ctx, Config{Driver: DriverS3})
	assert.ErrorContains(t, err, ErrMsgBucketRequired)
}
