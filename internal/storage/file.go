package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/utils"
)

// FileStore keeps the snapshot in a single JSON file, replaced by
// write-temp-then-rename.
type FileStore struct {
	path string
}

// NewFileStore creates the parent directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = DefaultFilePath
	}
	if err := os.MkdirAll(filepath.Dir(path), snapshotDirMode); err != nil {
		return nil, fmt.Errorf(ErrMsgOpenFailed+": %w", DriverFile, err)
	}
	return &FileStore{path: path}, nil
}

// Path is the snapshot file location.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
	}
	return data, nil
}

func (s *FileStore) Write(_ context.Context, data []byte) error {
	if err := utils.WriteFileAtomic(s.path, data, snapshotFileMode); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	return nil
}

// Ping checks that the directory is still there.
func (s *FileStore) Ping(_ context.Context) error {
	_, err := os.Stat(filepath.Dir(s.path))
	return err
}

func (s *FileStore) Close() error   { return nil }
func (s *FileStore) Driver() Driver { return DriverFile }
