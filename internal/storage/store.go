// Package storage persists encoded farm snapshots. Every backend holds a
// single slot and replaces it atomically, so an interrupted write leaves the
// previous snapshot readable.
package storage

import (
	"context"
	"fmt"
	"strings"
)

// Driver names a storage backend.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverFile     Driver = "file"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverS3       Driver = "s3"
	DriverGdata    Driver = "gdata"
)

// Drivers lists every supported driver.
func Drivers() []Driver {
	return []Driver{DriverMemory, DriverFile, DriverSQLite, DriverPostgres, DriverS3, DriverGdata}
}

// ParseDriver maps a config string to a Driver.
func ParseDriver(s string) (Driver, error) {
	d := Driver(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Drivers() {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf(ErrMsgUnknownDriver, s)
}

// Store reads and writes one encoded snapshot.
type Store interface {
	// Read returns the stored snapshot or domain.ErrNoSave when none exists.
	Read(ctx context.Context) ([]byte, error)
	// Write atomically replaces the stored snapshot.
	Write(ctx context.Context, data []byte) error
	Ping(ctx context.Context) error
	Close() error
	Driver() Driver
}
