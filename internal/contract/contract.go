// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/apiarylab/hivetrend/schema"
)

// SnapshotManager defines the interface for reaching the snapshot store.
// This allows the persistence layer to be mocked for testing.
type SnapshotManager interface {
	GetStore() SnapshotStore
}

// SnapshotStore records load runs and their canonical entries. Backends
// that disable persistence implement every method as a no-op.
type SnapshotStore interface {
	// BeginLoad creates a new load run from the report and returns its ID.
	BeginLoad(report schema.LoadReport) (int64, error)

	// RecordEntries stores the canonical entries of a load run.
	RecordEntries(loadID int64, entries []schema.Entry) error

	// FinishLoad marks the load run as completed.
	FinishLoad(loadID int64, finished time.Time) error

	// GetStatus returns status information about the snapshot store.
	GetStatus() (schema.SnapshotStatus, error)

	// GetAllLoads returns every persisted load run, oldest first.
	GetAllLoads() ([]schema.LoadRunRecord, error)

	// GetAllEntries returns every persisted canonical entry.
	GetAllEntries() ([]schema.EntryRecord, error)

	// Clear removes all persisted snapshot data.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}
