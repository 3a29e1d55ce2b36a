// Package snapstore persists load runs and their canonical entries.
package snapstore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/apiarylab/hivetrend/schema"
)

// SnapshotStoreManager manages the snapshot store instance.
type SnapshotStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	store        contract.SnapshotStore
}

var _ contract.SnapshotManager = &SnapshotStoreManager{} // Compile-time check

// GetStore returns the snapshot SnapshotStore.
func (mgr *SnapshotStoreManager) GetStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.store
}

// Global Manager instance for main logic.
var (
	Manager   = &SnapshotStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	return contract.GetSnapshotDBFilePath()
}

// InitStores initializes the global snapshot manager.
// backend can be empty to disable snapshot tracking entirely.
func InitStores(backend schema.SnapshotBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		if backend == "" {
			return
		}
		store, err := NewSnapshotStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize snapshot store: %w", err)
			return
		}
		Manager.store = store
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.store != nil {
			_ = Manager.store.Close()
		}
	})
}

// ClearSnapshots clears the snapshot data for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the snapshot tables.
// For NoneBackend, it does nothing.
func ClearSnapshots(backend schema.SnapshotBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTables("mysql", connStr)

	case schema.PostgreSQLBackend:
		return clearSQLTables("pgx", connStr)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported snapshot backend for clearing: %s", backend)
	}
}

// clearSQLTables connects to the SQL database and drops the snapshot tables.
func clearSQLTables(driverName, connStr string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	for _, table := range []string{entriesTable, loadsTable} {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	return nil
}
