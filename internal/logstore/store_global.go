package logstore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/schema"
)

// LogStoreManager manages the LogStore instance.
type LogStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	store        contract.LogStore
}

var _ contract.StoreManager = &LogStoreManager{} // Compile-time check

// GetLogStore returns the reading-log store.
func (mgr *LogStoreManager) GetLogStore() contract.LogStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.store
}

// Global Manager instance for main logic.
var (
	Manager   = &LogStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStore initializes the global store manager.
func InitStore(backend schema.StoreBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		store, err := NewLogStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize reading-log store: %w", err)
			return
		}
		Manager.store = store
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStore should be called on application shutdown.
func CloseStore() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.store != nil {
			_ = Manager.store.Close()
		}
	})
}

// ClearStore clears the reading log for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearStore(backend schema.StoreBackend, dbFilePath, connStr string) error {
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
		return dropSQLTable("mysql", connStr, logTable)

	case schema.PostgreSQLBackend:
		return dropSQLTable("pgx", connStr, logTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// dropSQLTable connects to the SQL database and drops the table if it exists.
func dropSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}

// PrintStoreStatus prints store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Entries: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		fmt.Printf("First Logged: %s\n", schema.FormatDay(status.FirstLoggedOn))
		fmt.Printf("Last Logged: %s\n", schema.FormatDay(status.LastLoggedOn))
	}
	fmt.Printf("Table Size: %d bytes\n", status.TableSizeBytes)
}
