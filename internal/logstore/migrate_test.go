package logstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/IsaacParker30/paper-read/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateStore_NonSQLiteBackends(t *testing.T) {
	for _, backend := range []schema.StoreBackend{schema.NoneBackend, schema.MySQLBackend, schema.PostgreSQLBackend} {
		err := MigrateStore(backend, "", -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only supported for the sqlite backend")
	}
}

func TestMigrateStore_SQLite(t *testing.T) {
	// Create a temporary database file for testing
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_migration.db")

	// Run migration to latest version
	err := MigrateStore(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)

	// Verify migration was successful by checking the database file exists
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)

	// Run migration again (should be a no-op)
	err = MigrateStore(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err)

	// Run migration to a specific version (version 1)
	err = MigrateStore(schema.SQLiteBackend, dbPath, 1)
	assert.NoError(t, err)

	// Rollback to initial state
	err = MigrateStore(schema.SQLiteBackend, dbPath, 0)
	assert.NoError(t, err)

	// Migrate back up to version 2
	err = MigrateStore(schema.SQLiteBackend, dbPath, 2)
	assert.NoError(t, err)
}

func TestMigrateStore_SQLiteInMemory(t *testing.T) {
	// Test with in-memory database
	err := MigrateStore(schema.SQLiteBackend, ":memory:", -1)
	require.NoError(t, err)
}

func TestMigratedSchemaAcceptsInserts(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrated.db")

	require.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, -1))

	// The migrated schema and the inline bootstrap schema must agree, so a
	// store opened on a migrated file works as usual.
	store, err := NewLogStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = store.Insert(entryOn("2024-06-15", "A Paper", "p1"))
	assert.NoError(t, err)
}
