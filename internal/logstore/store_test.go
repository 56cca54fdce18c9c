package logstore

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/IsaacParker30/paper-read/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *LogStoreImpl {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "paperforest.db")
	store, err := NewLogStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { _ = store.Close() })

	return store.(*LogStoreImpl)
}

func entryOn(day string, title, paperID string) schema.ReadingEntry {
	d, err := schema.ParseDay(day)
	if err != nil {
		panic(err)
	}
	return schema.ReadingEntry{
		Title:     title,
		PaperID:   paperID,
		Summary:   "A summary with enough words to be plausible.",
		WordCount: 8,
		LoggedOn:  d,
	}
}

func TestLogStore_NoneBackend(t *testing.T) {
	store, err := NewLogStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// Writes are swallowed
	id, err := store.Insert(entryOn("2024-06-15", "A Paper", "p1"))
	assert.NoError(t, err)
	assert.Equal(t, int64(0), id)

	// Reads come back empty, not as errors
	days, err := store.DistinctActiveDays()
	assert.NoError(t, err)
	assert.Empty(t, days)

	total, err := store.TotalEntries()
	assert.NoError(t, err)
	assert.Zero(t, total)

	_, err = store.FindByPaperID("p1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

func TestLogStore_UnsupportedBackend(t *testing.T) {
	_, err := NewLogStore("cassandra", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store backend")
}

func TestLogStore_InsertAndRead(t *testing.T) {
	store := newSQLiteStore(t)

	id1, err := store.Insert(entryOn("2024-06-14", "First Paper", "p1"))
	require.NoError(t, err)
	assert.Greater(t, id1, int64(0))

	id2, err := store.Insert(entryOn("2024-06-15", "Second Paper", "p2"))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	total, err := store.TotalEntries()
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	entry, err := store.FindByPaperID("p1")
	require.NoError(t, err)
	assert.Equal(t, id1, entry.ID)
	assert.Equal(t, "First Paper", entry.Title)
	assert.Equal(t, 8, entry.WordCount)
	assert.Equal(t, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), entry.LoggedOn)

	_, err = store.FindByPaperID("no-such-id")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestLogStore_RecentEntriesOrder(t *testing.T) {
	store := newSQLiteStore(t)

	// Insertion order deliberately differs from log-date order.
	_, err := store.Insert(entryOn("2024-06-15", "Newest", "p3"))
	require.NoError(t, err)
	_, err = store.Insert(entryOn("2024-06-13", "Oldest", "p1"))
	require.NoError(t, err)
	_, err = store.Insert(entryOn("2024-06-14", "Middle", "p2"))
	require.NoError(t, err)

	entries, err := store.RecentEntries(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Newest", entries[0].Title)
	assert.Equal(t, "Middle", entries[1].Title)
	assert.Equal(t, "Oldest", entries[2].Title)

	limited, err := store.RecentEntries(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestLogStore_FindByPaperIDPicksLatest(t *testing.T) {
	store := newSQLiteStore(t)

	_, err := store.Insert(entryOn("2024-06-13", "First read", "re-read"))
	require.NoError(t, err)
	_, err = store.Insert(entryOn("2024-06-15", "Second read", "re-read"))
	require.NoError(t, err)

	entry, err := store.FindByPaperID("re-read")
	require.NoError(t, err)
	assert.Equal(t, "Second read", entry.Title)
}

func TestLogStore_DeleteByPaperID(t *testing.T) {
	store := newSQLiteStore(t)

	_, err := store.Insert(entryOn("2024-06-13", "Keep", "keep"))
	require.NoError(t, err)
	_, err = store.Insert(entryOn("2024-06-14", "Drop", "drop"))
	require.NoError(t, err)
	_, err = store.Insert(entryOn("2024-06-15", "Drop again", "drop"))
	require.NoError(t, err)

	deleted, err := store.DeleteByPaperID("drop")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = store.DeleteByPaperID("drop")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	total, err := store.TotalEntries()
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestLogStore_DistinctActiveDays(t *testing.T) {
	store := newSQLiteStore(t)

	for _, e := range []schema.ReadingEntry{
		entryOn("2024-06-15", "A", "p1"),
		entryOn("2024-06-13", "B", "p2"),
		entryOn("2024-06-15", "C", "p3"), // same day as A
	} {
		_, err := store.Insert(e)
		require.NoError(t, err)
	}

	days, err := store.DistinctActiveDays()
	require.NoError(t, err)
	require.Len(t, days, 2, "duplicate days collapse")
	assert.Equal(t, time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC), days[0], "ascending order")
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), days[1])
}

func TestLogStore_CountEventsPerDayIsDense(t *testing.T) {
	store := newSQLiteStore(t)

	for _, e := range []schema.ReadingEntry{
		entryOn("2024-06-12", "A", "p1"),
		entryOn("2024-06-12", "B", "p2"),
		entryOn("2024-06-14", "C", "p3"),
	} {
		_, err := store.Insert(e)
		require.NoError(t, err)
	}

	start := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	counts, err := store.CountEventsPerDay(start, end)
	require.NoError(t, err)

	assert.Len(t, counts, 5, "every day of the range is present")
	assert.Equal(t, 0, counts[start])
	assert.Equal(t, 2, counts[time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)])
	assert.Equal(t, 0, counts[time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)])
	assert.Equal(t, 1, counts[time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)])
	assert.Equal(t, 0, counts[end])
}

func TestLogStore_CountOnDay(t *testing.T) {
	store := newSQLiteStore(t)

	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	n, err := store.CountOnDay(day)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = store.Insert(entryOn("2024-06-15", "A", "p1"))
	require.NoError(t, err)
	_, err = store.Insert(entryOn("2024-06-15", "B", "p2"))
	require.NoError(t, err)

	n, err = store.CountOnDay(day)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLogStore_GetStatus(t *testing.T) {
	store := newSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalEntries)
	assert.True(t, status.FirstLoggedOn.IsZero())

	_, err = store.Insert(entryOn("2024-06-13", "A", "p1"))
	require.NoError(t, err)
	_, err = store.Insert(entryOn("2024-06-15", "B", "p2"))
	require.NoError(t, err)

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC), status.FirstLoggedOn)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), status.LastLoggedOn)
	assert.Greater(t, status.TableSizeBytes, int64(0))
}
