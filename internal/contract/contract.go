// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"fmt"
	"time"

	"github.com/IsaacParker30/paper-read/schema"
)

// LogStore defines the operations the core needs from the reading-log store.
// This allows the streak and grid logic to be tested without a real database.
type LogStore interface {
	// Insert appends a new reading entry and returns its row ID.
	Insert(entry schema.ReadingEntry) (int64, error)

	// DistinctActiveDays returns every day with at least one logged reading,
	// in ascending order.
	DistinctActiveDays() ([]time.Time, error)

	// CountEventsPerDay returns the number of readings logged on each day in
	// [start, end]. The result is dense: every day in the range is present,
	// zero-filled when nothing was logged.
	CountEventsPerDay(start, end time.Time) (map[time.Time]int, error)

	// CountOnDay returns the number of readings logged on a single day.
	// Used to derive generated paper IDs of the form YYYYMMDDN.
	CountOnDay(day time.Time) (int, error)

	// RecentEntries returns up to limit entries, newest first.
	RecentEntries(limit int) ([]schema.ReadingEntry, error)

	// FindByPaperID returns the most recently logged entry with the given
	// paper ID, or sql.ErrNoRows when none exists.
	FindByPaperID(paperID string) (schema.ReadingEntry, error)

	// DeleteByPaperID removes all entries with the given paper ID and
	// returns how many rows were deleted.
	DeleteByPaperID(paperID string) (int64, error)

	// TotalEntries returns the total number of logged readings.
	TotalEntries() (int, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for accessing the configured store.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetLogStore() LogStore
}

// ConfigError marks a contract violation in caller-supplied configuration or
// input data: a non-positive week count, a sparse count map, an unknown
// backend. Core computations fail fast with it instead of producing a
// partially blank result.
type ConfigError struct {
	Msg string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return e.Msg
}

// NewConfigError builds a ConfigError with fmt.Sprintf semantics.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}
