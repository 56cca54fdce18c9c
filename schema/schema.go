// Package schema has configs, models and global variables for all parts of paperforest.
package schema

import "time"

// ReadingEntry represents a single logged reading of a paper.
// It mirrors one row of the reading_log table.
type ReadingEntry struct {
	ID        int64     `json:"id"`         // Auto-incremented row identifier
	Title     string    `json:"title"`      // Paper title as provided by the user
	PaperID   string    `json:"paper_id"`   // External identifier (DOI, arXiv ID, etc.) or generated YYYYMMDDN value
	Summary   string    `json:"summary"`    // Summary text written by the user
	WordCount int       `json:"word_count"` // Number of whitespace-separated words in Summary
	LoggedOn  time.Time `json:"logged_on"`  // Calendar day the reading was logged on (UTC midnight)
}

// StreakSummary holds the two headline streak numbers derived from the
// set of distinct active days.
type StreakSummary struct {
	Current int `json:"current"` // Consecutive active days ending today or yesterday
	Longest int `json:"longest"` // Longest consecutive run anywhere in history
}

// StatsResult aggregates the numbers shown by the stats command.
type StatsResult struct {
	TotalLogs  int           `json:"total_logs"`  // Total number of reading_log rows
	ActiveDays int           `json:"active_days"` // Number of distinct days with at least one log
	Streaks    StreakSummary `json:"streaks"`     // Current and longest streaks
}

// Grid is the rendered forest: 7 weekday rows (Monday first) by week columns,
// oldest column on the left. Cells outside the requested window hold
// BlankCell; in-window cells hold a stage symbol.
type Grid struct {
	Cells        [][]string `json:"cells"`         // 7 rows, each with the same number of columns
	Weeks        int        `json:"weeks"`         // Requested window size in weeks
	Start        time.Time  `json:"start"`         // First day of the requested window
	End          time.Time  `json:"end"`           // Last day of the requested window (the reference day)
	StartAligned time.Time  `json:"start_aligned"` // Start shifted back to the Monday on or before it
}

// Cols returns the number of week columns in the grid.
func (g Grid) Cols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// StoreStatus holds status information about the reading-log store.
type StoreStatus struct {
	Backend        string    `json:"backend"`
	Connected      bool      `json:"connected"`
	TotalEntries   int       `json:"total_entries"`
	FirstLoggedOn  time.Time `json:"first_logged_on,omitzero"`
	LastLoggedOn   time.Time `json:"last_logged_on,omitzero"`
	TableSizeBytes int64     `json:"table_size_bytes,omitempty"`
}
