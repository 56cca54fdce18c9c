// Package core has core logic for streaks, daily aggregation and forest rendering.
package core

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/internal/outwriter"
	"github.com/IsaacParker30/paper-read/schema"
)

// ExecuteLog records a new reading entry and prints the updated streaks and
// forest. It serves as the main entry point for the 'log' command.
func ExecuteLog(cfg *contract.Config, mgr contract.StoreManager) error {
	store := mgr.GetLogStore()

	entry, err := RecordReading(cfg, mgr)
	if err != nil {
		return err
	}

	stats, err := computeStats(cfg, store)
	if err != nil {
		return err
	}
	grid, err := buildForest(cfg, store)
	if err != nil {
		return err
	}

	return outwriter.PrintLogResult(entry, stats.Streaks, grid, cfg)
}

// RecordReading validates the log inputs and appends a new reading entry,
// without printing anything. The 'log' command and the MCP server share it.
func RecordReading(cfg *contract.Config, mgr contract.StoreManager) (schema.ReadingEntry, error) {
	store := mgr.GetLogStore()

	if cfg.Title == "" {
		return schema.ReadingEntry{}, contract.NewConfigError("paper title is required")
	}

	// Soft gate: the summary only needs enough words, not genuine content.
	words := contract.WordCount(cfg.Summary)
	if words < cfg.MinWords {
		return schema.ReadingEntry{}, contract.NewConfigError("summary is %d words; minimum is %d", words, cfg.MinWords)
	}

	loggedOn := cfg.LoggedOn
	if loggedOn.IsZero() {
		loggedOn = cfg.Today
	}

	paperID := cfg.PaperID
	if paperID == "" {
		var err error
		paperID, err = generatePaperID(store, loggedOn)
		if err != nil {
			return schema.ReadingEntry{}, fmt.Errorf("failed to generate paper ID: %w", err)
		}
	}

	entry := schema.ReadingEntry{
		Title:     cfg.Title,
		PaperID:   paperID,
		Summary:   cfg.Summary,
		WordCount: words,
		LoggedOn:  loggedOn,
	}
	id, err := store.Insert(entry)
	if err != nil {
		return schema.ReadingEntry{}, fmt.Errorf("failed to insert reading entry: %w", err)
	}
	entry.ID = id
	return entry, nil
}

// ExecuteStats computes totals, streaks and the forest, and prints them.
// It serves as the main entry point for the 'stats' command.
func ExecuteStats(cfg *contract.Config, mgr contract.StoreManager) error {
	store := mgr.GetLogStore()

	stats, err := computeStats(cfg, store)
	if err != nil {
		return err
	}
	grid, err := buildForest(cfg, store)
	if err != nil {
		return err
	}

	return outwriter.PrintStats(stats, grid, cfg)
}

// ExecuteForest renders only the forest grid for the configured window.
func ExecuteForest(cfg *contract.Config, mgr contract.StoreManager) error {
	grid, err := buildForest(cfg, mgr.GetLogStore())
	if err != nil {
		return err
	}
	return outwriter.PrintForest(grid, cfg)
}

// ExecuteList prints the most recent reading entries.
func ExecuteList(cfg *contract.Config, mgr contract.StoreManager) error {
	entries, err := mgr.GetLogStore().RecentEntries(cfg.ResultLimit)
	if err != nil {
		return fmt.Errorf("failed to list reading entries: %w", err)
	}
	return outwriter.PrintListResults(entries, cfg)
}

// ExecuteShow prints the full entry for a paper ID.
func ExecuteShow(cfg *contract.Config, mgr contract.StoreManager) error {
	entry, err := mgr.GetLogStore().FindByPaperID(cfg.PaperIDArg)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("no log found with paper ID %q", cfg.PaperIDArg)
	}
	if err != nil {
		return fmt.Errorf("failed to look up paper ID %q: %w", cfg.PaperIDArg, err)
	}
	return outwriter.PrintEntry(entry, cfg)
}

// ExecuteRemove deletes all entries with a paper ID.
func ExecuteRemove(cfg *contract.Config, mgr contract.StoreManager) error {
	deleted, err := mgr.GetLogStore().DeleteByPaperID(cfg.PaperIDArg)
	if err != nil {
		return fmt.Errorf("failed to remove paper ID %q: %w", cfg.PaperIDArg, err)
	}
	if deleted == 0 {
		return fmt.Errorf("no log found with paper ID %q", cfg.PaperIDArg)
	}
	return outwriter.PrintRemoved(cfg.PaperIDArg, deleted)
}

// GetStatsResult computes the stats without printing. Used by the MCP server.
func GetStatsResult(cfg *contract.Config, mgr contract.StoreManager) (schema.StatsResult, error) {
	return computeStats(cfg, mgr.GetLogStore())
}

// GetForestGrid builds the forest grid without printing. Used by the MCP server.
func GetForestGrid(cfg *contract.Config, mgr contract.StoreManager) (schema.Grid, error) {
	return buildForest(cfg, mgr.GetLogStore())
}

// computeStats derives totals and streaks from the store.
func computeStats(cfg *contract.Config, store contract.LogStore) (schema.StatsResult, error) {
	total, err := store.TotalEntries()
	if err != nil {
		return schema.StatsResult{}, fmt.Errorf("failed to count reading entries: %w", err)
	}
	days, err := store.DistinctActiveDays()
	if err != nil {
		return schema.StatsResult{}, fmt.Errorf("failed to list active days: %w", err)
	}

	current, longest := ComputeStreaks(days, cfg.Today)
	return schema.StatsResult{
		TotalLogs:  total,
		ActiveDays: len(days),
		Streaks:    schema.StreakSummary{Current: current, Longest: longest},
	}, nil
}

// buildForest aggregates per-day counts over the configured window and
// renders them onto the grid.
func buildForest(cfg *contract.Config, store contract.LogStore) (schema.Grid, error) {
	end := cfg.Today
	start := end.AddDate(0, 0, -(cfg.Weeks*7 - 1))

	counts, err := store.CountEventsPerDay(start, end)
	if err != nil {
		return schema.Grid{}, fmt.Errorf("failed to aggregate daily counts: %w", err)
	}

	return BuildGrid(counts, cfg.Weeks, cfg.Today)
}

// generatePaperID derives the fallback identifier for a day: YYYYMMDDN where
// N is one more than the number of entries already logged on that day.
func generatePaperID(store contract.LogStore, day time.Time) (string, error) {
	n, err := store.CountOnDay(day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", day.Format("20060102"), n+1), nil
}
