package outwriter

import (
	"fmt"
	"io"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/schema"
)

// statsPayload bundles the stats with the rendered grid for JSON output.
type statsPayload struct {
	schema.StatsResult
	Grid schema.Grid `json:"grid"`
}

// PrintStats outputs totals, streaks and the forest, dispatching on the
// configured output format.
func PrintStats(stats schema.StatsResult, grid schema.Grid, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, statsPayload{StatsResult: stats, Grid: grid})
		}, "Wrote JSON stats")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			label := streakLabel(stats.Streaks.Current, cfg)
			fmt.Fprintf(w, "Total logs: %d\n", stats.TotalLogs)
			fmt.Fprintf(w, "Active days: %d\n", stats.ActiveDays)
			fmt.Fprintf(w, "Current streak: %d [%s]\n", stats.Streaks.Current, label)
			fmt.Fprintf(w, "Longest streak: %d\n", stats.Streaks.Longest)
			fmt.Fprintln(w)
			for _, line := range ForestLines(grid) {
				fmt.Fprintln(w, line)
			}
			return nil
		}, "Wrote stats")
	}
}

// PrintLogResult confirms a newly logged reading and shows the updated
// streaks and forest.
func PrintLogResult(entry schema.ReadingEntry, streaks schema.StreakSummary, grid schema.Grid, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		fmt.Fprintf(w, "✅ Logged %q [%s]\n", entry.Title, entry.PaperID)
		fmt.Fprintf(w, "🔥 Current streak: %d day(s) [%s]\n", streaks.Current, streakLabel(streaks.Current, cfg))
		fmt.Fprintf(w, "🏆 Longest streak: %d day(s)\n", streaks.Longest)
		fmt.Fprintln(w)
		for _, line := range ForestLines(grid) {
			fmt.Fprintln(w, line)
		}
		return nil
	}, "Wrote log result")
}

// PrintEntry outputs a single full reading entry.
func PrintEntry(entry schema.ReadingEntry, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, entry)
		}, "Wrote JSON entry")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			fmt.Fprintf(w, "Log ID: %d\n", entry.ID)
			fmt.Fprintf(w, "Title: %s\n", entry.Title)
			fmt.Fprintf(w, "Paper ID: %s\n", entry.PaperID)
			fmt.Fprintf(w, "Logged on: %s\n", schema.FormatDay(entry.LoggedOn))
			fmt.Fprintf(w, "Word count: %d\n", entry.WordCount)
			fmt.Fprintln(w, "Summary:")
			fmt.Fprintln(w, entry.Summary)
			return nil
		}, "Wrote entry")
	}
}

// PrintRemoved confirms a removal.
func PrintRemoved(paperID string, deleted int64) error {
	_, err := fmt.Printf("✅ Removed %d log(s) with paper ID %q.\n", deleted, paperID)
	return err
}

// streakLabel picks the colored or plain label depending on configuration.
func streakLabel(streak int, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(streak)
	}
	return contract.GetPlainLabel(streak)
}
