package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/internal/parquet"
	"github.com/IsaacParker30/paper-read/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// listHeader is the shared column layout for tabular list output.
var listHeader = []string{"Logged On", "Paper ID", "Words", "Title"}

// PrintListResults outputs the recent entries, dispatching based on the output format configured.
func PrintListResults(entries []schema.ReadingEntry, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForList(entries, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForList(entries, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForList(entries, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printListTable(entries, cfg); err != nil {
			return fmt.Errorf("error writing list table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForList handles opening the file and calling the JSON writer.
func printJSONResultsForList(entries []schema.ReadingEntry, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, entries)
	}, "Wrote JSON list results")
}

// printCSVResultsForList handles opening the file and calling the CSV writer.
func printCSVResultsForList(entries []schema.ReadingEntry, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()

		if err := csvWriter.Write(listHeader); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		for _, e := range entries {
			row := []string{schema.FormatDay(e.LoggedOn), e.PaperID, strconv.Itoa(e.WordCount), e.Title}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	}, "Wrote CSV list results")
}

// printParquetResultsForList exports the entries to a Parquet file.
// Parquet is a binary format, so a destination file is required.
func printParquetResultsForList(entries []schema.ReadingEntry, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if err := parquet.WriteReadingLogParquet(entries, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet list results to %s\n", cfg.OutputFile)
	return nil
}

// printListTable prints the entries in a four-column table.
func printListTable(entries []schema.ReadingEntry, cfg *contract.Config) error {
	// Use os.Stdout, consistent with existing table printing
	table := tablewriter.NewWriter(os.Stdout)

	table.Header(listHeader)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxTitle := GetMaxTableTitleWidth(cfg)
	var data [][]string
	for _, e := range entries {
		row := []string{
			schema.FormatDay(e.LoggedOn),
			e.PaperID,
			strconv.Itoa(e.WordCount),
			contract.TruncateTitle(e.Title, maxTitle),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Showing %d most recent log(s).\n", len(entries))
	return nil
}
