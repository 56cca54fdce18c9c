// Package parquet provides data structures and functions for exporting the
// reading log to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/IsaacParker30/paper-read/schema"
	"github.com/parquet-go/parquet-go"
)

// ReadingLogRow represents a single reading entry in a Parquet export.
// This struct maps to the reading_log database table.
type ReadingLogRow struct {
	// ID is the row identifier from the reading log
	ID int64 `parquet:"id,snappy"`

	// Title is the paper title as provided by the user
	Title string `parquet:"title,snappy"`

	// PaperID is the external or generated identifier
	PaperID string `parquet:"paper_id,snappy"`

	// Summary is the summary text written by the user
	Summary string `parquet:"summary,snappy"`

	// WordCount is the number of words in Summary
	WordCount int32 `parquet:"word_count,snappy"`

	// LoggedOn is the calendar day of the reading (stored as TIMESTAMP)
	LoggedOn time.Time `parquet:"logged_on,snappy"`
}

// WriteReadingLogParquet writes a slice of reading entries to a Parquet file.
func WriteReadingLogParquet(entries []schema.ReadingEntry, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ReadingLogRow struct tags
	writer := parquet.NewGenericWriter[ReadingLogRow](file)
	defer func() { _ = writer.Close() }()

	rows := ConvertReadingEntries(entries)

	// Write all records to the file
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertReadingEntries maps store entries onto the Parquet row schema.
func ConvertReadingEntries(entries []schema.ReadingEntry) []ReadingLogRow {
	rows := make([]ReadingLogRow, len(entries))
	for i, e := range entries {
		rows[i] = ReadingLogRow{
			ID:        e.ID,
			Title:     e.Title,
			PaperID:   e.PaperID,
			Summary:   e.Summary,
			WordCount: int32(e.WordCount),
			LoggedOn:  e.LoggedOn,
		}
	}
	return rows
}
