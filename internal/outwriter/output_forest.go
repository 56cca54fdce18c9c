package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/schema"
)

// ForestLines renders a grid into printable lines: a header describing the
// window, then one line per weekday row with its label, oldest week first.
func ForestLines(grid schema.Grid) []string {
	lines := make([]string, 0, 8)
	lines = append(lines, fmt.Sprintf("🌳 PaperForest: last %d weeks (Mon-Sun)", grid.Weeks))
	for r, row := range grid.Cells {
		lines = append(lines, fmt.Sprintf("%s  %s", schema.WeekdayLabels[r], strings.Join(row, "")))
	}
	return lines
}

// PrintForest outputs the forest grid, dispatching based on the output format configured.
func PrintForest(grid schema.Grid, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, grid)
		}, "Wrote JSON forest")
	default:
		// Default to the human-readable grid
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			for _, line := range ForestLines(grid) {
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote forest")
	}
}
