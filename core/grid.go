package core

import (
	"time"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/schema"
)

// BuildGrid lays per-day streak values onto the forest grid: 7 weekday rows
// (Monday first) by week columns, oldest column on the left.
//
// The window is the weeks*7 days ending at today. The left edge is shifted
// back to the Monday on or before the window start so every column is a full
// Monday–Sunday week; the pulled-in padding days render as blank cells and
// never carry a streak value. In-window days render the stage symbol of
// their local streak length.
func BuildGrid(counts map[time.Time]int, weeks int, today time.Time) (schema.Grid, error) {
	if weeks <= 0 {
		return schema.Grid{}, contract.NewConfigError("weeks must be greater than 0 (received %d)", weeks)
	}

	end := schema.DayOf(today)
	start := end.AddDate(0, 0, -(weeks*7 - 1))

	streaks, err := DailyStreaks(counts, start, end)
	if err != nil {
		return schema.Grid{}, err
	}

	startAligned := start.AddDate(0, 0, -schema.WeekdayIndex(start))
	daysTotal := int(end.Sub(startAligned).Hours()/24) + 1
	cols := (daysTotal + 6) / 7

	cells := make([][]string, 7)
	for r := range cells {
		cells[r] = make([]string, cols)
		for c := range cells[r] {
			cells[r][c] = schema.BlankCell
		}
	}

	for i := range daysTotal {
		d := startAligned.AddDate(0, 0, i)
		if d.Before(start) || d.After(end) {
			continue // alignment padding stays blank
		}
		cells[schema.WeekdayIndex(d)][i/7] = StageSymbol(streaks[d])
	}

	return schema.Grid{
		Cells:        cells,
		Weeks:        weeks,
		Start:        start,
		End:          end,
		StartAligned: startAligned,
	}, nil
}
