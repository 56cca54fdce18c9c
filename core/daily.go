package core

import (
	"time"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/schema"
)

// DailyStreaks computes, for every day in [start, end], the length of the
// consecutive-day active run ending at that day: 0 for a day without
// readings, otherwise 1 plus the active days immediately before it inside
// the window.
//
// The count map must be dense over the range (zero-filled, no missing keys);
// a gap is a contract violation and fails fast with a ConfigError. The
// implementation is a single forward pass carrying a running counter that
// resets on inactive days, which is O(window) instead of the O(window²)
// per-day backward walk.
func DailyStreaks(counts map[time.Time]int, start, end time.Time) (map[time.Time]int, error) {
	startDay := schema.DayOf(start)
	endDay := schema.DayOf(end)
	if startDay.After(endDay) {
		return nil, contract.NewConfigError("start %s is after end %s", schema.FormatDay(startDay), schema.FormatDay(endDay))
	}

	streaks := make(map[time.Time]int, len(counts))
	run := 0
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		c, ok := counts[d]
		if !ok {
			return nil, contract.NewConfigError("count map is missing %s; the range [%s, %s] must be dense",
				schema.FormatDay(d), schema.FormatDay(startDay), schema.FormatDay(endDay))
		}
		if c < 0 {
			return nil, contract.NewConfigError("count for %s is negative (%d)", schema.FormatDay(d), c)
		}
		if c > 0 {
			run++
		} else {
			run = 0
		}
		streaks[d] = run
	}

	return streaks, nil
}

// ZeroFill returns a dense copy of counts covering every day in [start, end],
// inserting 0 for absent days. Store queries only report days that have rows,
// so this is the explicit fill step at the aggregation boundary that the
// forward-pass walk in DailyStreaks relies on.
func ZeroFill(counts map[time.Time]int, start, end time.Time) map[time.Time]int {
	startDay := schema.DayOf(start)
	endDay := schema.DayOf(end)

	dense := make(map[time.Time]int)
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		dense[d] = counts[d]
	}
	return dense
}
