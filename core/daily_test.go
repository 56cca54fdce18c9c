package core

import (
	"testing"
	"time"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countsFor builds a dense count map over [start, end] from sparse day counts.
func countsFor(start, end time.Time, active map[string]int) map[time.Time]int {
	sparse := make(map[time.Time]int, len(active))
	for s, c := range active {
		sparse[day(s)] = c
	}
	return ZeroFill(sparse, start, end)
}

// TestDailyStreaks tests the per-day streak computation over a window.
func TestDailyStreaks(t *testing.T) {
	start := day("2024-01-01")
	end := day("2024-01-07")

	tests := []struct {
		name     string
		active   map[string]int
		expected map[string]int
	}{
		{
			name:   "no activity",
			active: map[string]int{},
			expected: map[string]int{
				"2024-01-01": 0, "2024-01-02": 0, "2024-01-03": 0,
				"2024-01-04": 0, "2024-01-05": 0, "2024-01-06": 0, "2024-01-07": 0,
			},
		},
		{
			name:   "run resets after a gap",
			active: map[string]int{"2024-01-01": 1, "2024-01-02": 2, "2024-01-04": 1},
			expected: map[string]int{
				"2024-01-01": 1, "2024-01-02": 2, "2024-01-03": 0,
				"2024-01-04": 1, "2024-01-05": 0, "2024-01-06": 0, "2024-01-07": 0,
			},
		},
		{
			name: "full week run",
			active: map[string]int{
				"2024-01-01": 1, "2024-01-02": 1, "2024-01-03": 3,
				"2024-01-04": 1, "2024-01-05": 1, "2024-01-06": 2, "2024-01-07": 1,
			},
			expected: map[string]int{
				"2024-01-01": 1, "2024-01-02": 2, "2024-01-03": 3,
				"2024-01-04": 4, "2024-01-05": 5, "2024-01-06": 6, "2024-01-07": 7,
			},
		},
		{
			name:   "multiple reads per day count as one step",
			active: map[string]int{"2024-01-06": 5, "2024-01-07": 3},
			expected: map[string]int{
				"2024-01-01": 0, "2024-01-02": 0, "2024-01-03": 0,
				"2024-01-04": 0, "2024-01-05": 0, "2024-01-06": 1, "2024-01-07": 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streaks, err := DailyStreaks(countsFor(start, end, tt.active), start, end)
			require.NoError(t, err)

			assert.Len(t, streaks, 7)
			for s, want := range tt.expected {
				assert.Equal(t, want, streaks[day(s)], "streak on %s", s)
			}
		})
	}
}

// TestDailyStreaksContract tests the dense-map contract and range checks.
func TestDailyStreaksContract(t *testing.T) {
	start := day("2024-01-01")
	end := day("2024-01-03")

	t.Run("missing day fails fast", func(t *testing.T) {
		counts := countsFor(start, end, nil)
		delete(counts, day("2024-01-02"))

		_, err := DailyStreaks(counts, start, end)
		require.Error(t, err)
		var cfgErr *contract.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, err.Error(), "2024-01-02")
	})

	t.Run("negative count fails fast", func(t *testing.T) {
		counts := countsFor(start, end, map[string]int{"2024-01-02": -1})

		_, err := DailyStreaks(counts, start, end)
		require.Error(t, err)
		var cfgErr *contract.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("inverted range fails fast", func(t *testing.T) {
		_, err := DailyStreaks(map[time.Time]int{}, end, start)
		require.Error(t, err)
	})
}

// TestDailyStreaksMatchesBackwardWalk cross-checks the forward pass against
// the naive per-day backward walk on a sparse activity pattern.
func TestDailyStreaksMatchesBackwardWalk(t *testing.T) {
	start := day("2024-03-01")
	end := day("2024-03-31")
	counts := countsFor(start, end, map[string]int{
		"2024-03-02": 1, "2024-03-03": 2, "2024-03-04": 1,
		"2024-03-10": 1,
		"2024-03-20": 1, "2024-03-21": 1, "2024-03-22": 3, "2024-03-23": 1,
		"2024-03-31": 2,
	})

	streaks, err := DailyStreaks(counts, start, end)
	require.NoError(t, err)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		want := 0
		for cur := d; !cur.Before(start) && counts[cur] > 0; cur = cur.AddDate(0, 0, -1) {
			want++
		}
		assert.Equal(t, want, streaks[d], "streak on %s", schema.FormatDay(d))
	}
}

// TestZeroFill tests the dense fill at the aggregation boundary.
func TestZeroFill(t *testing.T) {
	start := day("2024-01-01")
	end := day("2024-01-05")
	sparse := map[time.Time]int{day("2024-01-03"): 2}

	dense := ZeroFill(sparse, start, end)

	assert.Len(t, dense, 5)
	assert.Equal(t, 2, dense[day("2024-01-03")])
	for _, s := range []string{"2024-01-01", "2024-01-02", "2024-01-04", "2024-01-05"} {
		c, ok := dense[day(s)]
		assert.True(t, ok, "day %s should be present", s)
		assert.Zero(t, c)
	}
}
