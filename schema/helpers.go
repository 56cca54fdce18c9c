package schema

import "time"

// DayFormat is the layout used for calendar days everywhere: in the
// reading_log table, on the CLI and in generated paper IDs.
const DayFormat = "2006-01-02"

// DayOf normalizes a timestamp to its calendar day: UTC midnight with the
// time component dropped. All core streak math operates on DayOf values so
// that map lookups and AddDate arithmetic stay exact.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDay renders a day in the canonical YYYY-MM-DD form.
func FormatDay(d time.Time) string {
	return d.Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD string into a normalized day.
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DayOf(d), nil
}

// WeekdayIndex returns the grid row for a day: Monday=0 through Sunday=6.
// Go's time.Weekday starts at Sunday, hence the rotation.
func WeekdayIndex(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}
