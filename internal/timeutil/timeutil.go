package timeutil

import "time"

// CompactDateLayout is the 8-digit date format (YYYYMMDD) used by scoreboard date queries.
const CompactDateLayout = "20060102"

// FormatCompactDate formats a time as YYYYMMDD in its current location.
func FormatCompactDate(t time.Time) string {
	return t.Format(CompactDateLayout)
}

// DayWindow returns the UTC calendar days from `before` days earlier than now's UTC date through
// `after` days later, in ascending order.
func DayWindow(now time.Time, before, after int) []time.Time {
	if before < 0 || after < 0 {
		return nil
	}
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	days := make([]time.Time, 0, before+after+1)
	for offset := -before; offset <= after; offset++ {
		days = append(days, today.AddDate(0, 0, offset))
	}
	return days
}
