package service

import "time"

// addMonth moves t one calendar month forward in its own location. When the
// day does not exist in the next month it is clamped to that month's last
// day, so Jan 31 becomes Feb 28 or Feb 29.
func addMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	next := time.Date(year, month+1, 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(next.Year(), next.Month()); day > last {
		day = last
	}
	return time.Date(next.Year(), next.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
