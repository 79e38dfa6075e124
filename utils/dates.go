// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ParseISODate parses a YYYY-MM-DD string in UTC.
func ParseISODate(date string) (time.Time, error) {
	return time.Parse("2006-01-02", date)
}

// FormatISODate renders a time as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
