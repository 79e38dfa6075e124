// calendar/grid.go
package calendar

import "time"

// Months are zero-based throughout this package (January = 0), matching
// the dashboard client contract.

const (
	gridRows = 6
	gridCols = 7
)

// Cell is one day slot in the month grid. Date is empty for padding cells
// belonging to the previous or next month.
type Cell struct {
	Date             string `json:"date"`
	InCurrentMonth   bool   `json:"inCurrentMonth"`
	ReservationCount int    `json:"reservationCount"`
}

// Grid is a fixed 6-row, 7-column month layout, Sunday-first.
type Grid struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Weeks [][]Cell `json:"weeks"`
}

// BuildGrid lays out a month as 6 weeks of 7 cells. reservationCounts maps
// ISO dates (YYYY-MM-DD) to the number of reservations on that day; dates
// outside the month are ignored.
func BuildGrid(year, month int, reservationCounts map[string]int) Grid {
	firstOfMonth := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	firstWeekday := int(firstOfMonth.Weekday()) // 0 = Sunday
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()

	weeks := make([][]Cell, gridRows)
	date := 1
	for week := 0; week < gridRows; week++ {
		row := make([]Cell, gridCols)
		for day := 0; day < gridCols; day++ {
			if (week == 0 && day < firstWeekday) || date > daysInMonth {
				continue // padding cell, zero value
			}
			iso := time.Date(year, time.Month(month+1), date, 0, 0, 0, 0, time.UTC).
				Format("2006-01-02")
			row[day] = Cell{
				Date:             iso,
				InCurrentMonth:   true,
				ReservationCount: reservationCounts[iso],
			}
			date++
		}
		weeks[week] = row
	}

	return Grid{Year: year, Month: month, Weeks: weeks}
}

// Navigate steps the displayed month by delta months, rolling the year over
// at the December/January boundary.
func Navigate(year, month, delta int) (int, int) {
	month += delta
	for month < 0 {
		month += 12
		year--
	}
	for month > 11 {
		month -= 12
		year++
	}
	return year, month
}
