package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertGridShape(t *testing.T, grid Grid) {
	t.Helper()
	require.Len(t, grid.Weeks, 6)
	for _, week := range grid.Weeks {
		require.Len(t, week, 7)
	}
}

func inMonthCells(grid Grid) []Cell {
	var cells []Cell
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.InCurrentMonth {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

func TestBuildGridShapeAcrossMonthLengths(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		days  int
	}{
		{"february 28 days", 2025, 1, 28},
		{"february leap 29 days", 2024, 1, 29},
		{"april 30 days", 2025, 3, 30},
		{"january 31 days", 2025, 0, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildGrid(tt.year, tt.month, nil)
			assertGridShape(t, grid)
			assert.Len(t, inMonthCells(grid), tt.days)
		})
	}
}

func TestBuildGridEveryStartingWeekday(t *testing.T) {
	// The twelve months of 2025 start on every weekday at least once.
	for month := 0; month < 12; month++ {
		grid := BuildGrid(2025, month, nil)
		assertGridShape(t, grid)
	}
}

func TestBuildGridCellPlacement(t *testing.T) {
	// June 2025 starts on a Sunday.
	grid := BuildGrid(2025, 5, nil)
	assert.Equal(t, "2025-06-01", grid.Weeks[0][0].Date)
	assert.True(t, grid.Weeks[0][0].InCurrentMonth)
	assert.Equal(t, "2025-06-30", grid.Weeks[4][1].Date)

	// October 2025 starts on a Wednesday: leading cells are padding.
	oct := BuildGrid(2025, 9, nil)
	for day := 0; day < 3; day++ {
		assert.False(t, oct.Weeks[0][day].InCurrentMonth)
		assert.Empty(t, oct.Weeks[0][day].Date)
	}
	assert.Equal(t, "2025-10-01", oct.Weeks[0][3].Date)
}

func TestBuildGridReservationCounts(t *testing.T) {
	counts := map[string]int{
		"2025-06-15": 3,
		"2025-06-01": 1,
		"2025-07-01": 9, // outside the month, ignored
	}
	grid := BuildGrid(2025, 5, counts)

	var total int
	for _, cell := range inMonthCells(grid) {
		total += cell.ReservationCount
		if cell.Date == "2025-06-15" {
			assert.Equal(t, 3, cell.ReservationCount)
		}
	}
	assert.Equal(t, 4, total)
}

func TestNavigateYearRollover(t *testing.T) {
	year, month := Navigate(2024, 11, 1)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 0, month)

	year, month = Navigate(2024, 0, -1)
	assert.Equal(t, 2023, year)
	assert.Equal(t, 11, month)

	year, month = Navigate(2024, 5, 1)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 6, month)
}
