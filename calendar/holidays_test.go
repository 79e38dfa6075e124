package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	registry := NewPhilippineHolidays()

	goodFriday, ok := registry.Lookup("2025-04-18")
	require.True(t, ok)
	assert.Equal(t, "Good Friday", goodFriday.Name)
	assert.Equal(t, HolidayRegular, goodFriday.Type)
	assert.Equal(t, CategoryReligious, goodFriday.Category)

	_, ok = registry.Lookup("2025-04-21")
	assert.False(t, ok)

	assert.True(t, registry.IsHoliday("2024-12-25"))
	assert.False(t, registry.IsHoliday("2024-07-04"))
}

func TestByMonth(t *testing.T) {
	registry := NewPhilippineHolidays()

	// December 2025 (zero-based month 11).
	december := registry.ByMonth(2025, 11)
	assert.Len(t, december, 5)
	assert.Contains(t, december, "2025-12-25")
	assert.Contains(t, december, "2025-12-30")

	// No holidays in July 2025.
	assert.Empty(t, registry.ByMonth(2025, 6))

	// Holy Week 2024 falls in March, 2025 in April.
	assert.Contains(t, registry.ByMonth(2024, 2), "2024-03-29")
	assert.Contains(t, registry.ByMonth(2025, 3), "2025-04-18")
}
