// calendar/holidays.go
package calendar

import "fmt"

// Holiday types and categories as used by the dashboard legend.
const (
	HolidayRegular = "regular"
	HolidaySpecial = "special"

	CategoryNational  = "national"
	CategoryReligious = "religious"
	CategoryCultural  = "cultural"
)

// Holiday is one static Philippine holiday record.
type Holiday struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

// HolidayRegistry is a fixed lookup table of Philippine holidays. Movable
// feasts (Holy Week, Chinese New Year) are pre-tabulated per year, not
// computed.
type HolidayRegistry struct {
	holidays map[string]Holiday
}

// NewPhilippineHolidays returns the registry seeded with the 2024 and 2025
// official holidays and observances.
func NewPhilippineHolidays() *HolidayRegistry {
	entries := []Holiday{
		// 2024
		{"2024-01-01", "New Year's Day", HolidayRegular, CategoryNational},
		{"2024-02-10", "Chinese New Year", HolidaySpecial, CategoryCultural},
		{"2024-02-25", "EDSA Anniversary", HolidaySpecial, CategoryNational},
		{"2024-03-28", "Maundy Thursday", HolidayRegular, CategoryReligious},
		{"2024-03-29", "Good Friday", HolidayRegular, CategoryReligious},
		{"2024-03-30", "Black Saturday", HolidaySpecial, CategoryReligious},
		{"2024-03-31", "Easter Sunday", HolidaySpecial, CategoryReligious},
		{"2024-04-09", "Day of Valor", HolidayRegular, CategoryNational},
		{"2024-05-01", "Labor Day", HolidayRegular, CategoryNational},
		{"2024-06-12", "Independence Day", HolidayRegular, CategoryNational},
		{"2024-08-21", "Ninoy Aquino Day", HolidaySpecial, CategoryNational},
		{"2024-08-26", "Heroes Day", HolidayRegular, CategoryNational},
		{"2024-11-01", "All Saints' Day", HolidaySpecial, CategoryReligious},
		{"2024-11-02", "All Souls' Day", HolidaySpecial, CategoryReligious},
		{"2024-11-30", "Bonifacio Day", HolidayRegular, CategoryNational},
		{"2024-12-08", "Immaculate Conception", HolidaySpecial, CategoryReligious},
		{"2024-12-24", "Christmas Eve", HolidaySpecial, CategoryReligious},
		{"2024-12-25", "Christmas Day", HolidayRegular, CategoryReligious},
		{"2024-12-30", "Rizal Day", HolidayRegular, CategoryNational},
		{"2024-12-31", "New Year's Eve", HolidaySpecial, CategoryNational},

		// 2025
		{"2025-01-01", "New Year's Day", HolidayRegular, CategoryNational},
		{"2025-01-29", "Chinese New Year", HolidaySpecial, CategoryCultural},
		{"2025-02-25", "EDSA Anniversary", HolidaySpecial, CategoryNational},
		{"2025-04-09", "Day of Valor", HolidayRegular, CategoryNational},
		{"2025-04-17", "Maundy Thursday", HolidayRegular, CategoryReligious},
		{"2025-04-18", "Good Friday", HolidayRegular, CategoryReligious},
		{"2025-04-19", "Black Saturday", HolidaySpecial, CategoryReligious},
		{"2025-04-20", "Easter Sunday", HolidaySpecial, CategoryReligious},
		{"2025-05-01", "Labor Day", HolidayRegular, CategoryNational},
		{"2025-06-12", "Independence Day", HolidayRegular, CategoryNational},
		{"2025-08-21", "Ninoy Aquino Day", HolidaySpecial, CategoryNational},
		{"2025-08-25", "Heroes Day", HolidayRegular, CategoryNational},
		{"2025-11-01", "All Saints' Day", HolidaySpecial, CategoryReligious},
		{"2025-11-02", "All Souls' Day", HolidaySpecial, CategoryReligious},
		{"2025-11-30", "Bonifacio Day", HolidayRegular, CategoryNational},
		{"2025-12-08", "Immaculate Conception", HolidaySpecial, CategoryReligious},
		{"2025-12-24", "Christmas Eve", HolidaySpecial, CategoryReligious},
		{"2025-12-25", "Christmas Day", HolidayRegular, CategoryReligious},
		{"2025-12-30", "Rizal Day", HolidayRegular, CategoryNational},
		{"2025-12-31", "New Year's Eve", HolidaySpecial, CategoryNational},
	}

	holidays := make(map[string]Holiday, len(entries))
	for _, h := range entries {
		holidays[h.Date] = h
	}
	return &HolidayRegistry{holidays: holidays}
}

// Lookup returns the holiday on the given ISO date, if any.
func (r *HolidayRegistry) Lookup(date string) (Holiday, bool) {
	h, ok := r.holidays[date]
	return h, ok
}

// IsHoliday reports whether the given ISO date is a known holiday.
func (r *HolidayRegistry) IsHoliday(date string) bool {
	_, ok := r.holidays[date]
	return ok
}

// ByMonth returns all holidays in the given zero-based month, keyed by date.
func (r *HolidayRegistry) ByMonth(year, month int) map[string]Holiday {
	prefix := fmt.Sprintf("%04d-%02d", year, month+1)
	result := make(map[string]Holiday)
	for date, h := range r.holidays {
		if len(date) >= 7 && date[:7] == prefix {
			result[date] = h
		}
	}
	return result
}
