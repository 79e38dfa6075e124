// controllers/calendar.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"churchease-backend/calendar"
	"churchease-backend/config"
	"churchease-backend/models"
	"churchease-backend/utils"

	"github.com/gin-gonic/gin"
)

var holidayRegistry = calendar.NewPhilippineHolidays()

// GetCalendarData returns the 6x7 month grid with per-day reservation counts
// and the month's holidays. Months are zero-based (January = 0) to match the
// dashboard client.
func GetCalendarData(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month()) - 1

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 11 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid month, expected 0-11")
			return
		}
		month = parsed
	}
	if delta := c.Query("delta"); delta != "" {
		parsed, err := strconv.Atoi(delta)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid delta")
			return
		}
		year, month = calendar.Navigate(year, month, parsed)
	}

	monthStart := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	// Only confirmed bookings appear on the calendar
	type countRow struct {
		Date  time.Time
		Count int
	}
	var rows []countRow
	if err := config.DB.Model(&models.Reservation{}).
		Select("reservation_date AS date, COUNT(*) AS count").
		Where("reservation_date >= ? AND reservation_date < ? AND status IN (?)",
			monthStart, monthEnd, []string{"approved", "completed"}).
		Group("reservation_date").
		Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch calendar data")
		return
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[utils.FormatISODate(row.Date)] = row.Count
	}

	grid := calendar.BuildGrid(year, month, counts)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"grid":     grid,
		"holidays": holidayRegistry.ByMonth(year, month),
	})
}

// GetHoliday looks up a single date in the holiday table
func GetHoliday(c *gin.Context) {
	date := c.Param("date")
	if _, err := utils.ParseISODate(date); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	holiday, ok := holidayRegistry.Lookup(date)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "holiday": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "holiday": holiday})
}
