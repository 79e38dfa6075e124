// controllers/report.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"churchease-backend/config"
	"churchease-backend/models"
	"churchease-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportController handles all reporting functions
type ReportController struct{}

// StipendiumSummary represents the collected/outstanding totals
type StipendiumSummary struct {
	TotalCollected   float64            `json:"totalCollected"`
	TotalOutstanding float64            `json:"totalOutstanding"`
	PaidCount        int64              `json:"paidCount"`
	PartialCount     int64              `json:"partialCount"`
	PendingCount     int64              `json:"pendingCount"`
	ServiceBreakdown []ServiceBreakdown `json:"serviceBreakdown"`
}

type ServiceBreakdown struct {
	ServiceType string  `json:"serviceType"`
	Payments    int64   `json:"payments"`
	Collected   float64 `json:"collected"`
	Outstanding float64 `json:"outstanding"`
}

// GetStipendiumSummary returns collected and outstanding stipendium totals,
// optionally bounded by start_date/end_date query parameters
func (rc *ReportController) GetStipendiumSummary(c *gin.Context) {
	var startDate, endDate *time.Time

	if start := c.Query("start_date"); start != "" {
		parsed, err := utils.ParseISODate(start)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		startDate = &parsed
	}
	if end := c.Query("end_date"); end != "" {
		parsed, err := utils.ParseISODate(end)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		exclusive := parsed.AddDate(0, 0, 1)
		endDate = &exclusive
	}

	// Fresh builder per metric; GORM accumulates conditions on a shared one
	scoped := func() *gorm.DB {
		q := config.DB.Model(&models.Payment{})
		if startDate != nil {
			q = q.Where("payment_date >= ?", *startDate)
		}
		if endDate != nil {
			q = q.Where("payment_date < ?", *endDate)
		}
		return q
	}

	var summary StipendiumSummary
	scoped().Select("COALESCE(SUM(amount_paid), 0)").Scan(&summary.TotalCollected)
	scoped().Select("COALESCE(SUM(balance), 0)").Scan(&summary.TotalOutstanding)
	scoped().Where("payment_status = ?", "Paid").Count(&summary.PaidCount)
	scoped().Where("payment_status = ?", "Partial").Count(&summary.PartialCount)
	scoped().Where("payment_status = ?", "Pending").Count(&summary.PendingCount)

	if err := config.DB.Model(&models.Payment{}).
		Select("service_type, COUNT(*) AS payments, COALESCE(SUM(amount_paid), 0) AS collected, COALESCE(SUM(balance), 0) AS outstanding").
		Group("service_type").
		Scan(&summary.ServiceBreakdown).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute service breakdown")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

// GetMonthlyReservations returns reservation counts per month for a year
func (rc *ReportController) GetMonthlyReservations(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = parsed
	}

	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	type monthRow struct {
		Month int   `json:"month"`
		Count int64 `json:"count"`
	}
	var rows []monthRow
	if err := config.DB.Model(&models.Reservation{}).
		Select("EXTRACT(MONTH FROM reservation_date)::int AS month, COUNT(*) AS count").
		Where("reservation_date >= ? AND reservation_date < ?", yearStart, yearEnd).
		Group("month").
		Order("month").
		Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute monthly reservations")
		return
	}

	// Zero-fill missing months
	counts := make([]int64, 12)
	for _, row := range rows {
		if row.Month >= 1 && row.Month <= 12 {
			counts[row.Month-1] = row.Count
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "year": year, "monthly_counts": counts})
}
