// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"churchease-backend/config"
	"churchease-backend/models"
	"churchease-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the overview counters for the main dashboard
func GetDashboardStats(c *gin.Context) {
	now := time.Now()
	today := utils.BeginningOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekEnd := today.AddDate(0, 0, 7)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	reservationCount := func(query string, args ...interface{}) int64 {
		var count int64
		q := config.DB.Model(&models.Reservation{})
		if query != "" {
			q = q.Where(query, args...)
		}
		q.Count(&count)
		return count
	}

	totalReservations := reservationCount("")
	pendingReservations := reservationCount("status = ?", "pending")
	approvedReservations := reservationCount("status = ?", "approved")
	completedReservations := reservationCount("status = ?", "completed")
	todayReservations := reservationCount("reservation_date >= ? AND reservation_date < ?", today, tomorrow)
	weekReservations := reservationCount("reservation_date >= ? AND reservation_date < ?", today, weekEnd)
	pendingPriestApprovals := reservationCount("status IN (?)", []string{"pending", "waiting_priest_approval"})

	// This month's revenue from recorded payments
	var monthRevenue float64
	config.DB.Model(&models.Payment{}).
		Where("payment_date >= ?", firstOfMonth).
		Select("COALESCE(SUM(amount_paid), 0)").Scan(&monthRevenue)

	serviceCounts := gin.H{}
	for _, serviceType := range []string{"wedding", "baptism", "funeral", "confirmation"} {
		serviceCounts[serviceType] = reservationCount("service_type = ?", serviceType)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_reservations":       totalReservations,
		"pending_reservations":     pendingReservations,
		"approved_reservations":    approvedReservations,
		"completed_reservations":   completedReservations,
		"today_reservations":       todayReservations,
		"week_reservations":        weekReservations,
		"pending_priest_approvals": pendingPriestApprovals,
		"month_revenue":            monthRevenue,
		"service_counts":           serviceCounts,
	})
}

// GetTodaySchedule lists today's reservations in time order
func GetTodaySchedule(c *gin.Context) {
	today := utils.BeginningOfDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	var reservations []models.Reservation
	if err := config.DB.Preload("Priest").
		Where("reservation_date >= ? AND reservation_date < ? AND status NOT IN (?)",
			today, tomorrow, []string{"cancelled"}).
		Order("start_time").
		Find(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve today's schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reservations})
}
