// controllers/reservation.go
package controllers

import (
	"errors"
	"net/http"

	"churchease-backend/config"
	"churchease-backend/models"
	"churchease-backend/pricing"
	"churchease-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateReservationInput defines the expected JSON structure for creating a reservation
type CreateReservationInput struct {
	ServiceType     string       `json:"serviceType" binding:"required,oneof=wedding baptism funeral confirmation"`
	ReservationDate string       `json:"reservationDate" binding:"required"` // YYYY-MM-DD
	StartTime       string       `json:"startTime" binding:"required"`       // HH:MM
	ClientName      string       `json:"clientName" binding:"required"`
	ClientPhone     string       `json:"clientPhone" binding:"required"`
	ClientEmail     string       `json:"clientEmail" binding:"omitempty,email"`
	Details         models.JSONB `json:"details"`
	Notes           string       `json:"notes"`
}

// UpdateReservationInput defines the expected JSON structure for updating a reservation
type UpdateReservationInput struct {
	ReservationDate *string       `json:"reservationDate"`
	StartTime       *string       `json:"startTime"`
	ClientName      *string       `json:"clientName"`
	ClientPhone     *string       `json:"clientPhone"`
	ClientEmail     *string       `json:"clientEmail"`
	Status          *string       `json:"status" binding:"omitempty,oneof=pending waiting_priest_approval approved completed cancelled"`
	Details         *models.JSONB `json:"details"`
	Notes           *string       `json:"notes"`
}

// CreateReservation creates a new reservation with a generated reservation number
func CreateReservation(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.ClientPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client phone number")
		return
	}

	if !utils.ValidateTimeSlot(input.StartTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "Start time is outside bookable slots")
		return
	}

	reservationDate, err := utils.ParseISODate(input.ReservationDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation date, expected YYYY-MM-DD")
		return
	}

	// Reject double-booking of the same date and time slot
	var conflicting int64
	config.DB.Model(&models.Reservation{}).
		Where("reservation_date = ? AND start_time = ? AND status NOT IN (?)",
			reservationDate, input.StartTime, []string{"cancelled"}).
		Count(&conflicting)
	if conflicting > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Time slot is already reserved")
		return
	}

	details := input.Details
	if details == nil {
		details = models.JSONB{}
	}

	reservation := models.Reservation{
		CreatedByUserID:   userUUID,
		ReservationNumber: utils.GenerateReservationNumber(),
		ServiceType:       input.ServiceType,
		ReservationDate:   reservationDate,
		StartTime:         input.StartTime,
		ClientName:        input.ClientName,
		ClientPhone:       input.ClientPhone,
		ClientEmail:       input.ClientEmail,
		Status:            "pending",
		Details:           details,
		Notes:             input.Notes,
	}

	if err := config.DB.Create(&reservation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reservation")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":            true,
		"data":               reservation,
		"requiresStipendium": pricing.RequiresStipendium(pricing.ServiceType(input.ServiceType)),
	})
}

// GetReservations retrieves reservations, optionally filtered by status and service type
func GetReservations(c *gin.Context) {
	query := config.DB.Preload("Priest").Preload("Payments")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if serviceType := c.Query("service_type"); serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}

	var reservations []models.Reservation
	if err := query.Order("reservation_date, start_time").Find(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reservations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reservations})
}

// GetReservation retrieves a specific reservation by UUID or reservation number
func GetReservation(c *gin.Context) {
	reservation, ok := findReservation(c, c.Param("id"))
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reservation})
}

// GetReservationsByDate lists reservations on a specific date
func GetReservationsByDate(c *gin.Context) {
	date, err := utils.ParseISODate(c.Param("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var reservations []models.Reservation
	if err := config.DB.Preload("Priest").
		Where("reservation_date = ?", date).
		Order("start_time").
		Find(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reservations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "date": c.Param("date"), "reservations": reservations})
}

// GetAvailableSlots returns the free time slots for a date
func GetAvailableSlots(c *gin.Context) {
	date, err := utils.ParseISODate(c.Param("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var occupied []string
	if err := config.DB.Model(&models.Reservation{}).
		Where("reservation_date = ? AND status NOT IN (?)", date, []string{"cancelled"}).
		Pluck("start_time", &occupied).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}

	occupiedSet := make(map[string]bool, len(occupied))
	for _, slot := range occupied {
		occupiedSet[slot] = true
	}

	available := []string{}
	for _, slot := range utils.StandardTimeSlots() {
		if !occupiedSet[slot] {
			available = append(available, slot)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"date":            c.Param("date"),
		"available_slots": available,
		"occupied_slots":  occupied,
		"total_available": len(available),
	})
}

// UpdateReservation updates an existing reservation
func UpdateReservation(c *gin.Context) {
	reservation, ok := findReservation(c, c.Param("id"))
	if !ok {
		return
	}

	var input UpdateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ReservationDate != nil {
		date, err := utils.ParseISODate(*input.ReservationDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation date, expected YYYY-MM-DD")
			return
		}
		reservation.ReservationDate = date
	}
	if input.StartTime != nil {
		if !utils.ValidateTimeSlot(*input.StartTime) {
			utils.RespondWithError(c, http.StatusBadRequest, "Start time is outside bookable slots")
			return
		}
		reservation.StartTime = *input.StartTime
	}
	if input.ClientName != nil {
		reservation.ClientName = *input.ClientName
	}
	if input.ClientPhone != nil {
		if !utils.ValidatePhone(*input.ClientPhone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid client phone number")
			return
		}
		reservation.ClientPhone = *input.ClientPhone
	}
	if input.ClientEmail != nil {
		reservation.ClientEmail = *input.ClientEmail
	}
	if input.Status != nil {
		reservation.Status = *input.Status
	}
	if input.Details != nil {
		reservation.Details = *input.Details
	}
	if input.Notes != nil {
		reservation.Notes = *input.Notes
	}

	if err := config.DB.Save(&reservation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reservation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reservation})
}

// ApproveReservation moves a pending reservation to approved
func ApproveReservation(c *gin.Context) {
	reservation, ok := findReservation(c, c.Param("id"))
	if !ok {
		return
	}

	if reservation.Status != "pending" && reservation.Status != "waiting_priest_approval" {
		utils.RespondWithError(c, http.StatusConflict, "Only pending reservations can be approved")
		return
	}

	reservation.Status = "approved"
	if err := config.DB.Save(&reservation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to approve reservation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reservation})
}

// findReservation loads a reservation by UUID or by its reservation number.
func findReservation(c *gin.Context, identifier string) (models.Reservation, bool) {
	var reservation models.Reservation
	query := config.DB.Preload("Priest").Preload("Payments")

	var err error
	if id, parseErr := uuid.Parse(identifier); parseErr == nil {
		err = query.Where("id = ?", id).First(&reservation).Error
	} else {
		err = query.Where("reservation_number = ?", identifier).First(&reservation).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return models.Reservation{}, false
	}

	return reservation, true
}
