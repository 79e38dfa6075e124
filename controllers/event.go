// controllers/event.go
package controllers

import (
	"errors"
	"net/http"

	"churchease-backend/config"
	"churchease-backend/models"
	"churchease-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateEventInput defines the expected JSON structure for creating a church event
type CreateEventInput struct {
	Title       string `json:"title" binding:"required"`
	EventType   string `json:"eventType" binding:"omitempty,oneof=worship prayer youth outreach special bible-study fellowship meeting other"`
	EventDate   string `json:"eventDate" binding:"required"` // YYYY-MM-DD
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// UpdateEventInput defines the expected JSON structure for updating a church event
type UpdateEventInput struct {
	Title       *string `json:"title"`
	EventType   *string `json:"eventType" binding:"omitempty,oneof=worship prayer youth outreach special bible-study fellowship meeting other"`
	EventDate   *string `json:"eventDate"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// GetEvents retrieves all church events, optionally filtered by type
func GetEvents(c *gin.Context) {
	query := config.DB.Model(&models.ChurchEvent{})
	if eventType := c.Query("event_type"); eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	var events []models.ChurchEvent
	if err := query.Order("event_date, start_time").Find(&events).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve events")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": events})
}

// CreateEvent creates a new church event
func CreateEvent(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	eventDate, err := utils.ParseISODate(input.EventDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid event date, expected YYYY-MM-DD")
		return
	}

	eventType := input.EventType
	if eventType == "" {
		eventType = "other"
	}

	event := models.ChurchEvent{
		CreatedByUserID: userUUID,
		Title:           input.Title,
		EventType:       eventType,
		EventDate:       eventDate,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Location:        input.Location,
		Description:     input.Description,
	}

	if err := config.DB.Create(&event).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": event})
}

// UpdateEvent updates an existing church event
func UpdateEvent(c *gin.Context) {
	eventUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid event ID format")
		return
	}

	var input UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var event models.ChurchEvent
	if err := config.DB.Where("id = ?", eventUUID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Event not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.EventType != nil {
		event.EventType = *input.EventType
	}
	if input.EventDate != nil {
		eventDate, err := utils.ParseISODate(*input.EventDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid event date, expected YYYY-MM-DD")
			return
		}
		event.EventDate = eventDate
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = *input.EndTime
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Description != nil {
		event.Description = *input.Description
	}

	if err := config.DB.Save(&event).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": event})
}
