// controllers/priest.go
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

// CreatePriestInput defines the expected JSON structure for creating a priest
type CreatePriestInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// UpdatePriestInput defines the expected JSON structure for updating a priest
type UpdatePriestInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	IsActive  *bool   `json:"isActive"`
}

// AssignPriestInput identifies the priest to assign to a reservation
type AssignPriestInput struct {
	PriestID uuid.UUID `json:"priestId" binding:"required"`
}

// GetPriests retrieves all active priests
func GetPriests(c *gin.Context) {
	var priests []models.Priest
	if err := config.DB.Where("is_active = true").Order("last_name, first_name").
		Find(&priests).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve priests")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": priests})
}

// GetPriest retrieves a specific priest by ID
func GetPriest(c *gin.Context) {
	priestUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid priest ID format")
		return
	}

	var priest models.Priest
	if err := config.DB.Where("id = ?", priestUUID).First(&priest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Priest not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": priest})
}

// CreatePriest creates a new priest record
func CreatePriest(c *gin.Context) {
	var input CreatePriestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	priest := models.Priest{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Email:     input.Email,
		IsActive:  true,
	}

	if err := config.DB.Create(&priest).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create priest")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": priest})
}

// UpdatePriest updates an existing priest record
func UpdatePriest(c *gin.Context) {
	priestUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid priest ID format")
		return
	}

	var input UpdatePriestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var priest models.Priest
	if err := config.DB.Where("id = ?", priestUUID).First(&priest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Priest not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.FirstName != nil {
		priest.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		priest.LastName = *input.LastName
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
			return
		}
		priest.Phone = *input.Phone
	}
	if input.Email != nil {
		priest.Email = *input.Email
	}
	if input.IsActive != nil {
		priest.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&priest).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update priest")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": priest})
}

// DeletePriest soft deletes a priest
func DeletePriest(c *gin.Context) {
	priestUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid priest ID format")
		return
	}

	result := config.DB.Where("id = ?", priestUUID).Delete(&models.Priest{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete priest")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Priest not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Priest deleted successfully"})
}

// AssignPriest assigns a priest to a reservation and marks it as waiting
// for the priest's confirmation
func AssignPriest(c *gin.Context) {
	reservation, ok := findReservation(c, c.Param("id"))
	if !ok {
		return
	}

	var input AssignPriestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var priest models.Priest
	if err := config.DB.Where("id = ? AND is_active = true", input.PriestID).
		First(&priest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Priest not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	reservation.PriestID = &priest.ID
	if reservation.Status == "pending" {
		reservation.Status = "waiting_priest_approval"
	}

	if err := config.DB.Save(&reservation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign priest")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reservation})
}
