// controllers/pricing.go
package controllers

import (
	"log"
	"net/http"

	"churchease-backend/config"
	"churchease-backend/models"
	"churchease-backend/pricing"
	"churchease-backend/utils"

	"github.com/gin-gonic/gin"
)

// UpsertServicePriceInput defines the expected JSON structure for pricing overrides
type UpsertServicePriceInput struct {
	ServiceType string  `json:"serviceType" binding:"required,oneof=wedding baptism funeral confirmation"`
	BasePrice   float64 `json:"basePrice" binding:"min=0"`
	Description string  `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// GetServicePricing lists active pricing rows; built-in defaults are served
// when the table is unavailable or empty
func GetServicePricing(c *gin.Context) {
	var rows []models.ServicePrice
	err := config.DB.Where("is_active = true").Find(&rows).Error
	if err != nil || len(rows) == 0 {
		if err != nil {
			log.Printf("Failed to fetch service pricing, serving defaults: %v", err)
		}
		defaults := []gin.H{}
		for serviceType, price := range pricing.DefaultPrices() {
			defaults = append(defaults, gin.H{
				"service_type": serviceType,
				"base_price":   price,
			})
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": defaults})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// UpsertServicePrice creates or replaces the price for one service type
func UpsertServicePrice(c *gin.Context) {
	var input UpsertServicePriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	var row models.ServicePrice
	result := config.DB.Where("service_type = ?", input.ServiceType).First(&row)
	if result.Error == nil {
		row.BasePrice = input.BasePrice
		row.Description = input.Description
		row.IsActive = isActive
		if err := config.DB.Save(&row).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service price")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
		return
	}

	row = models.ServicePrice{
		ServiceType: input.ServiceType,
		BasePrice:   input.BasePrice,
		Description: input.Description,
		IsActive:    isActive,
	}
	if err := config.DB.Create(&row).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service price")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": row})
}
