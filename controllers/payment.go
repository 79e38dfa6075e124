// controllers/payment.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"churchease-backend/config"
	"churchease-backend/models"
	"churchease-backend/pricing"
	"churchease-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePaymentInput defines the expected JSON structure for creating a payment
type CreatePaymentInput struct {
	ReservationID  string  `json:"reservationId" binding:"required"` // UUID or reservation number
	PaymentMethod  string  `json:"paymentMethod" binding:"required,oneof=Cash GCash"`
	PaymentType    string  `json:"paymentType" binding:"required,oneof=Full Downpayment"`
	DiscountType   string  `json:"discountType" binding:"omitempty,oneof=none percentage fixed"`
	DiscountValue  float64 `json:"discountValue" binding:"min=0"`
	AmountPaid     float64 `json:"amountPaid" binding:"min=0"`
	GCashReference string  `json:"gcashReference"`
	Notes          string  `json:"notes"`
}

// UpdatePaymentInput defines the expected JSON structure for updating a payment
type UpdatePaymentInput struct {
	AmountPaid     *float64 `json:"amountPaid" binding:"omitempty,min=0"`
	PaymentMethod  *string  `json:"paymentMethod" binding:"omitempty,oneof=Cash GCash"`
	PaymentType    *string  `json:"paymentType" binding:"omitempty,oneof=Full Downpayment"`
	GCashReference *string  `json:"gcashReference"`
	Notes          *string  `json:"notes"`
}

// loadPricingEngine builds a pricing engine from defaults merged with the
// active rows of service_pricing. A failing or empty table is non-fatal;
// the defaults stay in effect.
func loadPricingEngine() *pricing.Engine {
	engine := pricing.NewEngine()

	var rows []models.ServicePrice
	if err := config.DB.Where("is_active = true").Find(&rows).Error; err != nil {
		log.Printf("Failed to load service pricing, using defaults: %v", err)
		return engine
	}

	records := make([]pricing.PriceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, pricing.PriceRecord{
			ServiceType: pricing.ServiceType(row.ServiceType),
			BasePrice:   row.BasePrice,
		})
	}
	engine.ApplyPricing(records)
	return engine
}

// CreatePayment validates and records a stipendium payment for a reservation
func CreatePayment(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reservation, ok := findReservation(c, input.ReservationID)
	if !ok {
		return
	}

	if !pricing.RequiresStipendium(pricing.ServiceType(reservation.ServiceType)) {
		utils.RespondWithError(c, http.StatusBadRequest, "Service type does not require a stipendium")
		return
	}

	// Validate the submitted form; all violations are reported together
	validation := pricing.ValidatePaymentForm(pricing.PaymentForm{
		PaymentMethod:  input.PaymentMethod,
		PaymentType:    input.PaymentType,
		AmountPaid:     input.AmountPaid,
		GCashReference: input.GCashReference,
	})
	if !validation.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": validation.Errors})
		return
	}

	discountType := input.DiscountType
	if discountType == "" {
		discountType = "none"
	}

	engine := loadPricingEngine()
	result, ok := engine.Quote(pricing.PaymentInput{
		ServiceType: pricing.ServiceType(reservation.ServiceType),
		Discount: pricing.DiscountSpec{
			Kind:  pricing.DiscountKind(discountType),
			Value: input.DiscountValue,
		},
		AmountPaid:  input.AmountPaid,
		PaymentType: pricing.PaymentType(input.PaymentType),
	})
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown service type")
		return
	}

	// A downpayment below the 50% minimum is a result state, not an
	// exception; surface the message and do not persist anything.
	if result.Status == pricing.StatusInvalidAmount {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  []string{result.ValidationMessage},
			"data":    result,
		})
		return
	}

	payment := models.Payment{
		ID:              uuid.New(),
		ReservationID:   reservation.ID,
		CreatedByUserID: userUUID,
		ServiceType:     reservation.ServiceType,
		PaymentDate:     time.Now(),
		PaymentMethod:   input.PaymentMethod,
		PaymentType:     input.PaymentType,
		BasePrice:       result.BasePrice,
		DiscountType:    discountType,
		DiscountValue:   input.DiscountValue,
		DiscountAmount:  result.DiscountAmount,
		AmountDue:       result.AmountDue,
		AmountPaid:      input.AmountPaid,
		Balance:         result.Balance,
		PaymentStatus:   result.Status,
		GCashReference:  input.GCashReference,
		Notes:           input.Notes,
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": payment})
}

// GetPaymentsByReservation retrieves payments by reservation UUID or number
func GetPaymentsByReservation(c *gin.Context) {
	reservation, ok := findReservation(c, c.Param("id"))
	if !ok {
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("reservation_id = ?", reservation.ID).
		Order("payment_date").
		Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": payments})
}

// UpdatePayment adjusts an existing payment and recomputes its balance and status
func UpdatePayment(c *gin.Context) {
	paymentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID format")
		return
	}

	var input UpdatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var payment models.Payment
	if err := config.DB.Where("id = ?", paymentUUID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.PaymentMethod != nil {
		payment.PaymentMethod = *input.PaymentMethod
	}
	if input.PaymentType != nil {
		payment.PaymentType = *input.PaymentType
	}
	if input.GCashReference != nil {
		payment.GCashReference = *input.GCashReference
	}
	if input.Notes != nil {
		payment.Notes = *input.Notes
	}
	if input.AmountPaid != nil {
		payment.AmountPaid = *input.AmountPaid
	}

	if payment.PaymentMethod == "GCash" {
		if ref := pricing.ValidateGCashReference(payment.GCashReference); !ref.Valid {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{ref.Message}})
			return
		}
	}

	// Recompute from the stored numeric amount due; formatted strings are
	// never round-tripped.
	result := pricing.ComputeBalanceAndStatus(payment.AmountDue, payment.AmountPaid,
		pricing.PaymentType(payment.PaymentType))
	if result.Status == pricing.StatusInvalidAmount {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{result.ValidationMessage}})
		return
	}
	payment.Balance = result.Balance
	payment.PaymentStatus = result.Status

	if err := config.DB.Save(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": payment})
}
