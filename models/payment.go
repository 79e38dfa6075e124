package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ReservationID   uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	ServiceType   string    `gorm:"type:varchar(20);not null"`
	PaymentDate   time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"` // Cash, GCash
	PaymentType   string    `gorm:"type:varchar(20);not null"` // Full, Downpayment

	BasePrice      float64 `gorm:"type:decimal(10,2);not null"`
	DiscountType   string  `gorm:"type:varchar(20);default:'none'"`
	DiscountValue  float64 `gorm:"type:decimal(10,2);default:0.0"`
	DiscountAmount float64 `gorm:"type:decimal(10,2);default:0.0"`
	AmountDue      float64 `gorm:"type:decimal(10,2);not null"`
	AmountPaid     float64 `gorm:"type:decimal(10,2);default:0.0"`
	Balance        float64 `gorm:"type:decimal(10,2);default:0.0"`

	PaymentStatus  string `gorm:"type:varchar(20);default:'Pending'"` // Pending, Partial, Paid ('Invalid Amount' is rejected before persisting)
	GCashReference string
	Notes          string
}
