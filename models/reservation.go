package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reservation struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	// Human-readable identifier, e.g. "R7K2M9QX1"
	ReservationNumber string `gorm:"uniqueIndex;not null"`

	ServiceType     string    `gorm:"type:varchar(20);index;not null"` // wedding, baptism, funeral, confirmation
	ReservationDate time.Time `gorm:"index;not null"`
	StartTime       string    `gorm:"type:varchar(5);not null"` // "HH:MM"

	ClientName  string `gorm:"not null"`
	ClientPhone string `gorm:"not null"`
	ClientEmail string

	Status string `gorm:"type:varchar(30);default:'pending'"` // pending, waiting_priest_approval, approved, completed, cancelled

	PriestID *uuid.UUID `gorm:"type:uuid;index"`
	Priest   *Priest    `gorm:"foreignKey:PriestID"`

	// Service-specific fields (bride/groom names, child details, deceased
	// details) vary per service type and are kept as a document.
	Details JSONB `gorm:"type:jsonb;default:'{}'"`
	Notes   string

	Payments []Payment `gorm:"foreignKey:ReservationID"`

	gorm.Model
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

// Custom JSONB type for service-specific reservation details
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
