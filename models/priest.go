package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Priest struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Phone     string
	Email     string
	IsActive  bool `gorm:"default:true"`

	Reservations []Reservation `gorm:"foreignKey:PriestID"`

	gorm.Model
}

func (p *Priest) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
