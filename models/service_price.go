package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicePrice struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceType string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	BasePrice   float64   `gorm:"type:decimal(10,2);not null"`
	Description string
	IsActive    bool `gorm:"default:true"`

	gorm.Model
}

func (s *ServicePrice) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
