package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChurchEvent struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title       string    `gorm:"not null"`
	EventType   string    `gorm:"type:varchar(20);default:'other'"` // worship, prayer, youth, outreach, special, bible-study, fellowship, meeting, other
	EventDate   time.Time `gorm:"index;not null"`
	StartTime   string    `gorm:"type:varchar(5)"`
	EndTime     string    `gorm:"type:varchar(5)"`
	Location    string
	Description string `gorm:"type:text"`

	gorm.Model
}

func (e *ChurchEvent) BeforeCreate(tx *gorm.DB) (err error) {
	e.ID = uuid.New()
	return
}
