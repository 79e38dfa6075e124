// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"churchease-backend/models"
	"churchease-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends SMS reminders to clients the day before their
// approved reservation.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		log.Printf("Failed to schedule daily reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders texts every client with an approved reservation tomorrow
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1)
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var reservations []models.Reservation
	if err := s.db.
		Where("reservation_date >= ? AND reservation_date < ? AND status = ?",
			tomorrow, dayAfter, "approved").
		Find(&reservations).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's reservations: %v", err)
		return
	}

	for _, reservation := range reservations {
		s.sendReminder(reservation)
	}

	log.Printf("Daily reminder processing completed (%d reservations)", len(reservations))
}

func (s *ReminderService) sendReminder(reservation models.Reservation) {
	message := fmt.Sprintf(
		"Hi %s, this is a reminder of your %s reservation (%s) tomorrow at %s. God bless!",
		reservation.ClientName,
		reservation.ServiceType,
		reservation.ReservationNumber,
		reservation.StartTime,
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(reservation.ClientPhone)
	params.SetBody(message)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", reservation.ClientPhone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", reservation.ClientPhone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", reservation.ClientPhone)
	}

	reminderLog := models.ReminderLog{
		ReservationID: reservation.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for reservation %s: %v", reservation.ID, err)
	}
}
