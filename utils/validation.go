// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateTimeSlot checks an "HH:MM" start time against the bookable slots.
func ValidateTimeSlot(startTime string) bool {
	for _, slot := range StandardTimeSlots() {
		if slot == startTime {
			return true
		}
	}
	return false
}

// StandardTimeSlots returns the bookable reservation start times.
func StandardTimeSlots() []string {
	return []string{
		"08:00", "09:00", "10:00", "11:00", "12:00",
		"13:00", "14:00", "15:00", "16:00", "17:00", "18:00",
	}
}
