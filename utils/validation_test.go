package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+639171234567"))
	assert.True(t, ValidatePhone("917 123 4567"))
	assert.True(t, ValidatePhone("63-917-123-4567"))
	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone(""))
}

func TestValidateTimeSlot(t *testing.T) {
	assert.True(t, ValidateTimeSlot("09:00"))
	assert.True(t, ValidateTimeSlot("18:00"))
	assert.False(t, ValidateTimeSlot("07:00"))
	assert.False(t, ValidateTimeSlot("9:00"))
}

func TestGenerateReservationNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := GenerateReservationNumber()
		assert.Len(t, n, 9)
		assert.True(t, strings.HasPrefix(n, "R"))
		for _, ch := range n {
			assert.True(t, (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9'))
		}
		seen[n] = true
	}
	// 36^8 combinations; 100 draws colliding would indicate broken randomness
	assert.Greater(t, len(seen), 95)
}
