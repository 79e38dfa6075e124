package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGCashReference(t *testing.T) {
	tests := []struct {
		reference string
		valid     bool
	}{
		{"ABC12345", true},
		{"abc12345678", true},
		{"ABC123", false},    // too short
		{"ABC-12345", false}, // separator not allowed
		{"", false},
		{"ABC 1234", false},
	}

	for _, tt := range tests {
		result := ValidateGCashReference(tt.reference)
		assert.Equal(t, tt.valid, result.Valid, "reference %q", tt.reference)
		assert.NotEmpty(t, result.Message)
	}
}

func TestValidatePaymentFormAccumulatesErrors(t *testing.T) {
	result := ValidatePaymentForm(PaymentForm{})
	assert.False(t, result.Valid)
	assert.Equal(t, []string{
		"Payment method is required",
		"Payment type is required",
		"Amount paid must be greater than 0",
	}, result.Errors)
}

func TestValidatePaymentFormGCash(t *testing.T) {
	bad := ValidatePaymentForm(PaymentForm{
		PaymentMethod:  "GCash",
		PaymentType:    "Full",
		AmountPaid:     500,
		GCashReference: "ABC-12345",
	})
	assert.False(t, bad.Valid)
	assert.Contains(t, bad.Errors, "GCash reference should contain only letters and numbers")

	good := ValidatePaymentForm(PaymentForm{
		PaymentMethod:  "GCash",
		PaymentType:    "Full",
		AmountPaid:     500,
		GCashReference: "ABC12345",
	})
	assert.True(t, good.Valid)
	assert.Empty(t, good.Errors)
}

func TestValidatePaymentFormCashNeedsNoReference(t *testing.T) {
	result := ValidatePaymentForm(PaymentForm{
		PaymentMethod: "Cash",
		PaymentType:   "Downpayment",
		AmountPaid:    1000,
	})
	assert.True(t, result.Valid)
}
