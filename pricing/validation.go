// pricing/validation.go
package pricing

import "regexp"

var gcashReferenceRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ReferenceValidation is the outcome of a GCash reference check.
type ReferenceValidation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// PaymentForm holds the submitted payment fields to validate before a
// payment record is created.
type PaymentForm struct {
	PaymentMethod  string  `json:"payment_method"`
	PaymentType    string  `json:"payment_type"`
	AmountPaid     float64 `json:"amount_paid"`
	GCashReference string  `json:"gcash_reference"`
}

// FormValidation collects every violated rule, not just the first.
type FormValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateGCashReference checks a GCash reference number: at least 8
// characters, letters and digits only.
func ValidateGCashReference(reference string) ReferenceValidation {
	if len(reference) < 8 {
		return ReferenceValidation{
			Valid:   false,
			Message: "GCash reference must be at least 8 characters long",
		}
	}
	if !gcashReferenceRegex.MatchString(reference) {
		return ReferenceValidation{
			Valid:   false,
			Message: "GCash reference should contain only letters and numbers",
		}
	}
	return ReferenceValidation{Valid: true, Message: "Valid GCash reference"}
}

// ValidatePaymentForm accumulates all validation errors for a payment form.
func ValidatePaymentForm(form PaymentForm) FormValidation {
	var errs []string

	if form.PaymentMethod == "" {
		errs = append(errs, "Payment method is required")
	}
	if form.PaymentType == "" {
		errs = append(errs, "Payment type is required")
	}
	if form.AmountPaid <= 0 {
		errs = append(errs, "Amount paid must be greater than 0")
	}
	if form.PaymentMethod == "GCash" {
		if ref := ValidateGCashReference(form.GCashReference); !ref.Valid {
			errs = append(errs, ref.Message)
		}
	}

	return FormValidation{Valid: len(errs) == 0, Errors: errs}
}
