// pricing/engine.go
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// ServiceType identifies a church service that can be reserved.
type ServiceType string

const (
	ServiceWedding      ServiceType = "wedding"
	ServiceBaptism      ServiceType = "baptism"
	ServiceFuneral      ServiceType = "funeral"
	ServiceConfirmation ServiceType = "confirmation"
)

// DiscountKind selects how a discount value is interpreted.
type DiscountKind string

const (
	DiscountNone       DiscountKind = "none"
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// PaymentType distinguishes full payments from 50% downpayments.
type PaymentType string

const (
	PaymentFull        PaymentType = "Full"
	PaymentDownpayment PaymentType = "Downpayment"
)

// Payment status values surfaced to the dashboard.
const (
	StatusPending       = "Pending"
	StatusPartial       = "Partial"
	StatusPaid          = "Paid"
	StatusInvalidAmount = "Invalid Amount"
)

// MinimumPartialRate is the required downpayment fraction of the amount due.
const MinimumPartialRate = 0.5

// DiscountSpec describes a discount applied to a base price.
type DiscountSpec struct {
	Kind  DiscountKind `json:"kind"`
	Value float64      `json:"value"`
}

// PaymentInput carries everything needed to quote a payment.
type PaymentInput struct {
	ServiceType ServiceType  `json:"serviceType"`
	Discount    DiscountSpec `json:"discount"`
	AmountPaid  float64      `json:"amountPaid"`
	PaymentType PaymentType  `json:"paymentType"`
}

// PaymentResult is the computed payment breakdown.
type PaymentResult struct {
	BasePrice         float64 `json:"basePrice"`
	DiscountAmount    float64 `json:"discountAmount"`
	AmountDue         float64 `json:"amountDue"`
	Balance           float64 `json:"balance"`
	Status            string  `json:"status"`
	ValidationMessage string  `json:"validationMessage,omitempty"`
}

// PriceRecord is one row of an external pricing source.
type PriceRecord struct {
	ServiceType ServiceType `json:"service_type"`
	BasePrice   float64     `json:"base_price"`
}

// DefaultPrices returns the built-in stipendium table.
func DefaultPrices() map[ServiceType]float64 {
	return map[ServiceType]float64{
		ServiceWedding:      15000.00,
		ServiceBaptism:      2000.00,
		ServiceFuneral:      8000.00,
		ServiceConfirmation: 0.00,
	}
}

// Engine computes stipendium amounts from a price table. All methods are
// pure with respect to their inputs; the table only changes via ApplyPricing.
type Engine struct {
	prices map[ServiceType]float64
}

// NewEngine creates an engine seeded with the default price table.
func NewEngine() *Engine {
	return &Engine{prices: DefaultPrices()}
}

// ApplyPricing merges external price records over the current table.
// Unknown-to-the-source service types keep their existing price, so a
// partially populated (or empty) source is harmless.
func (e *Engine) ApplyPricing(records []PriceRecord) {
	for _, r := range records {
		if r.ServiceType == "" {
			continue
		}
		if math.IsNaN(r.BasePrice) || r.BasePrice < 0 {
			continue
		}
		e.prices[r.ServiceType] = r.BasePrice
	}
}

// BasePrice returns the configured price for a service type.
func (e *Engine) BasePrice(serviceType ServiceType) (float64, bool) {
	price, ok := e.prices[serviceType]
	return price, ok
}

// RequiresStipendium reports whether a service type carries a fee.
// Confirmation never does.
func RequiresStipendium(serviceType ServiceType) bool {
	return serviceType == ServiceWedding ||
		serviceType == ServiceFuneral ||
		serviceType == ServiceBaptism
}

// ComputeAmountDue applies a discount to a base price. The discount can
// never exceed the base price, so the amount due is never negative.
func ComputeAmountDue(basePrice float64, discount DiscountSpec) (discountAmount, amountDue float64) {
	value := discount.Value
	if math.IsNaN(value) || value < 0 {
		value = 0
	}

	switch discount.Kind {
	case DiscountPercentage:
		if value > 100 {
			value = 100
		}
		discountAmount = basePrice * value / 100
	case DiscountFixed:
		discountAmount = math.Min(value, basePrice)
	}

	return discountAmount, basePrice - discountAmount
}

// ComputeBalanceAndStatus derives the remaining balance and payment status.
// The zero-payment check runs before the payment-type branch: an amount paid
// of zero is always Pending, even when the type is Full.
func ComputeBalanceAndStatus(amountDue, amountPaid float64, paymentType PaymentType) PaymentResult {
	result := PaymentResult{AmountDue: amountDue}

	if amountPaid <= 0 {
		result.Status = StatusPending
		result.Balance = amountDue
		return result
	}

	switch paymentType {
	case PaymentFull:
		if amountPaid >= amountDue {
			result.Status = StatusPaid
			result.Balance = 0
		} else {
			result.Status = StatusPartial
			result.Balance = amountDue - amountPaid
		}
	case PaymentDownpayment:
		// Paying the full amount (or more) settles the stipendium even
		// under Downpayment; the balance never goes negative.
		if amountPaid >= amountDue {
			result.Status = StatusPaid
			result.Balance = 0
			return result
		}
		minimumPartial := amountDue * MinimumPartialRate
		if amountPaid < minimumPartial {
			result.Status = StatusInvalidAmount
			result.Balance = 0
			result.ValidationMessage = "Minimum partial payment is " +
				FormatPeso(minimumPartial) + " (50% of total amount)"
			return result
		}
		result.Status = StatusPartial
		result.Balance = amountDue - amountPaid
	default:
		// Unrecognized payment type: leave the payment Pending with
		// nothing owed shown.
		result.Status = StatusPending
		result.Balance = 0
	}

	return result
}

// Quote runs the full pipeline for one payment input. The second return is
// false when the service type is not in the price table; callers treat that
// as "not ready to compute" rather than an error.
func (e *Engine) Quote(input PaymentInput) (PaymentResult, bool) {
	basePrice, ok := e.prices[input.ServiceType]
	if !ok {
		return PaymentResult{}, false
	}

	discountAmount, amountDue := ComputeAmountDue(basePrice, input.Discount)
	result := ComputeBalanceAndStatus(amountDue, input.AmountPaid, input.PaymentType)
	result.BasePrice = basePrice
	result.DiscountAmount = discountAmount
	return result, true
}

// FormatPeso renders an amount as ₱ with comma grouping and two decimals,
// e.g. 7250 -> "₱7,250.00". Display-only; computations always use the
// numeric value.
func FormatPeso(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("₱")
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
