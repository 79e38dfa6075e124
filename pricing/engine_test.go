package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiresStipendium(t *testing.T) {
	assert.True(t, RequiresStipendium(ServiceWedding))
	assert.True(t, RequiresStipendium(ServiceFuneral))
	assert.True(t, RequiresStipendium(ServiceBaptism))
	assert.False(t, RequiresStipendium(ServiceConfirmation))
	assert.False(t, RequiresStipendium(ServiceType("retreat")))
}

func TestComputeAmountDue(t *testing.T) {
	tests := []struct {
		name          string
		basePrice     float64
		discount      DiscountSpec
		wantDiscount  float64
		wantAmountDue float64
	}{
		{"no discount", 15000, DiscountSpec{Kind: DiscountNone}, 0, 15000},
		{"percentage", 15000, DiscountSpec{Kind: DiscountPercentage, Value: 10}, 1500, 13500},
		{"percentage full", 2000, DiscountSpec{Kind: DiscountPercentage, Value: 100}, 2000, 0},
		{"percentage clamped above 100", 2000, DiscountSpec{Kind: DiscountPercentage, Value: 150}, 2000, 0},
		{"fixed", 15000, DiscountSpec{Kind: DiscountFixed, Value: 500}, 500, 14500},
		{"fixed capped at base price", 2000, DiscountSpec{Kind: DiscountFixed, Value: 5000}, 2000, 0},
		{"negative value treated as zero", 8000, DiscountSpec{Kind: DiscountFixed, Value: -100}, 0, 8000},
		{"zero base price", 0, DiscountSpec{Kind: DiscountFixed, Value: 500}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discountAmount, amountDue := ComputeAmountDue(tt.basePrice, tt.discount)
			assert.InDelta(t, tt.wantDiscount, discountAmount, 1e-9)
			assert.InDelta(t, tt.wantAmountDue, amountDue, 1e-9)
			assert.GreaterOrEqual(t, amountDue, 0.0)
		})
	}
}

func TestComputeAmountDueNaN(t *testing.T) {
	discountAmount, amountDue := ComputeAmountDue(8000, DiscountSpec{Kind: DiscountPercentage, Value: math.NaN()})
	assert.Equal(t, 0.0, discountAmount)
	assert.Equal(t, 8000.0, amountDue)
}

func TestComputeBalanceAndStatusZeroPaymentIsAlwaysPending(t *testing.T) {
	// The zero check precedes the payment-type branch: Full with 0 paid
	// must still be Pending, not Partial.
	for _, pt := range []PaymentType{PaymentFull, PaymentDownpayment} {
		result := ComputeBalanceAndStatus(14500, 0, pt)
		assert.Equal(t, StatusPending, result.Status)
		assert.Equal(t, 14500.0, result.Balance)
		assert.Empty(t, result.ValidationMessage)
	}
}

func TestComputeBalanceAndStatusFull(t *testing.T) {
	paid := ComputeBalanceAndStatus(14500, 14500, PaymentFull)
	assert.Equal(t, StatusPaid, paid.Status)
	assert.Equal(t, 0.0, paid.Balance)

	over := ComputeBalanceAndStatus(14500, 20000, PaymentFull)
	assert.Equal(t, StatusPaid, over.Status)
	assert.Equal(t, 0.0, over.Balance)

	partial := ComputeBalanceAndStatus(14500, 5000, PaymentFull)
	assert.Equal(t, StatusPartial, partial.Status)
	assert.Equal(t, 9500.0, partial.Balance)
}

func TestComputeBalanceAndStatusDownpayment(t *testing.T) {
	// Below the 50% minimum.
	invalid := ComputeBalanceAndStatus(14500, 7000, PaymentDownpayment)
	assert.Equal(t, StatusInvalidAmount, invalid.Status)
	assert.Equal(t, 0.0, invalid.Balance)
	assert.Equal(t, "Minimum partial payment is ₱7,250.00 (50% of total amount)", invalid.ValidationMessage)

	// At or above the minimum.
	partial := ComputeBalanceAndStatus(14500, 7300, PaymentDownpayment)
	assert.Equal(t, StatusPartial, partial.Status)
	assert.InDelta(t, 7200.0, partial.Balance, 1e-9)
	assert.Empty(t, partial.ValidationMessage)

	exact := ComputeBalanceAndStatus(14500, 7250, PaymentDownpayment)
	assert.Equal(t, StatusPartial, exact.Status)
	assert.InDelta(t, 7250.0, exact.Balance, 1e-9)
}

func TestComputeBalanceAndStatusDownpaymentOverpayment(t *testing.T) {
	// Paying at or above the amount due settles the stipendium even under
	// Downpayment; the balance must never go negative.
	over := ComputeBalanceAndStatus(100, 150, PaymentDownpayment)
	assert.Equal(t, StatusPaid, over.Status)
	assert.Equal(t, 0.0, over.Balance)
	assert.Empty(t, over.ValidationMessage)

	settled := ComputeBalanceAndStatus(14500, 14500, PaymentDownpayment)
	assert.Equal(t, StatusPaid, settled.Status)
	assert.Equal(t, 0.0, settled.Balance)
}

func TestComputeBalanceAndStatusUnknownPaymentType(t *testing.T) {
	result := ComputeBalanceAndStatus(14500, 5000, PaymentType("Installment"))
	assert.Equal(t, StatusPending, result.Status)
	assert.Equal(t, 0.0, result.Balance)
	assert.Empty(t, result.ValidationMessage)
}

func TestQuoteExampleScenario(t *testing.T) {
	engine := NewEngine()

	result, ok := engine.Quote(PaymentInput{
		ServiceType: ServiceWedding,
		Discount:    DiscountSpec{Kind: DiscountFixed, Value: 500},
		AmountPaid:  7300,
		PaymentType: PaymentDownpayment,
	})
	require.True(t, ok)
	assert.Equal(t, 15000.0, result.BasePrice)
	assert.Equal(t, 500.0, result.DiscountAmount)
	assert.Equal(t, 14500.0, result.AmountDue)
	assert.Equal(t, StatusPartial, result.Status)
	assert.InDelta(t, 7200.0, result.Balance, 1e-9)
}

func TestQuoteUnknownServiceType(t *testing.T) {
	engine := NewEngine()
	_, ok := engine.Quote(PaymentInput{ServiceType: "procession"})
	assert.False(t, ok)
}

func TestApplyPricingMergesPerKey(t *testing.T) {
	engine := NewEngine()
	engine.ApplyPricing([]PriceRecord{
		{ServiceType: ServiceBaptism, BasePrice: 2500},
		{ServiceType: "", BasePrice: 999},
		{ServiceType: ServiceFuneral, BasePrice: -1}, // ignored
	})

	baptism, ok := engine.BasePrice(ServiceBaptism)
	require.True(t, ok)
	assert.Equal(t, 2500.0, baptism)

	// Unmentioned and invalid entries keep the defaults.
	wedding, _ := engine.BasePrice(ServiceWedding)
	assert.Equal(t, 15000.0, wedding)
	funeral, _ := engine.BasePrice(ServiceFuneral)
	assert.Equal(t, 8000.0, funeral)
}

func TestFormatPeso(t *testing.T) {
	assert.Equal(t, "₱7,250.00", FormatPeso(7250))
	assert.Equal(t, "₱0.00", FormatPeso(0))
	assert.Equal(t, "₱1,234,567.89", FormatPeso(1234567.89))
	assert.Equal(t, "₱500.50", FormatPeso(500.5))
}
