package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventhub/internal/domain"
)

func TestCompute_ReferenceOrder(t *testing.T) {
	// ₹500 per ticket, two tickets.
	b := Compute(domain.RupeesToPaise(500), 2)

	assert.Equal(t, domain.Paise(100000), b.Subtotal)
	assert.Equal(t, domain.Paise(5000), b.BookingFee)
	assert.Equal(t, domain.Paise(18900), b.Tax, "18 percent of ₹1050 rounds to ₹189")
	assert.Equal(t, domain.Paise(123900), b.Total)
	assert.Equal(t, b.Subtotal+b.BookingFee+b.Tax, b.Total)
}

func TestCompute_TaxRoundsHalfUp(t *testing.T) {
	// ₹25 × 1 → taxable ₹75, 18% = ₹13.50, rounds up to ₹14.
	b := Compute(domain.RupeesToPaise(25), 1)

	assert.Equal(t, domain.Paise(1400), b.Tax)
	assert.Equal(t, domain.Paise(8900), b.Total)
}

func TestCompute_FreeEvent(t *testing.T) {
	// Missing ticket price is treated as zero; the fee is still charged.
	b := Compute(0, 3)

	assert.Equal(t, domain.Paise(0), b.Subtotal)
	assert.Equal(t, domain.Paise(900), b.Tax)
	assert.Equal(t, domain.Paise(5900), b.Total)
}

func TestCompute_Deterministic(t *testing.T) {
	first := Compute(domain.RupeesToPaise(799), 7)
	second := Compute(domain.RupeesToPaise(799), 7)

	assert.Equal(t, first, second)
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(0))
	assert.Equal(t, 1, ClampQuantity(-3))
	assert.Equal(t, 1, ClampQuantity(1))
	assert.Equal(t, 7, ClampQuantity(7))
	assert.Equal(t, 10, ClampQuantity(10))
	assert.Equal(t, 10, ClampQuantity(25))
}
