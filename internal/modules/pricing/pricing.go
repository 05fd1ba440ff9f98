package pricing

import "eventhub/internal/domain"

const (
	// BookingFee is the flat per-order fee added to every checkout.
	BookingFee domain.Paise = 5000

	// TaxRatePercent is the GST rate applied to subtotal plus fee.
	TaxRatePercent = 18

	MinTickets = 1
	MaxTickets = 10
)

// Breakdown itemizes the price of a checkout. Derived data: it is never
// persisted on its own, only the total is copied onto a booking.
type Breakdown struct {
	UnitPrice  domain.Paise `json:"unit_price"`
	Quantity   int          `json:"quantity"`
	Subtotal   domain.Paise `json:"subtotal"`
	BookingFee domain.Paise `json:"booking_fee"`
	Tax        domain.Paise `json:"tax"`
	Total      domain.Paise `json:"total"`
}

// ClampQuantity bounds a requested ticket count to [MinTickets, MaxTickets].
// Compute does not reject out-of-range quantities; callers clamp first.
func ClampQuantity(n int) int {
	if n < MinTickets {
		return MinTickets
	}
	if n > MaxTickets {
		return MaxTickets
	}
	return n
}

// Compute itemizes unitPrice x quantity plus the booking fee and GST.
// Integer arithmetic only; identical inputs produce identical breakdowns.
//
// Tax is 18% of (subtotal + fee), rounded half-up to a whole rupee.
func Compute(unitPrice domain.Paise, quantity int) Breakdown {
	subtotal := unitPrice * domain.Paise(quantity)
	taxed := int64(subtotal + BookingFee)
	tax := domain.Paise((taxed*TaxRatePercent + 5000) / 10000 * 100)

	return Breakdown{
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		Subtotal:   subtotal,
		BookingFee: BookingFee,
		Tax:        tax,
		Total:      subtotal + BookingFee + tax,
	}
}
