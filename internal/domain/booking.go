package domain

import "time"

type PaymentMethod string

const (
	MethodCard PaymentMethod = "card"
	MethodUPI  PaymentMethod = "upi"
)

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Booking is the immutable record of a completed ticket purchase.
// It is created exactly once per successful checkout and is never
// updated or deleted afterwards.
type Booking struct {
	BookingID     string        `json:"booking_id"`
	UserID        int64         `json:"user_id"`
	UserName      string        `json:"user_name"`
	UserEmail     string        `json:"user_email"`
	EventID       int64         `json:"event_id"`
	EventTitle    string        `json:"event_title"`
	EventDate     string        `json:"event_date"`
	EventTime     string        `json:"event_time,omitempty"`
	EventLocation string        `json:"event_location"`
	TicketCount   int           `json:"ticket_count"`
	TotalAmount   Paise         `json:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}
