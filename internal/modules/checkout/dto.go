package checkout

import (
	"eventhub/internal/domain"
	"eventhub/internal/modules/pricing"
)

type StartSessionRequest struct {
	EventID     int64 `json:"event_id" binding:"required"`
	TicketCount int   `json:"ticket_count" binding:"required,min=1"`
}

type SelectMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

type CardRequest struct {
	Number string `json:"number" binding:"required"`
	Holder string `json:"holder" binding:"required"`
	Expiry string `json:"expiry" binding:"required"`
	CVV    string `json:"cvv" binding:"required"`
}

type UPIRequest struct {
	Handle string `json:"upi_id" binding:"required"`
}

type EventSummary struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location"`
}

type SessionResponse struct {
	SessionID   string            `json:"session_id"`
	Event       EventSummary      `json:"event"`
	TicketCount int               `json:"ticket_count"`
	Pricing     pricing.Breakdown `json:"pricing"`
	State       string            `json:"state"`
}

func toSessionResponse(s *Session) SessionResponse {
	return SessionResponse{
		SessionID: s.ID,
		Event: EventSummary{
			ID:       s.Event.ID,
			Title:    s.Event.Title,
			Date:     s.Event.Date,
			Time:     s.Event.Time,
			Location: s.Event.Location,
		},
		TicketCount: s.TicketCount,
		Pricing:     s.Breakdown,
		State:       s.State().String(),
	}
}

type CommitResponse struct {
	BookingID     string       `json:"booking_id"`
	TotalAmount   domain.Paise `json:"total_amount"`
	PaymentMethod string       `json:"payment_method"`
	PaymentStatus string       `json:"payment_status"`
}
