package domain

import "time"

// Event is owned by the catalog; the booking flow only reads it.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Date        string    `json:"date"`
	Time        string    `json:"time,omitempty"`
	Location    string    `json:"location"`
	Venue       string    `json:"venue,omitempty"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    string    `json:"category,omitempty"`
	TicketPrice Paise     `json:"ticket_price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
