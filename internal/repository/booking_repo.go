package repository

import (
	"context"
	"time"

	"eventhub/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	BookingID     string    `gorm:"column:booking_id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;index"`
	UserName      string    `gorm:"column:user_name"`
	UserEmail     string    `gorm:"column:user_email"`
	EventID       int64     `gorm:"column:event_id;index"`
	EventTitle    string    `gorm:"column:event_title"`
	EventDate     string    `gorm:"column:event_date"`
	EventTime     *string   `gorm:"column:event_time"`
	EventLocation string    `gorm:"column:event_location"`
	TicketCount   int       `gorm:"column:ticket_count"`
	TotalAmount   int64     `gorm:"column:total_amount"`
	PaymentMethod string    `gorm:"column:payment_method"`
	PaymentStatus string    `gorm:"column:payment_status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		BookingID:     m.BookingID,
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		EventID:       m.EventID,
		EventTitle:    m.EventTitle,
		EventDate:     m.EventDate,
		EventTime:     strOrEmpty(m.EventTime),
		EventLocation: m.EventLocation,
		TicketCount:   m.TicketCount,
		TotalAmount:   domain.Paise(m.TotalAmount),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		CreatedAt:     m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		BookingID:     b.BookingID,
		UserID:        b.UserID,
		UserName:      b.UserName,
		UserEmail:     b.UserEmail,
		EventID:       b.EventID,
		EventTitle:    b.EventTitle,
		EventDate:     b.EventDate,
		EventTime:     strOrNil(b.EventTime),
		EventLocation: b.EventLocation,
		TicketCount:   b.TicketCount,
		TotalAmount:   int64(b.TotalAmount),
		PaymentMethod: string(b.PaymentMethod),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt,
	}
}

// Create persists a booking as a single insert under a freshly
// generated key and returns that key. Bookings are append-only: there
// is no update or delete path on this repository.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (string, error) {
	if b.BookingID == "" {
		b.BookingID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return "", tx.Error
	}
	*b = *toDomainBooking(m)
	return b.BookingID, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
