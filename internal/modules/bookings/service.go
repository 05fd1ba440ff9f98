package bookings

import (
	"context"
	"errors"

	"eventhub/internal/domain"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("booking not found")

type Service struct {
	bookings bookingReader
}

func NewService(bookings bookingReader) *Service {
	return &Service{bookings: bookings}
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookings.GetByUserID(ctx, userID, limit, offset)
}

// GetBooking returns a booking the given user owns.
func (s *Service) GetBooking(ctx context.Context, userID int64, bookingID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrNotFound
	}
	return b, nil
}
