package bookings

import (
	"context"

	"eventhub/internal/domain"
)

type bookingReader interface {
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
}
