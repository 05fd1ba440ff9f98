package bookings

import (
	"context"
	"testing"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeBookingRepo struct {
	byID map[string]domain.Booking
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, ok := f.byID[bookingID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.byID {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestGetBooking_OwnershipEnforced(t *testing.T) {
	svc := NewService(&fakeBookingRepo{byID: map[string]domain.Booking{
		"bk-1": {BookingID: "bk-1", UserID: 7},
	}})

	b, err := svc.GetBooking(context.Background(), 7, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, "bk-1", b.BookingID)

	_, err = svc.GetBooking(context.Background(), 8, "bk-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetBooking(context.Background(), 7, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetMyBookings_FiltersByUser(t *testing.T) {
	svc := NewService(&fakeBookingRepo{byID: map[string]domain.Booking{
		"bk-1": {BookingID: "bk-1", UserID: 7},
		"bk-2": {BookingID: "bk-2", UserID: 7},
		"bk-3": {BookingID: "bk-3", UserID: 9},
	}})

	list, err := svc.GetMyBookings(context.Background(), 7, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
