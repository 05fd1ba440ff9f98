package checkout

import (
	"context"

	"eventhub/internal/domain"
)

type eventReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

type bookingCreator interface {
	Create(ctx context.Context, b *domain.Booking) (string, error)
}

type userReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// notifier is the feedback side-channel. Delivery failures never
// affect a commit's outcome, so the interface has no error returns.
type notifier interface {
	Success(userID int64, message string)
	Error(userID int64, message string)
}
