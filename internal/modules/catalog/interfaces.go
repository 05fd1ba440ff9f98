package catalog

import (
	"context"

	"eventhub/internal/domain"
)

// EventRepository defines the catalog's read surface over stored events.
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, category string, limit, offset int) ([]domain.Event, error)
}
