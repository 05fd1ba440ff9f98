package catalog

import (
	"context"
	"errors"

	"eventhub/internal/domain"
	"eventhub/internal/modules/pricing"

	"gorm.io/gorm"
)

type Service struct {
	events EventRepository
}

func NewService(events EventRepository) *Service {
	return &Service{events: events}
}

func (s *Service) ListEvents(ctx context.Context, category string, limit, offset int) ([]domain.Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.events.List(ctx, category, limit, offset)
}

func (s *Service) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	ev, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ev, nil
}

// EventWithQuote returns an event together with a display price
// breakdown for the requested ticket count, computed by the same
// engine a checkout session uses.
func (s *Service) EventWithQuote(ctx context.Context, id int64, tickets int) (*domain.Event, pricing.Breakdown, error) {
	ev, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, pricing.Breakdown{}, err
	}

	count := pricing.ClampQuantity(tickets)
	return ev, pricing.Compute(ev.TicketPrice, count), nil
}
