package checkout

import (
	"context"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/modules/payment"
)

// Gateway settles a payment for the given amount with the given
// instrument. The simulated implementation always approves; the
// interface leaves room for a real acquirer to return declines and
// timeouts without changing callers.
type Gateway interface {
	Settle(ctx context.Context, amount domain.Paise, in payment.Instrument) error
}

// SimulatedGateway approves every settlement after an optional delay
// standing in for acquirer latency.
type SimulatedGateway struct {
	Delay time.Duration
}

func (g SimulatedGateway) Settle(ctx context.Context, amount domain.Paise, in payment.Instrument) error {
	if g.Delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.Delay):
		}
	}
	return nil
}
