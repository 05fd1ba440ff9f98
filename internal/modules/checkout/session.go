package checkout

import (
	"sync"
	"sync/atomic"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/modules/payment"
	"eventhub/internal/modules/pricing"
)

// Session carries one checkout from event selection to commit. The
// event snapshot, ticket count and breakdown are fixed when the
// session starts and travel together untouched; the breakdown is
// never recomputed at commit time.
type Session struct {
	ID          string
	UserID      int64
	Event       domain.Event
	TicketCount int
	Breakdown   pricing.Breakdown
	CreatedAt   time.Time

	mu        sync.Mutex
	validator *payment.Validator

	// inFlight disables the commit trigger while a commit is running,
	// so rapid repeated submissions cannot create two bookings.
	inFlight atomic.Bool
}

func (s *Session) SelectMethod(m domain.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.SelectMethod(m)
}

func (s *Session) EnterCard(number, holder, expiry, cvv string) (payment.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.EnterCard(number, holder, expiry, cvv)
}

func (s *Session) EnterHandle(handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.EnterHandle(handle)
}

func (s *Session) VerifyHandle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.VerifyHandle()
}

func (s *Session) State() payment.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.State()
}

func (s *Session) instrument() (payment.Instrument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.Instrument()
}

func (s *Session) beginCommit() bool {
	return s.inFlight.CompareAndSwap(false, true)
}

func (s *Session) endCommit() {
	s.inFlight.Store(false)
}

func (s *Session) expiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) > ttl
}
