package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/modules/payment"
	"eventhub/internal/modules/pricing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Identity is the authenticated principal supplied by the identity
// provider. A nil identity means no one is logged in.
type Identity struct {
	ID    int64
	Name  string
	Email string
}

type Service struct {
	events   eventReader
	bookings bookingCreator
	gateway  Gateway
	notifs   notifier
	store    *SessionStore
	loggerf  func(format string, args ...interface{})
}

func NewService(
	events eventReader,
	bookings bookingCreator,
	gateway Gateway,
	notifs notifier,
	store *SessionStore,
	loggerf func(format string, args ...interface{}),
) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		events:   events,
		bookings: bookings,
		gateway:  gateway,
		notifs:   notifs,
		store:    store,
		loggerf:  loggerf,
	}
}

// StartSession opens a checkout for one event. The ticket count is
// clamped to the allowed range and the price breakdown is computed
// here, once; every later step including commit reads this breakdown.
func (s *Service) StartSession(ctx context.Context, userID int64, eventID int64, ticketCount int) (*Session, error) {
	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	count := pricing.ClampQuantity(ticketCount)

	sess := &Session{
		ID:          uuid.NewString(),
		UserID:      userID,
		Event:       *ev,
		TicketCount: count,
		Breakdown:   pricing.Compute(ev.TicketPrice, count),
		CreatedAt:   time.Now(),
	}
	sess.validator = payment.NewValidator()

	s.store.Put(sess)
	return sess, nil
}

// Session returns a live session owned by the given user.
func (s *Service) Session(userID int64, sessionID string) (*Session, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok || sess.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Commit finalizes a checkout into a persisted booking.
//
// Order matters: identity, then validator state, then settlement, then
// a single persistence attempt. The validator is re-checked here even
// though handlers gate on it too. Exactly one booking record exists
// after a successful commit and zero after any failure; a persistence
// error is never retried because the original write may have landed.
func (s *Service) Commit(ctx context.Context, identity *Identity, sessionID string) (*domain.Booking, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	if identity == nil || identity.ID == 0 {
		return nil, ErrNotAuthenticated
	}
	if identity.ID != sess.UserID {
		return nil, ErrSessionNotFound
	}

	if !sess.beginCommit() {
		return nil, ErrCommitInFlight
	}
	defer sess.endCommit()

	in, err := sess.instrument()
	if err != nil {
		s.notifyError(sess.UserID, rejectionMessage(err))
		return nil, fmt.Errorf("%w: %v", ErrNotSubmittable, err)
	}

	if err := s.gateway.Settle(ctx, sess.Breakdown.Total, in); err != nil {
		s.loggerf("level=error msg=settlement failed session_id=%s err=%v", sess.ID, err)
		s.notifyError(sess.UserID, "Payment failed. Please try again.")
		return nil, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	b := &domain.Booking{
		UserID:        identity.ID,
		UserName:      identity.Name,
		UserEmail:     identity.Email,
		EventID:       sess.Event.ID,
		EventTitle:    sess.Event.Title,
		EventDate:     sess.Event.Date,
		EventTime:     sess.Event.Time,
		EventLocation: sess.Event.Location,
		TicketCount:   sess.TicketCount,
		TotalAmount:   sess.Breakdown.Total,
		PaymentMethod: in.Method(),
		PaymentStatus: domain.PaymentCompleted,
	}

	// Settlement succeeded: past this point the operation must not be
	// cancelled out from under the write.
	bookingID, err := s.bookings.Create(context.WithoutCancel(ctx), b)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			s.loggerf("level=error msg=booking key collision session_id=%s err=%v", sess.ID, err)
		} else {
			s.loggerf("level=error msg=booking write failed session_id=%s err=%v", sess.ID, err)
		}
		s.notifyError(sess.UserID, "Payment failed. Please try again.")
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	// The session is consumed: a repeat submission cannot book twice.
	s.store.Delete(sess.ID)

	s.loggerf("level=info msg=booking committed booking_id=%s event_id=%d user_id=%d total=%s method=%s",
		bookingID, b.EventID, b.UserID, b.TotalAmount, b.PaymentMethod)
	s.notifySuccess(sess.UserID, "Payment successful! Booking confirmed.")
	return b, nil
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, payment.ErrUnverifiedHandle):
		return "Please verify your UPI ID first"
	case errors.Is(err, payment.ErrMissingCardFields):
		return "Please fill all card details"
	default:
		return "Please select a payment method"
	}
}

func (s *Service) notifySuccess(userID int64, msg string) {
	if s.notifs != nil {
		s.notifs.Success(userID, msg)
	}
}

func (s *Service) notifyError(userID int64, msg string) {
	if s.notifs != nil {
		s.notifs.Error(userID, msg)
	}
}
