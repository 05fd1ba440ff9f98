package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/modules/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEventRepo struct {
	event *domain.Event
	err   error
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.event == nil || f.event.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	ev := *f.event
	return &ev, nil
}

type fakeBookingRepo struct {
	mu          sync.Mutex
	createCalls int
	created     []domain.Booking
	err         error
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.err != nil {
		return "", f.err
	}
	b.BookingID = fmt.Sprintf("bk-%d", f.createCalls)
	f.created = append(f.created, *b)
	return b.BookingID, nil
}

func (f *fakeBookingRepo) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls
}

// blockingGateway signals on entered and waits for release, so tests
// can hold a commit in its settlement step.
type blockingGateway struct {
	entered chan struct{}
	release chan struct{}
}

func (g *blockingGateway) Settle(ctx context.Context, amount domain.Paise, in payment.Instrument) error {
	g.entered <- struct{}{}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-g.release:
		return nil
	}
}

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (f *fakeNotifier) Success(userID int64, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.successes = append(f.successes, msg)
}

func (f *fakeNotifier) Error(userID int64, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, msg)
}

var testEvent = &domain.Event{
	ID:          42,
	Title:       "Indie Nights Live",
	Date:        "2026-03-14",
	Time:        "19:30",
	Location:    "Bengaluru",
	TicketPrice: domain.RupeesToPaise(500),
}

func newTestService(bookings *fakeBookingRepo, gw Gateway, notifs *fakeNotifier) *Service {
	if gw == nil {
		gw = SimulatedGateway{}
	}
	var n notifier
	if notifs != nil {
		n = notifs
	}
	store := NewSessionStore(time.Hour)
	return NewService(&fakeEventRepo{event: testEvent}, bookings, gw, n, store, nil)
}

func startVerifiedUPISession(t *testing.T, svc *Service, userID int64) *Session {
	t.Helper()
	sess, err := svc.StartSession(context.Background(), userID, testEvent.ID, 2)
	require.NoError(t, err)
	require.NoError(t, sess.SelectMethod(domain.MethodUPI))
	require.NoError(t, sess.EnterHandle("akumar@ybl"))
	require.NoError(t, sess.VerifyHandle())
	return sess
}

func TestStartSession_ComputesBreakdownOnce(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, nil, nil)

	sess, err := svc.StartSession(context.Background(), 7, testEvent.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, sess.TicketCount)
	assert.Equal(t, domain.Paise(100000), sess.Breakdown.Subtotal)
	assert.Equal(t, domain.Paise(5000), sess.Breakdown.BookingFee)
	assert.Equal(t, domain.Paise(18900), sess.Breakdown.Tax)
	assert.Equal(t, domain.Paise(123900), sess.Breakdown.Total)
}

func TestStartSession_ClampsTicketCount(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, nil, nil)

	sess, err := svc.StartSession(context.Background(), 7, testEvent.ID, 25)
	require.NoError(t, err)
	assert.Equal(t, 10, sess.TicketCount)

	sess, err = svc.StartSession(context.Background(), 7, testEvent.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.TicketCount)
}

func TestStartSession_UnknownEvent(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, nil, nil)

	_, err := svc.StartSession(context.Background(), 7, 999, 1)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestCommit_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	notifs := &fakeNotifier{}
	svc := newTestService(bookings, nil, notifs)
	sess := startVerifiedUPISession(t, svc, 7)

	identity := &Identity{ID: 7, Name: "A Kumar", Email: "akumar@example.com"}
	b, err := svc.Commit(context.Background(), identity, sess.ID)
	require.NoError(t, err)

	require.Equal(t, 1, bookings.calls())
	rec := bookings.created[0]
	assert.Equal(t, b.BookingID, rec.BookingID, "returned id matches the persisted key")
	assert.Equal(t, sess.Breakdown.Total, rec.TotalAmount, "persisted total equals the session breakdown")
	assert.Equal(t, domain.MethodUPI, rec.PaymentMethod)
	assert.Equal(t, domain.PaymentCompleted, rec.PaymentStatus)
	assert.Equal(t, "A Kumar", rec.UserName)
	assert.Equal(t, testEvent.Title, rec.EventTitle)

	assert.Equal(t, []string{"Payment successful! Booking confirmed."}, notifs.successes)
}

func TestCommit_NotAuthenticated(t *testing.T) {
	bookings := &fakeBookingRepo{}
	svc := newTestService(bookings, nil, nil)
	sess := startVerifiedUPISession(t, svc, 7)

	_, err := svc.Commit(context.Background(), nil, sess.ID)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.Commit(context.Background(), &Identity{}, sess.ID)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	assert.Equal(t, 0, bookings.calls(), "no persistence attempt without an identity")
}

func TestCommit_NotSubmittable(t *testing.T) {
	bookings := &fakeBookingRepo{}
	notifs := &fakeNotifier{}
	svc := newTestService(bookings, nil, notifs)

	sess, err := svc.StartSession(context.Background(), 7, testEvent.ID, 1)
	require.NoError(t, err)
	require.NoError(t, sess.SelectMethod(domain.MethodUPI))
	require.NoError(t, sess.EnterHandle("akumar@ybl"))
	// Handle entered but never verified.

	_, err = svc.Commit(context.Background(), &Identity{ID: 7}, sess.ID)
	assert.ErrorIs(t, err, ErrNotSubmittable)
	assert.Equal(t, 0, bookings.calls())
	assert.Equal(t, []string{"Please verify your UPI ID first"}, notifs.failures)
}

func TestCommit_SessionOwnership(t *testing.T) {
	bookings := &fakeBookingRepo{}
	svc := newTestService(bookings, nil, nil)
	sess := startVerifiedUPISession(t, svc, 7)

	_, err := svc.Commit(context.Background(), &Identity{ID: 8}, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, bookings.calls())
}

func TestCommit_PersistenceFailureNotRetried(t *testing.T) {
	bookings := &fakeBookingRepo{err: errors.New("connection reset")}
	notifs := &fakeNotifier{}
	svc := newTestService(bookings, nil, notifs)
	sess := startVerifiedUPISession(t, svc, 7)

	_, err := svc.Commit(context.Background(), &Identity{ID: 7}, sess.ID)
	assert.ErrorIs(t, err, ErrPersistenceFailed)
	assert.Equal(t, 1, bookings.calls(), "a failed write is attempted exactly once")
	assert.Empty(t, notifs.successes)
	assert.Equal(t, []string{"Payment failed. Please try again."}, notifs.failures)

	// The session survives a failed commit so the user can retry
	// explicitly.
	_, err = svc.Session(7, sess.ID)
	assert.NoError(t, err)
}

func TestCommit_SecondSubmissionWhileInFlight(t *testing.T) {
	bookings := &fakeBookingRepo{}
	gw := &blockingGateway{entered: make(chan struct{}, 1), release: make(chan struct{})}
	svc := newTestService(bookings, gw, nil)
	sess := startVerifiedUPISession(t, svc, 7)

	identity := &Identity{ID: 7}
	done := make(chan error, 1)
	go func() {
		_, err := svc.Commit(context.Background(), identity, sess.ID)
		done <- err
	}()

	// Wait until the first commit is parked inside settlement.
	<-gw.entered

	_, err := svc.Commit(context.Background(), identity, sess.ID)
	assert.ErrorIs(t, err, ErrCommitInFlight)

	close(gw.release)
	require.NoError(t, <-done)

	assert.Equal(t, 1, bookings.calls(), "only the first submission books")
}

func TestCommit_SessionConsumedOnSuccess(t *testing.T) {
	bookings := &fakeBookingRepo{}
	svc := newTestService(bookings, nil, nil)
	sess := startVerifiedUPISession(t, svc, 7)

	identity := &Identity{ID: 7}
	_, err := svc.Commit(context.Background(), identity, sess.ID)
	require.NoError(t, err)

	_, err = svc.Commit(context.Background(), identity, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 1, bookings.calls())
}
