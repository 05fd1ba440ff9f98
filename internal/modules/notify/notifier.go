package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notice is a transient, auto-dismissing status message. A user has at
// most one: publishing a new notice replaces the current one
// immediately, it never queues behind it.
type Notice struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Visible  bool     `json:"visible"`
}

// Event is what gets pushed to a connected client.
type Event struct {
	Type   string `json:"type"`
	Notice Notice `json:"notice"`
}

// Sender delivers an event to a user's client. A delivery failure is
// the sender's problem; the notifier never cares.
type Sender interface {
	SendToUser(userID int64, payload interface{}) bool
}

const (
	defaultShowDelay  = 80 * time.Millisecond
	defaultVisibleFor = 3 * time.Second
)

// Notifier owns one notice slot per user. It is purely observational:
// booking outcomes are decided long before anything lands here, and a
// nil sender makes the whole thing a state-only no-op for headless use.
type Notifier struct {
	mu    sync.Mutex
	slots map[int64]*slot

	sender     Sender
	showDelay  time.Duration
	visibleFor time.Duration
}

// slot carries the generation counter that keeps a stale show/dismiss
// timer from touching a notice that has since been replaced.
type slot struct {
	notice Notice
	gen    uint64
}

func New(sender Sender) *Notifier {
	return NewWithTiming(sender, defaultShowDelay, defaultVisibleFor)
}

func NewWithTiming(sender Sender, showDelay, visibleFor time.Duration) *Notifier {
	return &Notifier{
		slots:      make(map[int64]*slot),
		sender:     sender,
		showDelay:  showDelay,
		visibleFor: visibleFor,
	}
}

// Success publishes a success notice for the user.
func (n *Notifier) Success(userID int64, message string) {
	n.Publish(userID, message, SeveritySuccess)
}

// Error publishes an error notice for the user.
func (n *Notifier) Error(userID int64, message string) {
	n.Publish(userID, message, SeverityError)
}

func (n *Notifier) Publish(userID int64, message string, severity Severity) {
	n.mu.Lock()
	s := n.slots[userID]
	if s == nil {
		s = &slot{}
		n.slots[userID] = s
	}
	s.gen++
	gen := s.gen
	s.notice = Notice{Message: message, Severity: severity}
	n.mu.Unlock()

	time.AfterFunc(n.showDelay, func() { n.show(userID, gen) })
	time.AfterFunc(n.showDelay+n.visibleFor, func() { n.dismiss(userID, gen) })
}

// Current returns the user's notice, shown or pending, if one exists.
func (n *Notifier) Current(userID int64) (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	s, ok := n.slots[userID]
	if !ok {
		return Notice{}, false
	}
	return s.notice, true
}

func (n *Notifier) show(userID int64, gen uint64) {
	n.mu.Lock()
	s := n.slots[userID]
	if s == nil || s.gen != gen {
		n.mu.Unlock()
		return
	}
	s.notice.Visible = true
	notice := s.notice
	n.mu.Unlock()

	n.send(userID, Event{Type: "show", Notice: notice})
}

func (n *Notifier) dismiss(userID int64, gen uint64) {
	n.mu.Lock()
	s := n.slots[userID]
	if s == nil || s.gen != gen {
		n.mu.Unlock()
		return
	}
	delete(n.slots, userID)
	n.mu.Unlock()

	n.send(userID, Event{Type: "dismiss"})
}

func (n *Notifier) send(userID int64, ev Event) {
	if n.sender == nil {
		return
	}
	n.sender.SendToUser(userID, ev)
}
