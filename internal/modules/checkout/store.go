package checkout

import (
	"context"
	"log"
	"sync"
	"time"
)

// SessionStore keeps live checkout sessions in memory. Sessions are
// small, per-user and short-lived; an abandoned one is swept by the
// janitor once its TTL passes.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (st *SessionStore) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok || s.expiredAt(time.Now(), st.ttl) {
		return nil, false
	}
	return s, true
}

func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *SessionStore) sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	n := 0
	for id, s := range st.sessions {
		if s.expiredAt(now, st.ttl) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// RunJanitor sweeps expired sessions until ctx is cancelled.
func (st *SessionStore) RunJanitor(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.sweep(time.Now()); n > 0 {
				log.Printf("checkout janitor removed %d expired sessions", n)
			}
		}
	}
}
