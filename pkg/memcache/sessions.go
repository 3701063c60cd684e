package memcache

import (
	"sync"
	"time"

	"tripcast/internal/models/domain_models"
)

// Session states. Transitions happen only inside the session service while
// the session lock is held.
const (
	StateIdle       = "idle"
	StateGenerating = "generating"
	StateExhausted  = "exhausted"
)

// Session is the single mutable object behind one user's planning state:
// current parameters, current result, outer-retry bookkeeping and the
// per-day audio cache.
type Session struct {
	mu sync.Mutex

	ID          string
	State       string
	Destination string
	Days        int
	Theme       string

	Itinerary   *domain_models.TravelItinerary
	ActiveModel string

	RetryCount   int
	LastResumeAt time.Time

	Audio map[int][]byte

	expiresAt time.Time
}

// Lock serializes all work on one session; generation, rendering and audio
// synthesis for a session never overlap.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// ResetResult discards the stored itinerary and cached audio. Called on any
// parameter change before a new generation starts.
func (s *Session) ResetResult() {
	s.Itinerary = nil
	s.ActiveModel = ""
	s.RetryCount = 0
	s.Audio = make(map[int][]byte)
	s.State = StateIdle
}

// SessionStore is an in-memory TTL store. Expired sessions are dropped
// lazily on access.
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]*Session
	ttl  time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		data: make(map[string]*Session),
		ttl:  ttl,
	}
}

func (st *SessionStore) Create(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	session := &Session{
		ID:        id,
		State:     StateIdle,
		Audio:     make(map[int][]byte),
		expiresAt: time.Now().Add(st.ttl),
	}
	st.data[id] = session
	return session
}

// Get returns the session and refreshes its TTL, or nil if missing/expired.
func (st *SessionStore) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.data[id]
	if !ok {
		return nil
	}
	if time.Now().After(session.expiresAt) {
		delete(st.data, id)
		return nil
	}
	session.expiresAt = time.Now().Add(st.ttl)
	return session
}

func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.data, id)
}
