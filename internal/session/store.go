package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state tied to one logged-in browser. Only the
// stable identity fields live here; mutable profile data is re-fetched from
// the store when a page needs it.
type Session struct {
	ID        string
	UserID    int
	Name      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store keeps sessions in process memory, keyed by a random ID. Expired
// entries are dropped lazily on lookup.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

// Start creates and registers a new session for the user.
func (s *Store) Start(userID int, name string) Session {
	now := time.Now()
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the live session with the given ID, if any.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return Session{}, false
	}
	if time.Now().After(sess.ExpiresAt) {
		s.Destroy(id)
		return Session{}, false
	}
	return sess, true
}

// Destroy removes the session; reports whether it existed.
func (s *Store) Destroy(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Len reports how many sessions are registered, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
