package conversation

import (
	"sync"
	"time"
)

// SessionStore holds live sessions in memory with TTL eviction and a
// per-session lock so at most one turn mutates a session at a time.
// Cross-session turns proceed in parallel.
type SessionStore struct {
	mu        sync.Mutex
	sessions  map[string]*sessionEntry
	ttl       time.Duration
	lastSweep time.Time
}

type sessionEntry struct {
	lock      sync.Mutex
	session   *Session
	expiresAt time.Time
}

// NewSessionStore creates a store whose sessions expire ttl after
// their last turn.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{
		sessions:  make(map[string]*sessionEntry),
		ttl:       ttl,
		lastSweep: time.Now(),
	}
}

// Acquire returns the session for id with its turn lock held, creating
// it lazily. created reports whether this is a brand new session, so
// the caller can try a snapshot restore before the first mutation.
// The returned release function must be called when the turn is done.
func (s *SessionStore) Acquire(id string) (sess *Session, created bool, release func()) {
	s.mu.Lock()
	s.sweepLocked()
	entry, ok := s.sessions[id]
	if !ok {
		entry = &sessionEntry{session: NewSession(id)}
		s.sessions[id] = entry
		created = true
	}
	entry.expiresAt = time.Now().Add(s.ttl)
	s.mu.Unlock()

	entry.lock.Lock()
	return entry.session, created, entry.lock.Unlock
}

// Replace swaps the stored session under an already-held turn lock,
// used when a snapshot restore or a corrupt-state reset rebuilds it.
func (s *SessionStore) Replace(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.sessions[sess.ID]; ok {
		entry.session = sess
	}
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// sweepLocked drops expired sessions. Runs at most once a minute.
func (s *SessionStore) sweepLocked() {
	now := time.Now()
	if now.Sub(s.lastSweep) < time.Minute {
		return
	}
	s.lastSweep = now
	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, id)
		}
	}
}
