package models

import (
	"sync"
	"time"

	ttlworker "github.com/FloatTech/ttl"
)

// DefaultSessionTTL is used when the config does not set one.
var DefaultSessionTTL = 24 * time.Hour

// SessionStore maps opaque session tokens to their authenticated flag.
// Sessions expire with the cache TTL; expiry is the only way back to the
// unauthenticated state (there is no logout).
type SessionStore struct {
	mu       sync.RWMutex
	sessions *ttlworker.Cache[string, bool]
}

// NewSessionStore creates a session store whose entries live for ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: ttlworker.NewCache[string, bool](ttl),
	}
}

// Touch registers the token as a known (unauthenticated) session if it is
// not already present. Called on first client contact.
func (s *SessionStore) Touch(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.sessions.Get(token) {
		s.sessions.Set(token, false)
	}
}

// Authenticate flips the token's flag after a correct password.
func (s *SessionStore) Authenticate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Set(token, true)
}

// IsAuthenticated reports whether the token belongs to an authenticated,
// unexpired session. Unknown and expired tokens read as false.
func (s *SessionStore) IsAuthenticated(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions.Get(token)
}

// Invalidate drops the session. Not reachable from the HTTP surface today,
// kept for tests and future logout support.
func (s *SessionStore) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Delete(token)
}
