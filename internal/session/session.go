// Package session holds the bearer session used against the platform API.
// The session is an explicit object passed to whoever needs it: created at
// bootstrap or login, invalidated at logout or on the first 401, never a
// package-level singleton.
package session

import (
	"errors"
	"sync"
	"time"
)

// ErrInvalidated is returned once the session has been invalidated; callers
// are expected to re-authenticate before retrying.
var ErrInvalidated = errors.New("session invalidated")

type Session struct {
	mu          sync.RWMutex
	token       string
	createdAt   time.Time
	invalidated bool
}

// New creates a live session from a freshly issued token.
func New(token string) *Session {
	return &Session{
		token:     token,
		createdAt: time.Now(),
	}
}

// Token returns the bearer token, or ErrInvalidated after logout/401.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.invalidated || s.token == "" {
		return "", ErrInvalidated
	}
	return s.token, nil
}

// Valid reports whether the session can still be used.
func (s *Session) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.invalidated && s.token != ""
}

// CreatedAt returns when the session was established.
func (s *Session) CreatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.createdAt
}

// Invalidate marks the session dead. Safe to call more than once.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidated = true
}

// Renew replaces the token after a re-login and revives the session.
func (s *Session) Renew(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.createdAt = time.Now()
	s.invalidated = false
}
