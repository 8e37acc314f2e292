// Package auth holds the explicit backend session passed to the HTTP
// client. It replaces module-global token storage: whoever constructs
// the client decides which session it uses.
package auth

import (
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session carries the bearer token for the remote banking API.
type Session struct {
	mu    sync.RWMutex
	token string
}

// NewSession creates a session with the given token. An empty token is
// allowed; requests then go out unauthenticated.
func NewSession(token string) *Session {
	return &Session{token: token}
}

// SetToken replaces the current token, e.g. after a login.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the current token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authorize attaches the Authorization header to req when a token is
// present.
func (s *Session) Authorize(req *http.Request) {
	if t := s.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}
}

// ExpiresAt peeks at the token's exp claim without verifying the
// signature; verification is the backend's job. The second return is
// false when there is no token, the token is not a JWT, or it carries
// no expiry.
func (s *Session) ExpiresAt() (time.Time, bool) {
	t := s.Token()
	if t == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(t, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired reports whether the token is known to be past its expiry.
func (s *Session) Expired() bool {
	exp, ok := s.ExpiresAt()
	return ok && time.Now().After(exp)
}
