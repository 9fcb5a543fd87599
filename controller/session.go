package controller

import (
	"github.com/moviatask/moviactl/session"
)

// Session exposes the process-wide authentication state to the
// presentation layer. Exactly one of these should exist per running
// client; gated screens subscribe to its transitions instead of
// polling.
type Session struct {
	manager *session.Manager
}

// NewSession wraps the session manager.
func NewSession(manager *session.Manager) *Session {
	return &Session{manager: manager}
}

// IsAuthenticated reports whether a session token is live.
func (s *Session) IsAuthenticated() bool {
	return s.manager.IsLoggedIn()
}

// DidLogin persists the token and flips to authenticated. The auth
// client already persists on success; this path exists for callers
// that obtained a token elsewhere.
func (s *Session) DidLogin(token string) error {
	return s.manager.SaveToken(token)
}

// Logout clears the token and flips to unauthenticated.
func (s *Session) Logout() error {
	return s.manager.ClearToken()
}

// Subscribe registers a callback for authentication transitions. The
// returned function cancels the subscription.
func (s *Session) Subscribe(fn func(loggedIn bool)) (cancel func()) {
	return s.manager.Subscribe(fn)
}
