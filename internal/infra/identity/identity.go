// Package identity resolves the acting user. Every engine operation is a
// no-op failure when nobody is logged in, so resolution sits behind one
// narrow interface.
package identity

import (
	"fmt"

	"github.com/daykeep/daykeep/internal/domain"
	"github.com/daykeep/daykeep/internal/infra/sqlite"
)

// Provider resolves the acting user's username.
// Returns domain.ErrNotAuthenticated when there is no active user.
type Provider interface {
	CurrentUser() (string, error)
}

// ─── SQLite-backed session ──────────────────────────────────────────────────

// Session is the persistent single-user session backed by the local
// database. This is identification, not authentication: login records a
// username and nothing checks a credential.
type Session struct {
	db *sqlite.DB
}

// NewSession creates a session provider.
func NewSession(db *sqlite.DB) *Session {
	return &Session{db: db}
}

// CurrentUser returns the logged-in username.
func (s *Session) CurrentUser() (string, error) {
	username, err := s.db.CurrentUser()
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	if username == "" {
		return "", domain.ErrNotAuthenticated
	}
	return username, nil
}

// Login records username as the active user.
func (s *Session) Login(username string) error {
	if username == "" {
		return domain.ErrMissingUsername
	}
	return s.db.SetCurrentUser(username)
}

// Logout clears the active user.
func (s *Session) Logout() error {
	return s.db.SetCurrentUser("")
}

// ─── Fixed provider ─────────────────────────────────────────────────────────

// Static always resolves to the same username. Test helper; an empty
// username behaves like a logged-out session.
type Static string

// CurrentUser returns the fixed username.
func (s Static) CurrentUser() (string, error) {
	if s == "" {
		return "", domain.ErrNotAuthenticated
	}
	return string(s), nil
}
