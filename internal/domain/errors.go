package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Services return these directly; the HTTP layer maps them onto the
// success/message envelope the frontend consumes.

var (
	// Identity
	ErrNotAuthenticated = errors.New("no user is logged in")

	// Validation
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrMissingType     = errors.New("entry type is required")
	ErrMissingCategory = errors.New("category is required")
	ErrUnknownCategory = errors.New("category is not in the catalog")
	ErrMissingUsername = errors.New("username is required")

	// Lookup
	ErrNotFound = errors.New("record not found")
)
