package domain

import "errors"

// Domain error kinds (no external dependencies). Use cases return these
// wrapped or bare; the HTTP layer maps them to status codes.
var (
	// ErrNotFound covers both a missing entity and an entity owned by
	// another user. Ownership misses never leak existence.
	ErrNotFound = errors.New("resource not found")

	// ErrPreconditionFailed signals a missing prerequisite, e.g. creating
	// an invoice before setting up the company profile.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrConflict signals a duplicate unique key: customer email collision,
	// or an invoice-number race that survived retries.
	ErrConflict = errors.New("conflict with existing resource")

	// ErrValidation signals malformed or out-of-range input.
	ErrValidation = errors.New("invalid input")

	ErrUnauthorized = errors.New("unauthorized")
)
