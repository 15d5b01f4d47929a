// Package errs contains sentinel errors shared across layers for stable
// status-code mapping at the controller boundary.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist (or is filtered
	// out, e.g. an inactive product).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (duplicate email).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates failed credential or token verification.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBadRequest indicates a referenced entity could not be established
	// (e.g. lazy user repair failed for a swipe session).
	ErrBadRequest = errors.New("bad request")
)
