package errors

import "errors"

// This package defines a centralized set of sentinel errors for the
// application. Services return these without knowing about HTTP status
// codes; the API layer maps them with errors.Is().

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed business rule
	// validation. Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation conflicts with the current
	// state of a resource, e.g. submitting to a session that already has a
	// submission in flight. Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrRateLimited signifies that the provider reported quota exhaustion
	// and the process-wide blocking condition is active. Mapped to 429.
	ErrRateLimited = errors.New("provider rate limited")

	// ErrNoCredential signifies that no usable provider credential is
	// configured. Mapped to 401 Unauthorized.
	ErrNoCredential = errors.New("no provider credential configured")

	// ErrInternal signifies an unexpected server error. Mapped to 500 and
	// kept generic to avoid leaking implementation details.
	ErrInternal = errors.New("internal server error")
)
