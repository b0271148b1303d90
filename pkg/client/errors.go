package client

import "errors"

// Sentinel errors the client maps HTTP error statuses onto. Use errors.Is to
// branch on them; the wrapped message carries the server's error text.
var (
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for 400 responses.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicate is returned for 409 responses.
	ErrDuplicate = errors.New("duplicate resource")

	// ErrForbidden is returned for 401 and 403 responses.
	ErrForbidden = errors.New("forbidden")
)
