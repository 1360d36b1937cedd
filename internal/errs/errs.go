// Package errs defines the error taxonomy shared by services, repositories
// and handlers. Callers classify failures with errors.Is and map them to
// HTTP status codes at the boundary.
package errs

import "errors"

var (
	// ErrInvalid marks malformed or missing client input.
	ErrInvalid = errors.New("invalid input")

	// ErrForbidden marks an ownership check failure.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks a lookup of an identifier with no backing record.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a duplicate row or an exhausted identifier
	// generation budget.
	ErrConflict = errors.New("conflict")
)
