package domain

import "errors"

// Sentinel errors separating the error taxonomy the HTTP layer maps onto
// status codes. Services wrap these with fmt.Errorf("...: %w", ...) so the
// message can name the offending identifier.
var (
	// ErrInvalidInput marks structural validation failures, raised before
	// any store access.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGuestNotFound covers both direct guest lookups and RSVP creation
	// referencing a guest that does not exist.
	ErrGuestNotFound = errors.New("guest not found")

	// ErrRSVPExists is returned when a guest already has an RSVP on file.
	ErrRSVPExists = errors.New("rsvp already exists")

	ErrRSVPNotFound = errors.New("rsvp not found")

	ErrWeddingInfoNotFound = errors.New("wedding information record not found")
)
