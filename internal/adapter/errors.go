package adapter

import "errors"

var (
	// ErrMailerNotConfigured is returned by every send when no API key was
	// supplied at construction.
	ErrMailerNotConfigured = errors.New("email api key not configured")

	// ErrNoRecipient is returned for messages without a destination.
	ErrNoRecipient = errors.New("email has no recipient")
)

// Errors mapped from email API responses.
var (
	ErrBadRequest   = errors.New("email api rejected the message")
	ErrUnauthorized = errors.New("email api key rejected")
	ErrForbidden    = errors.New("email api forbids the sender")
	ErrRateLimited  = errors.New("email api rate limit exceeded")
	ErrUpstream     = errors.New("email api unavailable")
)
