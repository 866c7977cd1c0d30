package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
// The API layer maps service errors to appropriate HTTP status codes.
var (
	// ErrRegistrationFailed indicates an account could not be stored for a reason
	// other than the username being taken.
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrVerificationFailed indicates the stored account could not be read.
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrVerificationFailed = errors.New("credential verification failed")
)
