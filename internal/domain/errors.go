package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrEmptyPasswordHash is returned when an account is about to be stored
	// without a hashed password.
	ErrEmptyPasswordHash = errors.New("hashed password cannot be empty")
)
