package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidCredentials indicates the username is unknown or the password does not match
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrHashingFailed indicates a password could not be hashed
	ErrHashingFailed = errors.New("failed to hash password")
)
