package generation

import (
	"context"
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when pathway generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate learning pathway")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve on retry
	ErrTransientFailure = errors.New("transient error during pathway generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrMissingAPIKey is returned when no API key was supplied
	ErrMissingAPIKey = errors.New("api key is required")

	// ErrInvalidAPIKey is returned when the provider rejects the API key
	ErrInvalidAPIKey = errors.New("api key rejected by provider")

	// ErrRateLimited is returned when the provider throttles the request
	ErrRateLimited = fmt.Errorf("%w: rate limited", ErrTransientFailure)

	// ErrProviderUnavailable is returned when the provider is down or unreachable
	ErrProviderUnavailable = fmt.Errorf("%w: provider unavailable", ErrTransientFailure)
)

// ErrorKind classifies a generation failure for callers.
type ErrorKind string

// Error kinds
const (
	KindMissingKey      ErrorKind = "missing_key"
	KindInvalidKey      ErrorKind = "invalid_key"
	KindRateLimited     ErrorKind = "rate_limited"
	KindUnavailable     ErrorKind = "unavailable"
	KindInvalidResponse ErrorKind = "invalid_response"
	KindCanceled        ErrorKind = "canceled"
	KindUnknown         ErrorKind = "unknown"
)

var kindMessages = map[ErrorKind]string{
	KindMissingKey:      "An API key is required for AI recommendations.",
	KindInvalidKey:      "The AI provider rejected the API key.",
	KindRateLimited:     "The AI provider is rate limiting requests. Try again shortly.",
	KindUnavailable:     "The AI provider is unavailable. Try again later.",
	KindInvalidResponse: "The AI provider returned an unusable response.",
	KindCanceled:        "The AI recommendation request was canceled.",
	KindUnknown:         "AI recommendation failed.",
}

// Message returns a user-facing description of the kind.
func (k ErrorKind) Message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return kindMessages[KindUnknown]
}

// Error is a classified generation failure.
type Error struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError classifies err and wraps it. A nil err yields nil.
func NewError(err error) *Error {
	if err == nil {
		return nil
	}
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr
	}
	return &Error{Kind: KindOf(err), Err: err}
}

// KindOf maps an error chain onto an ErrorKind.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingAPIKey):
		return KindMissingKey
	case errors.Is(err, ErrInvalidAPIKey):
		return KindInvalidKey
	case errors.Is(err, ErrRateLimited):
		return KindRateLimited
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, ErrProviderUnavailable),
		errors.Is(err, ErrTransientFailure),
		errors.Is(err, context.DeadlineExceeded):
		return KindUnavailable
	case errors.Is(err, ErrInvalidResponse), errors.Is(err, ErrContentBlocked):
		return KindInvalidResponse
	default:
		return KindUnknown
	}
}

// IsRetryable reports whether err is worth another attempt.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, ErrTransientFailure)
}
