package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// WrapStatusError wraps a provider API error with the sentinel that matches
// its HTTP status code.
func WrapStatusError(status int, err error) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
}

// WrapTransportError wraps an error that carries no provider status, such as
// a network failure. Context errors are returned unchanged.
func WrapTransportError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
}
