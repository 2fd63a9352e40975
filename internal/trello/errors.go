package trello

import (
	"errors"
	"fmt"
	"time"
)

// AuthenticationError indicates Trello rejected the tenant's API key or
// token. Never retryable: retrying with the same credentials cannot succeed.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "trello: invalid API key or token"
	}
	return fmt.Sprintf("trello: authentication failed: %s", e.Message)
}

// RateLimitError indicates Trello returned 429. RetryAfter carries the
// advisory delay from the Retry-After header, defaulting to 60 seconds
// when the header is absent.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("trello: rate limited, retry after %s", e.RetryAfter)
}

// APIError is any other non-2xx response from Trello. It carries the raw
// status code and response body for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("trello: API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("trello: API error (status %d): %s", e.StatusCode, e.Body)
}

func errInvalidActionLimit(limit int) error {
	return fmt.Errorf("invalid limit %d: must be between 1 and 1000", limit)
}

// IsRetryable reports whether the caller may reasonably retry the
// operation later. Rate limits are retryable, authentication failures are
// not, and generic API errors are retryable only for server-side (5xx)
// statuses.
func IsRetryable(err error) bool {
	var rateErr *RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}
