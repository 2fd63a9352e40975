package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

// ErrorDetails is the structured diagnostics payload accompanying every
// error message.
type ErrorDetails struct {
	Type              string `json:"type"`
	Retryable         bool   `json:"retryable"`
	StatusCode        int    `json:"statusCode,omitempty"`
	RetryAfterSeconds int    `json:"retryAfterSeconds,omitempty"`
	Message           string `json:"message"`
}

// ErrorEnvelope converts any failure into the uniform caller-facing error
// text plus a structured details payload. Classified Trello errors keep
// their classification; anything else is reported as an unknown error.
func ErrorEnvelope(err error) (string, ErrorDetails) {
	details := ErrorDetails{
		Type:    "unknown_error",
		Message: err.Error(),
	}

	var authErr *trello.AuthenticationError
	var rateErr *trello.RateLimitError
	var apiErr *trello.APIError
	switch {
	case errors.As(err, &authErr):
		details.Type = "authentication_error"
	case errors.As(err, &rateErr):
		details.Type = "rate_limit_error"
		details.RetryAfterSeconds = int(rateErr.RetryAfter / time.Second)
	case errors.As(err, &apiErr):
		details.Type = "api_error"
		details.StatusCode = apiErr.StatusCode
	}
	details.Retryable = trello.IsRetryable(err)

	text := fmt.Sprintf("Error: %s", err.Error())
	if details.Retryable {
		text += " (retryable)"
	}
	return text, details
}
