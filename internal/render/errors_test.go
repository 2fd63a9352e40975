package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func TestErrorEnvelope(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantType       string
		wantRetryable  bool
		wantStatus     int
		wantRetryAfter int
	}{
		{
			name:          "authentication error",
			err:           &trello.AuthenticationError{},
			wantType:      "authentication_error",
			wantRetryable: false,
		},
		{
			name:           "rate limit carries retry delay",
			err:            &trello.RateLimitError{RetryAfter: 90 * time.Second},
			wantType:       "rate_limit_error",
			wantRetryable:  true,
			wantRetryAfter: 90,
		},
		{
			name:          "server error is retryable",
			err:           &trello.APIError{StatusCode: 503},
			wantType:      "api_error",
			wantRetryable: true,
			wantStatus:    503,
		},
		{
			name:          "client error is not retryable",
			err:           &trello.APIError{StatusCode: 404, Body: "board not found"},
			wantType:      "api_error",
			wantRetryable: false,
			wantStatus:    404,
		},
		{
			name:          "wrapped classified error keeps its classification",
			err:           fmt.Errorf("get board: %w", &trello.AuthenticationError{}),
			wantType:      "authentication_error",
			wantRetryable: false,
		},
		{
			name:          "unclassified error",
			err:           errors.New("connection refused"),
			wantType:      "unknown_error",
			wantRetryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, details := ErrorEnvelope(tt.err)

			if details.Type != tt.wantType {
				t.Errorf("expected type %q, got %q", tt.wantType, details.Type)
			}
			if details.Retryable != tt.wantRetryable {
				t.Errorf("expected retryable=%t, got %t", tt.wantRetryable, details.Retryable)
			}
			if details.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, details.StatusCode)
			}
			if details.RetryAfterSeconds != tt.wantRetryAfter {
				t.Errorf("expected retry after %d, got %d", tt.wantRetryAfter, details.RetryAfterSeconds)
			}

			if !strings.HasPrefix(text, "Error: ") {
				t.Errorf("expected Error prefix, got %q", text)
			}
			if !strings.Contains(text, tt.err.Error()) {
				t.Errorf("message %q missing from text %q", tt.err.Error(), text)
			}
			if tt.wantRetryable != strings.HasSuffix(text, "(retryable)") {
				t.Errorf("retryable suffix mismatch for %q", text)
			}
		})
	}
}
