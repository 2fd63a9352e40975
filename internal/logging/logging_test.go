package logging

import (
	"strings"
	"testing"
	"time"
)

func TestNewTestLogger(t *testing.T) {
	logger, buf := NewTestLogger()
	if logger == nil {
		t.Fatal("NewTestLogger returned nil logger")
	}

	logger.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("expected log output to contain message, got: %q", out)
	}
	if !strings.Contains(out, "key=value") {
		t.Errorf("expected log output to contain key/value pair, got: %q", out)
	}
}

func TestDebugLoggingEnabled(t *testing.T) {
	logger, buf := NewTestLogger()

	logger.Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Errorf("test logger should emit debug messages, got: %q", buf.String())
	}
}

func TestWithAttachesFields(t *testing.T) {
	logger, buf := NewTestLogger()

	scoped := logger.With("tool", "get_board")
	scoped.Info("dispatch")

	out := buf.String()
	if !strings.Contains(out, "tool=get_board") {
		t.Errorf("expected scoped field in output, got: %q", out)
	}
}

func TestLogToolCall(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "success logs completion",
			err:     nil,
			wantMsg: "Tool call completed",
		},
		{
			name:    "failure logs warning",
			err:     errTest,
			wantMsg: "Tool call failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := NewTestLogger()
			logger.LogToolCall("list_boards", time.Now(), tt.err)
			if !strings.Contains(buf.String(), tt.wantMsg) {
				t.Errorf("expected %q in output, got: %q", tt.wantMsg, buf.String())
			}
		})
	}
}

type testError string

func (e testError) Error() string { return string(e) }

var errTest = testError("boom")
