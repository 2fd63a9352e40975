package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/primrose-mcp/primrose-mcp-trello/internal/config"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/logging"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	return NewServer(config.Default(), logger)
}

func TestCredentialsContextRoundTrip(t *testing.T) {
	creds := trello.Credentials{Key: "k1", Token: "t1"}
	ctx := withCredentials(context.Background(), creds)

	got, ok := CredentialsFromContext(ctx)
	if !ok {
		t.Fatal("expected credentials on context")
	}
	if got != creds {
		t.Errorf("expected %+v, got %+v", creds, got)
	}

	if _, ok := CredentialsFromContext(context.Background()); ok {
		t.Error("expected no credentials on bare context")
	}
}

func TestHTTPContextFunc(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	r.Header.Set(HeaderAPIKey, "key-abc")
	r.Header.Set(HeaderToken, "token-xyz")

	ctx := httpContextFunc(context.Background(), r)
	creds, ok := CredentialsFromContext(ctx)
	if !ok {
		t.Fatal("expected credentials on context")
	}
	if creds.Key != "key-abc" || creds.Token != "token-xyz" {
		t.Errorf("unexpected credentials: %+v", creds)
	}

	// A half-provided pair never reaches the handlers as credentials.
	partial := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	partial.Header.Set(HeaderAPIKey, "key-abc")
	if _, ok := CredentialsFromContext(httpContextFunc(context.Background(), partial)); ok {
		t.Error("expected no credentials when token header is missing")
	}
}

func TestRouterRejectsMissingCredentials(t *testing.T) {
	router := newTestServer(t).Router()

	tests := []struct {
		name        string
		setKey      bool
		setToken    bool
		wantMissing []string
	}{
		{"both missing", false, false, []string{HeaderAPIKey, HeaderToken}},
		{"token missing", true, false, []string{HeaderToken}},
		{"key missing", false, true, []string{HeaderAPIKey}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tt.setKey {
				req.Header.Set(HeaderAPIKey, "key")
			}
			if tt.setToken {
				req.Header.Set(HeaderToken, "token")
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}

			var body struct {
				Error          string   `json:"error"`
				MissingHeaders []string `json:"missingHeaders"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Error != "missing credentials" {
				t.Errorf("unexpected error message %q", body.Error)
			}
			if len(body.MissingHeaders) != len(tt.wantMissing) {
				t.Fatalf("expected missing headers %v, got %v", tt.wantMissing, body.MissingHeaders)
			}
			for i, header := range tt.wantMissing {
				if body.MissingHeaders[i] != header {
					t.Errorf("expected missing header %q, got %q", header, body.MissingHeaders[i])
				}
			}
		})
	}
}

func TestHealthEndpointNeedsNoCredentials(t *testing.T) {
	router := newTestServer(t).Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestInfoEndpoint(t *testing.T) {
	router := newTestServer(t).Router()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Name     string   `json:"name"`
		Endpoint string   `json:"endpoint"`
		Headers  []string `json:"headers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Name != ServerName {
		t.Errorf("expected name %q, got %q", ServerName, body.Name)
	}
	if body.Endpoint != "/mcp" {
		t.Errorf("expected /mcp endpoint, got %q", body.Endpoint)
	}
	if len(body.Headers) != 2 {
		t.Errorf("expected both credential headers advertised, got %v", body.Headers)
	}
}
