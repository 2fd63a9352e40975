package mcp

import (
	"encoding/json"
	"strings"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func resultText(t *testing.T, content mcpgo.Content) string {
	t.Helper()
	tc, ok := content.(mcpgo.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", content)
	}
	return tc.Text
}

func TestMutationResultEnvelope(t *testing.T) {
	board := &trello.Board{ID: "b1", Name: "Roadmap"}

	result, err := mutationResult("board", "Board created", board)
	if err != nil {
		t.Fatalf("mutationResult failed: %v", err)
	}
	if result.IsError {
		t.Fatal("mutation result must not be flagged as an error")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(result.Content))
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(resultText(t, result.Content[0])), &envelope); err != nil {
		t.Fatalf("envelope is not valid JSON: %v", err)
	}

	var success bool
	if err := json.Unmarshal(envelope["success"], &success); err != nil || !success {
		t.Errorf("expected success=true, got %s", envelope["success"])
	}
	var message string
	if err := json.Unmarshal(envelope["message"], &message); err != nil || message != "Board created" {
		t.Errorf("expected message %q, got %s", "Board created", envelope["message"])
	}
	var embedded trello.Board
	if err := json.Unmarshal(envelope["board"], &embedded); err != nil {
		t.Fatalf("embedded entity is not valid: %v", err)
	}
	if embedded.ID != "b1" || embedded.Name != "Roadmap" {
		t.Errorf("embedded entity mangled: %+v", embedded)
	}
}

func TestMutationResultVoidOperation(t *testing.T) {
	result, err := mutationResult("", "Card deleted", nil)
	if err != nil {
		t.Fatalf("mutationResult failed: %v", err)
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal([]byte(resultText(t, result.Content[0])), &envelope); err != nil {
		t.Fatalf("envelope is not valid JSON: %v", err)
	}
	if len(envelope) != 2 {
		t.Errorf("void envelope must carry only success and message, got %v", envelope)
	}
	if envelope["success"] != true {
		t.Errorf("expected success=true, got %v", envelope["success"])
	}
	if envelope["message"] != "Card deleted" {
		t.Errorf("expected message %q, got %v", "Card deleted", envelope["message"])
	}
}

func TestErrorResultShape(t *testing.T) {
	result := errorResult(&trello.APIError{StatusCode: 503, Body: "service unavailable"})

	if !result.IsError {
		t.Fatal("expected IsError to be set")
	}
	if len(result.Content) != 2 {
		t.Fatalf("expected message and details content, got %d items", len(result.Content))
	}

	message := resultText(t, result.Content[0])
	if !strings.HasPrefix(message, "Error: ") {
		t.Errorf("expected Error prefix, got %q", message)
	}
	if !strings.HasSuffix(message, "(retryable)") {
		t.Errorf("expected retryable suffix for a 503, got %q", message)
	}

	var details struct {
		Type       string `json:"type"`
		Retryable  bool   `json:"retryable"`
		StatusCode int    `json:"statusCode"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result.Content[1])), &details); err != nil {
		t.Fatalf("details payload is not valid JSON: %v", err)
	}
	if details.Type != "api_error" {
		t.Errorf("expected type api_error, got %q", details.Type)
	}
	if !details.Retryable {
		t.Error("expected retryable=true for a 503")
	}
	if details.StatusCode != 503 {
		t.Errorf("expected status 503, got %d", details.StatusCode)
	}
}

func TestErrorResultAuthenticationNotRetryable(t *testing.T) {
	result := errorResult(&trello.AuthenticationError{})

	if !result.IsError {
		t.Fatal("expected IsError to be set")
	}
	message := resultText(t, result.Content[0])
	if strings.HasSuffix(message, "(retryable)") {
		t.Errorf("authentication failures must not be marked retryable: %q", message)
	}

	var details struct {
		Type      string `json:"type"`
		Retryable bool   `json:"retryable"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result.Content[1])), &details); err != nil {
		t.Fatalf("details payload is not valid JSON: %v", err)
	}
	if details.Type != "authentication_error" || details.Retryable {
		t.Errorf("unexpected details: %+v", details)
	}
}
