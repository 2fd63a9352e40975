package mcp

import (
	"encoding/json"
	"fmt"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/render"
)

// readResult renders a read operation's value in the caller-requested
// format. The kind tag selects the markdown layout; an invalid format
// token is a caller error, not a transport failure.
func readResult(req mcpgo.CallToolRequest, v interface{}, kind string) (*mcpgo.CallToolResult, error) {
	format, err := render.ParseFormat(req.GetString("format", ""))
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	text, err := render.Render(v, kind, format)
	if err != nil {
		return nil, err
	}
	return mcpgo.NewToolResultText(text), nil
}

// mutationResult wraps a mutating operation's outcome in the uniform
// {"success": true, "message": ..., "<entity>": ...} envelope. Void
// operations pass an empty entity name and nil value.
func mutationResult(entity, message string, v interface{}) (*mcpgo.CallToolResult, error) {
	payload := map[string]interface{}{
		"success": true,
		"message": message,
	}
	if entity != "" && v != nil {
		payload[entity] = v
	}
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result envelope: %w", err)
	}
	return mcpgo.NewToolResultText(string(encoded)), nil
}

// errorResult converts a classified failure into an error-flagged tool
// result: the human-readable message first, the structured diagnostics
// payload second.
func errorResult(err error) *mcpgo.CallToolResult {
	text, details := render.ErrorEnvelope(err)
	encoded, encodeErr := json.MarshalIndent(details, "", "  ")
	if encodeErr != nil {
		encoded = []byte(fmt.Sprintf(`{"message": %q}`, err.Error()))
	}
	return &mcpgo.CallToolResult{
		IsError: true,
		Content: []mcpgo.Content{
			mcpgo.NewTextContent(text),
			mcpgo.NewTextContent(string(encoded)),
		},
	}
}
