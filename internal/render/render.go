// Package render converts remote operation results into caller-facing
// text. It has two independent concerns: content shape (raw JSON versus a
// markdown summary) and success/error marking. The renderer never touches
// the network and never transforms entity data semantically; JSON output
// is the fetched value verbatim.
package render

import (
	"encoding/json"
	"fmt"
)

// Format selects the content shape of a rendered result.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps the caller-supplied format token onto a Format. An
// empty token defaults to JSON.
func ParseFormat(token string) (Format, error) {
	switch token {
	case "", "json":
		return FormatJSON, nil
	case "markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be json or markdown", token)
	}
}

// Render formats a successful result value. The kind tag selects the
// markdown layout strategy (e.g. "boards", "card", "checklists") and
// carries no validation semantics; it is ignored for JSON output.
func Render(v interface{}, kind string, format Format) (string, error) {
	if format == FormatMarkdown {
		return renderMarkdown(v, kind)
	}
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(encoded), nil
}
