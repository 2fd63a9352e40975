package mcp

import (
	"fmt"
	"strings"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
)

// argReader reads optional tool arguments while preserving the three-way
// distinction Trello's API forces on us: absent (don't send the field),
// explicit null (send an empty value, which clears the field upstream) and
// a concrete value. mcp-go's own GetString collapses absent and null, so
// the raw argument map is consulted instead.
//
// A value of the wrong type is recorded as a caller error; handlers check
// Err before issuing any remote request so a mistyped argument is rejected
// instead of being silently treated as absent.
type argReader struct {
	args map[string]interface{}
	err  error
}

func newArgReader(req mcpgo.CallToolRequest) *argReader {
	return &argReader{args: req.GetArguments()}
}

// Err reports the first type mismatch encountered, if any.
func (a *argReader) Err() error {
	return a.err
}

func (a *argReader) typeError(name, want string) {
	if a.err == nil {
		a.err = fmt.Errorf("argument %q must be a %s", name, want)
	}
}

// optString returns nil when the argument is absent, a pointer to the
// empty string when the caller passed an explicit null, and a pointer to
// the value otherwise.
func (a *argReader) optString(name string) *string {
	raw, present := a.args[name]
	if !present {
		return nil
	}
	if raw == nil {
		empty := ""
		return &empty
	}
	if s, ok := raw.(string); ok {
		return &s
	}
	a.typeError(name, "string")
	return nil
}

// optBool returns nil when the argument is absent or null.
func (a *argReader) optBool(name string) *bool {
	raw, present := a.args[name]
	if !present || raw == nil {
		return nil
	}
	if b, ok := raw.(bool); ok {
		return &b
	}
	a.typeError(name, "boolean")
	return nil
}

// optInt returns nil when the argument is absent or null. JSON numbers
// arrive as float64 and are truncated.
func (a *argReader) optInt(name string) *int {
	raw, present := a.args[name]
	if !present || raw == nil {
		return nil
	}
	if f, ok := raw.(float64); ok {
		i := int(f)
		return &i
	}
	a.typeError(name, "number")
	return nil
}

// optIDList parses a comma-separated identifier list. Absent means nil
// (omit the parameter); explicit null or an empty string means an empty
// non-nil slice, which clears the list upstream.
func (a *argReader) optIDList(name string) []string {
	raw, present := a.args[name]
	if !present {
		return nil
	}
	if raw == nil {
		return []string{}
	}
	s, ok := raw.(string)
	if !ok {
		a.typeError(name, "comma-separated string")
		return nil
	}
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
