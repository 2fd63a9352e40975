package mcp

import (
	"reflect"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
)

func readerWithArgs(args map[string]interface{}) *argReader {
	req := mcpgo.CallToolRequest{}
	req.Params.Arguments = args
	return newArgReader(req)
}

func TestOptString(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want *string
	}{
		{
			name: "absent means omit",
			args: map[string]interface{}{},
			want: nil,
		},
		{
			name: "explicit null means clear",
			args: map[string]interface{}{"due": nil},
			want: strPtr(""),
		},
		{
			name: "empty string is a value",
			args: map[string]interface{}{"due": ""},
			want: strPtr(""),
		},
		{
			name: "value passes through verbatim",
			args: map[string]interface{}{"due": "2024-12-31T12:00:00.000Z"},
			want: strPtr("2024-12-31T12:00:00.000Z"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := readerWithArgs(tt.args)
			got := reader.optString("due")
			if err := reader.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected %v, got %v", describePtr(tt.want), describePtr(got))
			}
			if got != nil && *got != *tt.want {
				t.Errorf("expected %q, got %q", *tt.want, *got)
			}
		})
	}
}

func TestOptBool(t *testing.T) {
	reader := readerWithArgs(map[string]interface{}{})
	if got := reader.optBool("closed"); got != nil {
		t.Errorf("expected nil for absent argument, got %v", *got)
	}
	reader = readerWithArgs(map[string]interface{}{"closed": nil})
	if got := reader.optBool("closed"); got != nil {
		t.Errorf("expected nil for null argument, got %v", *got)
	}
	reader = readerWithArgs(map[string]interface{}{"closed": true})
	got := reader.optBool("closed")
	if got == nil || !*got {
		t.Errorf("expected true, got %v", describePtr(got))
	}
	if err := reader.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOptInt(t *testing.T) {
	reader := readerWithArgs(map[string]interface{}{})
	if got := reader.optInt("limit"); got != nil {
		t.Errorf("expected nil for absent argument, got %v", *got)
	}
	// JSON numbers decode as float64.
	reader = readerWithArgs(map[string]interface{}{"limit": 50.0})
	got := reader.optInt("limit")
	if got == nil || *got != 50 {
		t.Errorf("expected 50, got %v", describePtr(got))
	}
	if err := reader.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOptIDList(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want []string
	}{
		{
			name: "absent means omit",
			args: map[string]interface{}{},
			want: nil,
		},
		{
			name: "null means clear",
			args: map[string]interface{}{"memberIds": nil},
			want: []string{},
		},
		{
			name: "empty string means clear",
			args: map[string]interface{}{"memberIds": ""},
			want: []string{},
		},
		{
			name: "single id",
			args: map[string]interface{}{"memberIds": "m1"},
			want: []string{"m1"},
		},
		{
			name: "comma separated with whitespace",
			args: map[string]interface{}{"memberIds": " m1, m2 ,m3 "},
			want: []string{"m1", "m2", "m3"},
		},
		{
			name: "trailing comma dropped",
			args: map[string]interface{}{"memberIds": "m1,m2,"},
			want: []string{"m1", "m2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := readerWithArgs(tt.args)
			got := reader.optIDList("memberIds")
			if err := reader.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestArgReaderRejectsMistypedArguments(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		read func(*argReader)
	}{
		{
			name: "number for a string argument",
			args: map[string]interface{}{"due": 42.0},
			read: func(a *argReader) { a.optString("due") },
		},
		{
			name: "string for a boolean argument",
			args: map[string]interface{}{"closed": "true"},
			read: func(a *argReader) { a.optBool("closed") },
		},
		{
			name: "string for a number argument",
			args: map[string]interface{}{"limit": "50"},
			read: func(a *argReader) { a.optInt("limit") },
		},
		{
			name: "array for an id list argument",
			args: map[string]interface{}{"memberIds": []interface{}{"m1"}},
			read: func(a *argReader) { a.optIDList("memberIds") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := readerWithArgs(tt.args)
			tt.read(reader)
			if reader.Err() == nil {
				t.Fatal("expected a type error")
			}
		})
	}
}

func TestArgReaderKeepsFirstError(t *testing.T) {
	reader := readerWithArgs(map[string]interface{}{
		"name":   12.0,
		"closed": "yes",
	})
	reader.optString("name")
	first := reader.Err()
	reader.optBool("closed")

	if first == nil {
		t.Fatal("expected a type error")
	}
	if reader.Err() != first {
		t.Error("expected the first error to be kept")
	}
}

func strPtr(s string) *string { return &s }

func describePtr(p interface{}) string {
	v := reflect.ValueOf(p)
	if v.IsNil() {
		return "nil"
	}
	return "non-nil"
}
