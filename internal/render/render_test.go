package render

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		token   string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{"markdown", FormatMarkdown, false},
		{"html", "", true},
		{"JSON", "", true},
	}

	for _, tt := range tests {
		t.Run("token "+tt.token, func(t *testing.T) {
			got, err := ParseFormat(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for token %q", tt.token)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestJSONRenderingIsLossless(t *testing.T) {
	url1 := "2024-05-01T10:00:00.000Z"
	boards := []trello.Board{
		{ID: "b1", Name: "Roadmap", Closed: false, ShortURL: "https://trello.com/b/b1", DateLastActivity: &url1},
		{ID: "b2", Name: "Archive", Closed: true},
	}

	out, err := Render(boards, "boards", FormatJSON)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var decoded []trello.Board
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(boards, decoded) {
		t.Errorf("JSON round trip changed the data:\nin:  %+v\nout: %+v", boards, decoded)
	}
}

func TestMarkdownBoardsTable(t *testing.T) {
	boards := []trello.Board{
		{ID: "b1", Name: "First"},
		{ID: "b2", Name: "Second", Closed: true},
		{ID: "b3", Name: "Third"},
	}

	out, err := Render(boards, "boards", FormatMarkdown)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Every entity's name and identifier must appear, in input order.
	lastIndex := -1
	for _, board := range boards {
		nameIdx := strings.Index(out, board.Name)
		if nameIdx < 0 {
			t.Fatalf("board name %q missing from output:\n%s", board.Name, out)
		}
		if !strings.Contains(out, board.ID) {
			t.Fatalf("board id %q missing from output:\n%s", board.ID, out)
		}
		if nameIdx < lastIndex {
			t.Errorf("board %q out of input order", board.Name)
		}
		lastIndex = nameIdx
	}

	if !strings.Contains(out, "closed") {
		t.Errorf("expected closed status for archived board:\n%s", out)
	}
}

func TestMarkdownEmptyCollections(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		kind string
	}{
		{"boards", []trello.Board{}, "boards"},
		{"lists", []trello.List{}, "lists"},
		{"cards", []trello.Card{}, "cards"},
		{"labels", []trello.Label{}, "labels"},
		{"members", []trello.Member{}, "members"},
		{"organizations", []trello.Organization{}, "organizations"},
		{"checklists", []trello.Checklist{}, "checklists"},
		{"generic list", []trello.Webhook{}, "webhooks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(tt.v, tt.kind, FormatMarkdown)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if out != noItemsMessage {
				t.Errorf("expected no-items message, got:\n%s", out)
			}
			if strings.Contains(out, "|") {
				t.Errorf("empty collection must not render a table:\n%s", out)
			}
		})
	}
}

func TestMarkdownCellEscaping(t *testing.T) {
	cards := []trello.Card{
		{ID: "c1", Name: "Fix a | b\nregression"},
	}

	out, err := Render(cards, "cards", FormatMarkdown)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, `Fix a \| b<br>regression`) {
		t.Errorf("cell content not escaped:\n%s", out)
	}
}

func TestChecklistRendering(t *testing.T) {
	checklist := &trello.Checklist{
		ID:   "cl1",
		Name: "Release steps",
		CheckItems: []trello.CheckItem{
			{ID: "i1", Name: "Tag the build", State: "complete"},
			{ID: "i2", Name: "Write changelog", State: "incomplete"},
			{ID: "i3", Name: "Announce", State: "complete"},
		},
	}

	out, err := Render(checklist, "checklist", FormatMarkdown)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(out, "Release steps (2/3)") {
		t.Errorf("expected completed/total heading, got:\n%s", out)
	}
	if !strings.Contains(out, "- [x] Tag the build") {
		t.Errorf("expected checked entry for complete item:\n%s", out)
	}
	if !strings.Contains(out, "- [ ] Write changelog") {
		t.Errorf("expected unchecked entry for incomplete item:\n%s", out)
	}
	if !strings.Contains(out, "- [x] Announce") {
		t.Errorf("expected checked entry for complete item:\n%s", out)
	}
}

func TestGenericTableCappedAtFiveColumns(t *testing.T) {
	webhooks := []trello.Webhook{
		{ID: "w1", Description: "sync", IDModel: "b1", CallbackURL: "https://example.com/hook", Active: true, ConsecutiveFailures: 2},
	}

	out, err := Render(webhooks, "webhooks", FormatMarkdown)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	header := strings.SplitN(out, "\n", 2)[0]
	columns := strings.Count(header, "|") - 1
	if columns > 5 {
		t.Errorf("expected at most 5 columns, got %d:\n%s", columns, header)
	}
	if !strings.Contains(header, "id") {
		t.Errorf("identifier column must survive the cap:\n%s", header)
	}
}

func TestSingleObjectKeyValueFallback(t *testing.T) {
	webhook := trello.Webhook{
		ID:          "w1",
		Description: "board sync",
		IDModel:     "b1",
		CallbackURL: "https://example.com/hook",
		Active:      true,
	}

	out, err := Render(webhook, "webhook", FormatMarkdown)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "**id**: w1") {
		t.Errorf("expected key/value line for id:\n%s", out)
	}
	if !strings.Contains(out, "**active**: true") {
		t.Errorf("expected key/value line for active:\n%s", out)
	}
}

func TestNestedObjectsRenderAsEmbeddedBlocks(t *testing.T) {
	board := trello.Board{
		ID:    "b1",
		Name:  "Roadmap",
		Prefs: &trello.BoardPrefs{PermissionLevel: "org"},
	}

	// A single board has no dedicated layout; it falls back to key/value
	// with the prefs object embedded as a formatted block.
	out, err := Render(board, "board", FormatMarkdown)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "```json") {
		t.Errorf("expected embedded block for nested object:\n%s", out)
	}
	if !strings.Contains(out, "permissionLevel") {
		t.Errorf("nested fields missing:\n%s", out)
	}
}
