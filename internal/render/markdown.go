package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

// noItemsMessage is returned for any empty collection instead of an empty
// table.
const noItemsMessage = "_No items found._"

// maxGenericColumns caps the width of the fallback table for entity kinds
// without a dedicated layout.
const maxGenericColumns = 5

// renderMarkdown picks a layout by the concrete result type, falling back
// to a generic table for unknown lists and a key/value block for unknown
// single objects. The kind tag names the heading of fallback output.
func renderMarkdown(v interface{}, kind string) (string, error) {
	switch val := v.(type) {
	case nil:
		return noItemsMessage, nil
	case []trello.Board:
		return renderBoards(val), nil
	case []trello.List:
		return renderLists(val), nil
	case []trello.Card:
		return renderCards(val), nil
	case []trello.Label:
		return renderLabels(val), nil
	case []trello.Member:
		return renderMembers(val), nil
	case []trello.Organization:
		return renderOrganizations(val), nil
	case []trello.Checklist:
		return renderChecklists(val), nil
	case *trello.Checklist:
		if val == nil {
			return noItemsMessage, nil
		}
		return renderChecklists([]trello.Checklist{*val}), nil
	default:
		return renderGeneric(v, kind)
	}
}

func renderBoards(boards []trello.Board) string {
	if len(boards) == 0 {
		return noItemsMessage
	}
	var b strings.Builder
	b.WriteString("| Name | ID | Status | URL |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, board := range boards {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escapeCell(board.Name), board.ID, statusWord(board.Closed), escapeCell(board.ShortURL))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderLists(lists []trello.List) string {
	if len(lists) == 0 {
		return noItemsMessage
	}
	var b strings.Builder
	b.WriteString("| Name | ID | Status |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, list := range lists {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			escapeCell(list.Name), list.ID, statusWord(list.Closed))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCards(cards []trello.Card) string {
	if len(cards) == 0 {
		return noItemsMessage
	}
	var b strings.Builder
	b.WriteString("| Name | ID | List | Due | Status |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, card := range cards {
		due := ""
		if card.Due != nil {
			due = *card.Due
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			escapeCell(card.Name), card.ID, card.IDList, escapeCell(due), statusWord(card.Closed))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderLabels(labels []trello.Label) string {
	if len(labels) == 0 {
		return noItemsMessage
	}
	var b strings.Builder
	b.WriteString("| Name | ID | Color |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, label := range labels {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			escapeCell(label.Name), label.ID, label.Color)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderMembers(members []trello.Member) string {
	if len(members) == 0 {
		return noItemsMessage
	}
	var b strings.Builder
	b.WriteString("| Username | Full Name | ID |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, member := range members {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			escapeCell(member.Username), escapeCell(member.FullName), member.ID)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderOrganizations(orgs []trello.Organization) string {
	if len(orgs) == 0 {
		return noItemsMessage
	}
	var b strings.Builder
	b.WriteString("| Display Name | Name | ID |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, org := range orgs {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			escapeCell(org.DisplayName), escapeCell(org.Name), org.ID)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderChecklists renders each checklist as a checkbox list under a
// heading carrying the completed/total count.
func renderChecklists(checklists []trello.Checklist) string {
	if len(checklists) == 0 {
		return noItemsMessage
	}
	var b strings.Builder
	for i, checklist := range checklists {
		if i > 0 {
			b.WriteString("\n\n")
		}
		completed := 0
		for _, item := range checklist.CheckItems {
			if item.State == trello.CheckItemComplete {
				completed++
			}
		}
		fmt.Fprintf(&b, "### %s (%d/%d)", escapeCell(checklist.Name), completed, len(checklist.CheckItems))
		for _, item := range checklist.CheckItems {
			mark := " "
			if item.State == trello.CheckItemComplete {
				mark = "x"
			}
			fmt.Fprintf(&b, "\n- [%s] %s", mark, escapeCell(item.Name))
		}
	}
	return b.String()
}

// renderGeneric handles entity kinds without a dedicated layout by
// round-tripping through JSON: lists become a table capped at five
// columns, single objects a flat key/value block.
func renderGeneric(v interface{}, kind string) (string, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s result: %w", kind, err)
	}

	var asList []map[string]interface{}
	if err := json.Unmarshal(encoded, &asList); err == nil {
		return renderGenericTable(asList), nil
	}

	var asObject map[string]interface{}
	if err := json.Unmarshal(encoded, &asObject); err == nil {
		return renderKeyValue(asObject), nil
	}

	// Scalar or otherwise unshaped value; show it as-is.
	return strings.Trim(string(encoded), `"`), nil
}

func renderGenericTable(rows []map[string]interface{}) string {
	if len(rows) == 0 {
		return noItemsMessage
	}

	columns := genericColumns(rows)
	var b strings.Builder
	b.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(columns)) + "\n")
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = escapeCell(cellString(row[col]))
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// genericColumns picks up to maxGenericColumns keys, preferring the
// identifying ones so name/id always survive the cap.
func genericColumns(rows []map[string]interface{}) []string {
	seen := map[string]bool{}
	var keys []string
	for _, row := range rows {
		for key := range row {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	sort.Strings(keys)

	preferred := []string{"name", "id"}
	var columns []string
	for _, p := range preferred {
		if seen[p] {
			columns = append(columns, p)
		}
	}
	for _, key := range keys {
		if len(columns) >= maxGenericColumns {
			break
		}
		if key == "name" || key == "id" {
			continue
		}
		columns = append(columns, key)
	}
	return columns
}

func renderKeyValue(obj map[string]interface{}) string {
	if len(obj) == 0 {
		return noItemsMessage
	}
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteString("\n")
		}
		value := obj[key]
		switch value.(type) {
		case map[string]interface{}, []interface{}:
			// Nested values render as embedded formatted blocks.
			nested, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				nested = []byte(fmt.Sprintf("%v", value))
			}
			fmt.Fprintf(&b, "**%s**:\n```json\n%s\n```", key, nested)
		default:
			fmt.Fprintf(&b, "**%s**: %s", key, escapeCell(cellString(value)))
		}
	}
	return b.String()
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; print integers without the
		// trailing .0 noise.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(encoded)
	}
}

// escapeCell neutralizes characters that would break table layout: pipes
// become escaped pipes and line breaks collapse to <br>.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	s = strings.ReplaceAll(s, "\n", "<br>")
	s = strings.ReplaceAll(s, "\r", "<br>")
	return s
}

func statusWord(closed bool) string {
	if closed {
		return "closed"
	}
	return "open"
}
