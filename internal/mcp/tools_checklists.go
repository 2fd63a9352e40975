package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func (s *Server) registerChecklistTools() {
	s.addTool("get_checklist", "Get a checklist with its items",
		[]mcpgo.ToolOption{
			mcpgo.WithString("checklistId", mcpgo.Required(), mcpgo.Description("Checklist identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			checklistID, err := req.RequireString("checklistId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			checklist, err := client.GetChecklist(ctx, checklistID)
			if err != nil {
				return nil, err
			}
			return readResult(req, checklist, "checklist")
		})

	s.addTool("create_checklist", "Create a checklist on a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card to create the checklist on")),
			mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Checklist name")),
			mcpgo.WithString("position", mcpgo.Description("Position: top, bottom, or a numeric rank")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			name, err := req.RequireString("name")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			checklist, err := client.CreateChecklist(ctx, cardID, name, req.GetString("position", ""))
			if err != nil {
				return nil, err
			}
			return mutationResult("checklist", "Checklist created", checklist)
		})

	s.addTool("update_checklist", "Rename or reposition a checklist",
		[]mcpgo.ToolOption{
			mcpgo.WithString("checklistId", mcpgo.Required(), mcpgo.Description("Checklist identifier")),
			mcpgo.WithString("name", mcpgo.Description("New checklist name")),
			mcpgo.WithString("position", mcpgo.Description("Position: top, bottom, or a numeric rank")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			checklistID, err := req.RequireString("checklistId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			name, pos := args.optString("name"), args.optString("position")
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			checklist, err := client.UpdateChecklist(ctx, checklistID, name, pos)
			if err != nil {
				return nil, err
			}
			return mutationResult("checklist", "Checklist updated", checklist)
		})

	s.addTool("delete_checklist", "Remove a checklist from its card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("checklistId", mcpgo.Required(), mcpgo.Description("Checklist identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			checklistID, err := req.RequireString("checklistId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.DeleteChecklist(ctx, checklistID); err != nil {
				return nil, err
			}
			return mutationResult("", "Checklist deleted", nil)
		})

	s.addTool("get_checklist_items", "List the items of a checklist in order",
		[]mcpgo.ToolOption{
			mcpgo.WithString("checklistId", mcpgo.Required(), mcpgo.Description("Checklist identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			checklistID, err := req.RequireString("checklistId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			items, err := client.GetCheckItems(ctx, checklistID)
			if err != nil {
				return nil, err
			}
			return readResult(req, items, "checkItems")
		})

	s.addTool("add_checklist_item", "Append an item to a checklist",
		[]mcpgo.ToolOption{
			mcpgo.WithString("checklistId", mcpgo.Required(), mcpgo.Description("Checklist identifier")),
			mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Item text")),
			mcpgo.WithBoolean("checked", mcpgo.Description("Mark the item complete on creation")),
			mcpgo.WithString("position", mcpgo.Description("Position: top, bottom, or a numeric rank")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			checklistID, err := req.RequireString("checklistId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			name, err := req.RequireString("name")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			item, err := client.AddCheckItem(ctx, checklistID, name, req.GetBool("checked", false), req.GetString("position", ""))
			if err != nil {
				return nil, err
			}
			return mutationResult("checkItem", "Checklist item added", item)
		})

	s.addTool("update_checklist_item", "Update a checklist item's name, state or position",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card the checklist belongs to")),
			mcpgo.WithString("checkItemId", mcpgo.Required(), mcpgo.Description("Checklist item identifier")),
			mcpgo.WithString("name", mcpgo.Description("New item text")),
			mcpgo.WithString("state",
				mcpgo.Description("New item state"),
				mcpgo.Enum("complete", "incomplete")),
			mcpgo.WithString("position", mcpgo.Description("Position: top, bottom, or a numeric rank")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			checkItemID, err := req.RequireString("checkItemId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			upd := &trello.CheckItemUpdate{
				Name:  args.optString("name"),
				State: args.optString("state"),
				Pos:   args.optString("position"),
			}
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			item, err := client.UpdateCheckItem(ctx, cardID, checkItemID, upd)
			if err != nil {
				return nil, err
			}
			return mutationResult("checkItem", "Checklist item updated", item)
		})

	s.addTool("delete_checklist_item", "Remove an item from a checklist",
		[]mcpgo.ToolOption{
			mcpgo.WithString("checklistId", mcpgo.Required(), mcpgo.Description("Checklist identifier")),
			mcpgo.WithString("checkItemId", mcpgo.Required(), mcpgo.Description("Checklist item identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			checklistID, err := req.RequireString("checklistId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			checkItemID, err := req.RequireString("checkItemId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.DeleteCheckItem(ctx, checklistID, checkItemID); err != nil {
				return nil, err
			}
			return mutationResult("", "Checklist item deleted", nil)
		})
}
