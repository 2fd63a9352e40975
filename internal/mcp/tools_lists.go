package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func (s *Server) registerListTools() {
	s.addTool("get_list", "Get a list by its identifier",
		[]mcpgo.ToolOption{
			mcpgo.WithString("listId", mcpgo.Required(), mcpgo.Description("List identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			listID, err := req.RequireString("listId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			list, err := client.GetList(ctx, listID)
			if err != nil {
				return nil, err
			}
			return readResult(req, list, "list")
		})

	s.addTool("create_list", "Create a new list on a board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board to create the list on")),
			mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("List name")),
			mcpgo.WithString("position", mcpgo.Description("Position: top, bottom, or a numeric rank")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			name, err := req.RequireString("name")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			list, err := client.CreateList(ctx, boardID, name, req.GetString("position", ""))
			if err != nil {
				return nil, err
			}
			return mutationResult("list", "List created", list)
		})

	s.addTool("update_list", "Update any subset of a list's mutable fields",
		[]mcpgo.ToolOption{
			mcpgo.WithString("listId", mcpgo.Required(), mcpgo.Description("List identifier")),
			mcpgo.WithString("name", mcpgo.Description("New list name")),
			mcpgo.WithBoolean("closed", mcpgo.Description("Close or reopen the list")),
			mcpgo.WithString("position", mcpgo.Description("Position: top, bottom, or a numeric rank")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			listID, err := req.RequireString("listId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			upd := &trello.ListUpdate{
				Name:   args.optString("name"),
				Closed: args.optBool("closed"),
				Pos:    args.optString("position"),
			}
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			list, err := client.UpdateList(ctx, listID, upd)
			if err != nil {
				return nil, err
			}
			return mutationResult("list", "List updated", list)
		})

	s.addTool("archive_list", "Archive (close) a list",
		[]mcpgo.ToolOption{
			mcpgo.WithString("listId", mcpgo.Required(), mcpgo.Description("List identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			listID, err := req.RequireString("listId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			list, err := client.ArchiveList(ctx, listID)
			if err != nil {
				return nil, err
			}
			return mutationResult("list", "List archived", list)
		})

	s.addTool("unarchive_list", "Reopen an archived list",
		[]mcpgo.ToolOption{
			mcpgo.WithString("listId", mcpgo.Required(), mcpgo.Description("List identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			listID, err := req.RequireString("listId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			list, err := client.UnarchiveList(ctx, listID)
			if err != nil {
				return nil, err
			}
			return mutationResult("list", "List unarchived", list)
		})

	s.addTool("move_list_to_board", "Move a list onto another board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("listId", mcpgo.Required(), mcpgo.Description("List identifier")),
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Destination board identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			listID, err := req.RequireString("listId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			list, err := client.MoveListToBoard(ctx, listID, boardID)
			if err != nil {
				return nil, err
			}
			return mutationResult("list", "List moved", list)
		})

	s.addTool("get_list_cards", "List the cards in a list",
		[]mcpgo.ToolOption{
			mcpgo.WithString("listId", mcpgo.Required(), mcpgo.Description("List identifier")),
			mcpgo.WithString("filter",
				mcpgo.Description("Filter cards by status (default: open)"),
				mcpgo.Enum("all", "open", "closed")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			listID, err := req.RequireString("listId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			cards, err := client.GetListCards(ctx, listID, trello.Filter(req.GetString("filter", "")))
			if err != nil {
				return nil, err
			}
			return readResult(req, cards, "cards")
		})
}
