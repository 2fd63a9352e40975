package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func (s *Server) registerBoardTools() {
	s.addTool("list_boards", "List the boards of the authenticated member",
		[]mcpgo.ToolOption{
			mcpgo.WithString("filter",
				mcpgo.Description("Filter boards by status (default: open)"),
				mcpgo.Enum("all", "open", "closed")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boards, err := client.ListMyBoards(ctx, trello.Filter(req.GetString("filter", "")))
			if err != nil {
				return nil, err
			}
			return readResult(req, boards, "boards")
		})

	s.addTool("get_board", "Get a board by its identifier",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			board, err := client.GetBoard(ctx, boardID)
			if err != nil {
				return nil, err
			}
			return readResult(req, board, "board")
		})

	s.addTool("create_board", "Create a new board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Board name")),
			mcpgo.WithString("description", mcpgo.Description("Board description")),
			mcpgo.WithString("organizationId", mcpgo.Description("Workspace to create the board in")),
			mcpgo.WithBoolean("defaultLists", mcpgo.Description("Seed the board with To Do / Doing / Done lists")),
			mcpgo.WithString("permissionLevel",
				mcpgo.Description("Board visibility"),
				mcpgo.Enum("private", "org", "public")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			name, err := req.RequireString("name")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			opts := &trello.CreateBoardOptions{
				Desc:            args.optString("description"),
				IDOrganization:  args.optString("organizationId"),
				DefaultLists:    args.optBool("defaultLists"),
				PermissionLevel: args.optString("permissionLevel"),
			}
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			board, err := client.CreateBoard(ctx, name, opts)
			if err != nil {
				return nil, err
			}
			return mutationResult("board", "Board created", board)
		})

	s.addTool("update_board", "Update any subset of a board's mutable fields",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
			mcpgo.WithString("name", mcpgo.Description("New board name")),
			mcpgo.WithString("description", mcpgo.Description("New description; null clears it")),
			mcpgo.WithBoolean("closed", mcpgo.Description("Close or reopen the board")),
			mcpgo.WithString("organizationId", mcpgo.Description("Move the board to another workspace")),
			mcpgo.WithString("permissionLevel",
				mcpgo.Description("Board visibility"),
				mcpgo.Enum("private", "org", "public")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			upd := &trello.BoardUpdate{
				Name:            args.optString("name"),
				Desc:            args.optString("description"),
				Closed:          args.optBool("closed"),
				IDOrganization:  args.optString("organizationId"),
				PermissionLevel: args.optString("permissionLevel"),
			}
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			board, err := client.UpdateBoard(ctx, boardID, upd)
			if err != nil {
				return nil, err
			}
			return mutationResult("board", "Board updated", board)
		})

	s.addTool("delete_board", "Permanently delete a board (cannot be undone)",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.DeleteBoard(ctx, boardID); err != nil {
				return nil, err
			}
			return mutationResult("", "Board deleted", nil)
		})

	s.addTool("archive_board", "Archive (close) a board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			board, err := client.ArchiveBoard(ctx, boardID)
			if err != nil {
				return nil, err
			}
			return mutationResult("board", "Board archived", board)
		})

	s.addTool("unarchive_board", "Reopen an archived board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			board, err := client.UnarchiveBoard(ctx, boardID)
			if err != nil {
				return nil, err
			}
			return mutationResult("board", "Board unarchived", board)
		})

	s.addTool("get_board_lists", "List the lists on a board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
			mcpgo.WithString("filter",
				mcpgo.Description("Filter lists by status (default: open)"),
				mcpgo.Enum("all", "open", "closed")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			lists, err := client.GetBoardLists(ctx, boardID, trello.Filter(req.GetString("filter", "")))
			if err != nil {
				return nil, err
			}
			return readResult(req, lists, "lists")
		})

	s.addTool("get_board_cards", "List the cards on a board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
			mcpgo.WithString("filter",
				mcpgo.Description("Filter cards by status (default: open)"),
				mcpgo.Enum("all", "open", "closed")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			cards, err := client.GetBoardCards(ctx, boardID, trello.Filter(req.GetString("filter", "")))
			if err != nil {
				return nil, err
			}
			return readResult(req, cards, "cards")
		})

	s.addTool("get_board_labels", "List the labels defined on a board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			labels, err := client.GetBoardLabels(ctx, boardID)
			if err != nil {
				return nil, err
			}
			return readResult(req, labels, "labels")
		})

	s.addTool("get_board_members", "List the members of a board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			members, err := client.GetBoardMembers(ctx, boardID)
			if err != nil {
				return nil, err
			}
			return readResult(req, members, "members")
		})

	s.addTool("add_board_member", "Invite a member to a board by email",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
			mcpgo.WithString("email", mcpgo.Required(), mcpgo.Description("Email address of the member to invite")),
			mcpgo.WithString("memberType",
				mcpgo.Description("Membership level (default: normal)"),
				mcpgo.Enum("normal", "admin", "observer")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			email, err := req.RequireString("email")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.AddBoardMember(ctx, boardID, email, req.GetString("memberType", "")); err != nil {
				return nil, err
			}
			return mutationResult("", "Member added to board", nil)
		})

	s.addTool("remove_board_member", "Remove a member from a board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
			mcpgo.WithString("memberId", mcpgo.Required(), mcpgo.Description("Member identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			memberID, err := req.RequireString("memberId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.RemoveBoardMember(ctx, boardID, memberID); err != nil {
				return nil, err
			}
			return mutationResult("", "Member removed from board", nil)
		})

	s.addTool("get_board_actions", "Get a board's activity history",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
			mcpgo.WithNumber("limit", mcpgo.Description("Number of actions to return (1-1000)")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			actions, err := client.GetBoardActions(ctx, boardID, int(req.GetFloat("limit", 0)))
			if err != nil {
				return nil, err
			}
			return readResult(req, actions, "actions")
		})

	s.addTool("get_board_custom_fields", "List the custom field definitions on a board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			boardID, err := req.RequireString("boardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			fields, err := client.GetBoardCustomFields(ctx, boardID)
			if err != nil {
				return nil, err
			}
			return readResult(req, fields, "customFields")
		})
}
