package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func (s *Server) registerLabelTools() {
	s.addTool("get_label", "Get a label by its identifier",
		[]mcpgo.ToolOption{
			mcpgo.WithString("labelId", mcpgo.Required(), mcpgo.Description("Label identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			labelID, err := req.RequireString("labelId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			label, err := client.GetLabel(ctx, labelID)
			if err != nil {
				return nil, err
			}
			return readResult(req, label, "label")
		})

	s.addTool("create_label", "Create a label on a board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board to create the label on")),
			mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Label name")),
			mcpgo.WithString("color", mcpgo.Required(),
				mcpgo.Description("Label color; \"null\" for a colorless label"),
				mcpgo.Enum("green", "yellow", "orange", "red", "purple", "blue", "sky", "lime", "pink", "black", "null")),
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
			color, err := req.RequireString("color")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			label, err := client.CreateLabel(ctx, boardID, name, color)
			if err != nil {
				return nil, err
			}
			return mutationResult("label", "Label created", label)
		})

	s.addTool("update_label", "Rename or recolor a label",
		[]mcpgo.ToolOption{
			mcpgo.WithString("labelId", mcpgo.Required(), mcpgo.Description("Label identifier")),
			mcpgo.WithString("name", mcpgo.Description("New label name")),
			mcpgo.WithString("color",
				mcpgo.Description("New label color"),
				mcpgo.Enum("green", "yellow", "orange", "red", "purple", "blue", "sky", "lime", "pink", "black", "null")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			labelID, err := req.RequireString("labelId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			name, color := args.optString("name"), args.optString("color")
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			label, err := client.UpdateLabel(ctx, labelID, name, color)
			if err != nil {
				return nil, err
			}
			return mutationResult("label", "Label updated", label)
		})

	s.addTool("delete_label", "Delete a label from its board and all cards",
		[]mcpgo.ToolOption{
			mcpgo.WithString("labelId", mcpgo.Required(), mcpgo.Description("Label identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			labelID, err := req.RequireString("labelId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.DeleteLabel(ctx, labelID); err != nil {
				return nil, err
			}
			return mutationResult("", "Label deleted", nil)
		})
}
