package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func (s *Server) registerSearchTools() {
	s.addTool("search", "Free-text search across boards, cards, members and workspaces",
		[]mcpgo.ToolOption{
			mcpgo.WithString("query", mcpgo.Required(), mcpgo.Description("Search query")),
			mcpgo.WithString("modelTypes",
				mcpgo.Description("Comma-separated model types to search (boards, cards, members, organizations); default all")),
			mcpgo.WithNumber("boardsLimit", mcpgo.Description("Maximum number of board matches")),
			mcpgo.WithNumber("cardsLimit", mcpgo.Description("Maximum number of card matches")),
			mcpgo.WithBoolean("partial", mcpgo.Description("Match word prefixes instead of exact words")),
			mcpgo.WithString("boardIds", mcpgo.Description("Comma-separated board identifiers to restrict the search to")),
			mcpgo.WithString("organizationIds", mcpgo.Description("Comma-separated workspace identifiers to restrict the search to")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			query, err := req.RequireString("query")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			opts := &trello.SearchOptions{
				ModelTypes:      args.optIDList("modelTypes"),
				BoardsLimit:     args.optInt("boardsLimit"),
				CardsLimit:      args.optInt("cardsLimit"),
				Partial:         args.optBool("partial"),
				IDBoards:        args.optIDList("boardIds"),
				IDOrganizations: args.optIDList("organizationIds"),
			}
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			result, err := client.Search(ctx, query, opts)
			if err != nil {
				return nil, err
			}
			return readResult(req, result, "searchResult")
		})
}
