package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func (s *Server) registerMemberTools() {
	s.addTool("get_me", "Get the member the supplied token belongs to",
		nil,
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			member, err := client.GetMe(ctx)
			if err != nil {
				return nil, err
			}
			return readResult(req, member, "member")
		})

	s.addTool("get_member", "Get a member by identifier or username",
		[]mcpgo.ToolOption{
			mcpgo.WithString("memberId", mcpgo.Required(), mcpgo.Description("Member identifier or username")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			memberID, err := req.RequireString("memberId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			member, err := client.GetMember(ctx, memberID)
			if err != nil {
				return nil, err
			}
			return readResult(req, member, "member")
		})

	s.addTool("get_member_boards", "List a member's boards",
		[]mcpgo.ToolOption{
			mcpgo.WithString("memberId", mcpgo.Required(), mcpgo.Description("Member identifier or username")),
			mcpgo.WithString("filter",
				mcpgo.Description("Filter boards by status (default: open)"),
				mcpgo.Enum("all", "open", "closed")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			memberID, err := req.RequireString("memberId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			boards, err := client.GetMemberBoards(ctx, memberID, trello.Filter(req.GetString("filter", "")))
			if err != nil {
				return nil, err
			}
			return readResult(req, boards, "boards")
		})

	s.addTool("get_member_cards", "List the cards assigned to a member",
		[]mcpgo.ToolOption{
			mcpgo.WithString("memberId", mcpgo.Required(), mcpgo.Description("Member identifier or username")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			memberID, err := req.RequireString("memberId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			cards, err := client.GetMemberCards(ctx, memberID)
			if err != nil {
				return nil, err
			}
			return readResult(req, cards, "cards")
		})

	s.addTool("get_member_organizations", "List the workspaces a member belongs to",
		[]mcpgo.ToolOption{
			mcpgo.WithString("memberId", mcpgo.Required(), mcpgo.Description("Member identifier or username")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			memberID, err := req.RequireString("memberId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			orgs, err := client.GetMemberOrganizations(ctx, memberID)
			if err != nil {
				return nil, err
			}
			return readResult(req, orgs, "organizations")
		})

	s.addTool("search_members", "Search members by name fragment",
		[]mcpgo.ToolOption{
			mcpgo.WithString("query", mcpgo.Required(), mcpgo.Description("Name fragment to search for")),
			mcpgo.WithNumber("limit", mcpgo.Description("Number of members to return (1-20, default 8)")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			query, err := req.RequireString("query")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			members, err := client.SearchMembers(ctx, query, int(req.GetFloat("limit", 0)))
			if err != nil {
				return nil, err
			}
			return readResult(req, members, "members")
		})
}
