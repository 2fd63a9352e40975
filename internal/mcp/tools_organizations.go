package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func (s *Server) registerOrganizationTools() {
	s.addTool("get_organization", "Get a workspace by identifier or short name",
		[]mcpgo.ToolOption{
			mcpgo.WithString("organizationId", mcpgo.Required(), mcpgo.Description("Workspace identifier or short name")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			orgID, err := req.RequireString("organizationId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			org, err := client.GetOrganization(ctx, orgID)
			if err != nil {
				return nil, err
			}
			return readResult(req, org, "organization")
		})

	s.addTool("create_organization", "Create a new workspace",
		[]mcpgo.ToolOption{
			mcpgo.WithString("displayName", mcpgo.Required(), mcpgo.Description("Workspace display name")),
			mcpgo.WithString("description", mcpgo.Description("Workspace description")),
			mcpgo.WithString("name", mcpgo.Description("Short name used in URLs")),
			mcpgo.WithString("website", mcpgo.Description("Workspace website URL")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			displayName, err := req.RequireString("displayName")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			desc, name, website := args.optString("description"), args.optString("name"), args.optString("website")
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			org, err := client.CreateOrganization(ctx, displayName, desc, name, website)
			if err != nil {
				return nil, err
			}
			return mutationResult("organization", "Workspace created", org)
		})

	s.addTool("update_organization", "Update any subset of a workspace's mutable fields",
		[]mcpgo.ToolOption{
			mcpgo.WithString("organizationId", mcpgo.Required(), mcpgo.Description("Workspace identifier")),
			mcpgo.WithString("displayName", mcpgo.Description("New display name")),
			mcpgo.WithString("description", mcpgo.Description("New description; null clears it")),
			mcpgo.WithString("name", mcpgo.Description("New short name")),
			mcpgo.WithString("website", mcpgo.Description("New website URL; null clears it")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			orgID, err := req.RequireString("organizationId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			upd := &trello.OrganizationUpdate{
				DisplayName: args.optString("displayName"),
				Desc:        args.optString("description"),
				Name:        args.optString("name"),
				Website:     args.optString("website"),
			}
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			org, err := client.UpdateOrganization(ctx, orgID, upd)
			if err != nil {
				return nil, err
			}
			return mutationResult("organization", "Workspace updated", org)
		})

	s.addTool("delete_organization", "Permanently delete a workspace (cannot be undone)",
		[]mcpgo.ToolOption{
			mcpgo.WithString("organizationId", mcpgo.Required(), mcpgo.Description("Workspace identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			orgID, err := req.RequireString("organizationId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.DeleteOrganization(ctx, orgID); err != nil {
				return nil, err
			}
			return mutationResult("", "Workspace deleted", nil)
		})

	s.addTool("get_organization_boards", "List the boards in a workspace",
		[]mcpgo.ToolOption{
			mcpgo.WithString("organizationId", mcpgo.Required(), mcpgo.Description("Workspace identifier")),
			mcpgo.WithString("filter",
				mcpgo.Description("Filter boards by status (default: open)"),
				mcpgo.Enum("all", "open", "closed")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			orgID, err := req.RequireString("organizationId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			boards, err := client.GetOrganizationBoards(ctx, orgID, trello.Filter(req.GetString("filter", "")))
			if err != nil {
				return nil, err
			}
			return readResult(req, boards, "boards")
		})

	s.addTool("get_organization_members", "List the members of a workspace",
		[]mcpgo.ToolOption{
			mcpgo.WithString("organizationId", mcpgo.Required(), mcpgo.Description("Workspace identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			orgID, err := req.RequireString("organizationId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			members, err := client.GetOrganizationMembers(ctx, orgID)
			if err != nil {
				return nil, err
			}
			return readResult(req, members, "members")
		})

	s.addTool("remove_organization_member", "Remove a member from a workspace",
		[]mcpgo.ToolOption{
			mcpgo.WithString("organizationId", mcpgo.Required(), mcpgo.Description("Workspace identifier")),
			mcpgo.WithString("memberId", mcpgo.Required(), mcpgo.Description("Member identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			orgID, err := req.RequireString("organizationId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			memberID, err := req.RequireString("memberId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.RemoveOrganizationMember(ctx, orgID, memberID); err != nil {
				return nil, err
			}
			return mutationResult("", "Member removed from workspace", nil)
		})
}
