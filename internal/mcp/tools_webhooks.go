package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func (s *Server) registerWebhookTools() {
	s.addTool("list_webhooks", "List the webhooks registered under the supplied token",
		nil,
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			webhooks, err := client.ListWebhooks(ctx)
			if err != nil {
				return nil, err
			}
			return readResult(req, webhooks, "webhooks")
		})

	s.addTool("get_webhook", "Get a webhook by its identifier",
		[]mcpgo.ToolOption{
			mcpgo.WithString("webhookId", mcpgo.Required(), mcpgo.Description("Webhook identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			webhookID, err := req.RequireString("webhookId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			webhook, err := client.GetWebhook(ctx, webhookID)
			if err != nil {
				return nil, err
			}
			return readResult(req, webhook, "webhook")
		})

	s.addTool("create_webhook", "Register a callback URL on a board, list or card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("modelId", mcpgo.Required(), mcpgo.Description("Identifier of the model to watch")),
			mcpgo.WithString("callbackUrl", mcpgo.Required(), mcpgo.Description("URL Trello will POST change events to")),
			mcpgo.WithString("description", mcpgo.Description("Human-readable webhook description")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			modelID, err := req.RequireString("modelId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			callbackURL, err := req.RequireString("callbackUrl")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			webhook, err := client.CreateWebhook(ctx, modelID, callbackURL, req.GetString("description", ""))
			if err != nil {
				return nil, err
			}
			return mutationResult("webhook", "Webhook created", webhook)
		})

	s.addTool("update_webhook", "Update any subset of a webhook's mutable fields",
		[]mcpgo.ToolOption{
			mcpgo.WithString("webhookId", mcpgo.Required(), mcpgo.Description("Webhook identifier")),
			mcpgo.WithString("description", mcpgo.Description("New description")),
			mcpgo.WithString("callbackUrl", mcpgo.Description("New callback URL")),
			mcpgo.WithString("modelId", mcpgo.Description("Watch a different model")),
			mcpgo.WithBoolean("active", mcpgo.Description("Enable or disable delivery")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			webhookID, err := req.RequireString("webhookId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			upd := &trello.WebhookUpdate{
				Description: args.optString("description"),
				CallbackURL: args.optString("callbackUrl"),
				IDModel:     args.optString("modelId"),
				Active:      args.optBool("active"),
			}
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			webhook, err := client.UpdateWebhook(ctx, webhookID, upd)
			if err != nil {
				return nil, err
			}
			return mutationResult("webhook", "Webhook updated", webhook)
		})

	s.addTool("delete_webhook", "Unregister a webhook",
		[]mcpgo.ToolOption{
			mcpgo.WithString("webhookId", mcpgo.Required(), mcpgo.Description("Webhook identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			webhookID, err := req.RequireString("webhookId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.DeleteWebhook(ctx, webhookID); err != nil {
				return nil, err
			}
			return mutationResult("", "Webhook deleted", nil)
		})
}
