package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func (s *Server) registerCardTools() {
	s.addTool("get_card", "Get a card by its identifier",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			card, err := client.GetCard(ctx, cardID)
			if err != nil {
				return nil, err
			}
			return readResult(req, card, "card")
		})

	s.addTool("create_card", "Create a new card in a list",
		[]mcpgo.ToolOption{
			mcpgo.WithString("listId", mcpgo.Required(), mcpgo.Description("List to create the card in")),
			mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Card name")),
			mcpgo.WithString("description", mcpgo.Description("Card description")),
			mcpgo.WithString("due", mcpgo.Description("Due date (RFC3339); null for no due date")),
			mcpgo.WithString("start", mcpgo.Description("Start date (RFC3339); null for no start date")),
			mcpgo.WithString("position", mcpgo.Description("Position: top, bottom, or a numeric rank")),
			mcpgo.WithString("memberIds", mcpgo.Description("Comma-separated member identifiers to assign")),
			mcpgo.WithString("labelIds", mcpgo.Description("Comma-separated label identifiers to attach")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			listID, err := req.RequireString("listId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			name, err := req.RequireString("name")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			opts := &trello.CreateCardOptions{
				Desc:      args.optString("description"),
				Due:       args.optString("due"),
				Start:     args.optString("start"),
				Pos:       args.optString("position"),
				IDMembers: args.optIDList("memberIds"),
				IDLabels:  args.optIDList("labelIds"),
			}
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			card, err := client.CreateCard(ctx, listID, name, opts)
			if err != nil {
				return nil, err
			}
			return mutationResult("card", "Card created", card)
		})

	s.addTool("update_card", "Update any subset of a card's mutable fields",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("name", mcpgo.Description("New card name")),
			mcpgo.WithString("description", mcpgo.Description("New description; null clears it")),
			mcpgo.WithBoolean("closed", mcpgo.Description("Close or reopen the card")),
			mcpgo.WithString("due", mcpgo.Description("Due date (RFC3339); null clears it")),
			mcpgo.WithBoolean("dueComplete", mcpgo.Description("Mark the due date complete")),
			mcpgo.WithString("start", mcpgo.Description("Start date (RFC3339); null clears it")),
			mcpgo.WithString("listId", mcpgo.Description("Move the card to this list")),
			mcpgo.WithString("boardId", mcpgo.Description("Move the card to this board")),
			mcpgo.WithString("position", mcpgo.Description("Position: top, bottom, or a numeric rank")),
			mcpgo.WithString("memberIds", mcpgo.Description("Comma-separated member identifiers; empty clears")),
			mcpgo.WithString("labelIds", mcpgo.Description("Comma-separated label identifiers; empty clears")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			upd := &trello.CardUpdate{
				Name:        args.optString("name"),
				Desc:        args.optString("description"),
				Closed:      args.optBool("closed"),
				Due:         args.optString("due"),
				DueComplete: args.optBool("dueComplete"),
				Start:       args.optString("start"),
				IDList:      args.optString("listId"),
				IDBoard:     args.optString("boardId"),
				Pos:         args.optString("position"),
				IDMembers:   args.optIDList("memberIds"),
				IDLabels:    args.optIDList("labelIds"),
			}
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			card, err := client.UpdateCard(ctx, cardID, upd)
			if err != nil {
				return nil, err
			}
			return mutationResult("card", "Card updated", card)
		})

	s.addTool("delete_card", "Permanently delete a card (cannot be undone)",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.DeleteCard(ctx, cardID); err != nil {
				return nil, err
			}
			return mutationResult("", "Card deleted", nil)
		})

	s.addTool("archive_card", "Archive (close) a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			card, err := client.ArchiveCard(ctx, cardID)
			if err != nil {
				return nil, err
			}
			return mutationResult("card", "Card archived", card)
		})

	s.addTool("unarchive_card", "Reopen an archived card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			card, err := client.UnarchiveCard(ctx, cardID)
			if err != nil {
				return nil, err
			}
			return mutationResult("card", "Card unarchived", card)
		})

	s.addTool("move_card", "Move a card to another list, optionally across boards",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("listId", mcpgo.Required(), mcpgo.Description("Destination list identifier")),
			mcpgo.WithString("boardId", mcpgo.Description("Destination board identifier when moving across boards")),
			mcpgo.WithString("position", mcpgo.Description("Position in the destination list: top, bottom, or a numeric rank")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			listID, err := req.RequireString("listId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			card, err := client.MoveCard(ctx, cardID, listID, req.GetString("boardId", ""), req.GetString("position", ""))
			if err != nil {
				return nil, err
			}
			return mutationResult("card", "Card moved", card)
		})

	s.addTool("add_comment_to_card", "Post a comment on a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("text", mcpgo.Required(), mcpgo.Description("Comment text")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			text, err := req.RequireString("text")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			action, err := client.AddCardComment(ctx, cardID, text)
			if err != nil {
				return nil, err
			}
			return mutationResult("comment", "Comment added", action)
		})

	s.addTool("get_card_comments", "List the comments on a card, newest first",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			comments, err := client.GetCardComments(ctx, cardID)
			if err != nil {
				return nil, err
			}
			return readResult(req, comments, "comments")
		})

	s.addTool("update_comment", "Edit the text of an existing comment",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("commentId", mcpgo.Required(), mcpgo.Description("Comment action identifier")),
			mcpgo.WithString("text", mcpgo.Required(), mcpgo.Description("Replacement comment text")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			commentID, err := req.RequireString("commentId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			text, err := req.RequireString("text")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			action, err := client.UpdateCardComment(ctx, cardID, commentID, text)
			if err != nil {
				return nil, err
			}
			return mutationResult("comment", "Comment updated", action)
		})

	s.addTool("delete_comment", "Remove a comment from a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("commentId", mcpgo.Required(), mcpgo.Description("Comment action identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			commentID, err := req.RequireString("commentId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.DeleteCardComment(ctx, cardID, commentID); err != nil {
				return nil, err
			}
			return mutationResult("", "Comment deleted", nil)
		})

	s.addTool("add_label_to_card", "Attach an existing label to a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("labelId", mcpgo.Required(), mcpgo.Description("Label identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			labelID, err := req.RequireString("labelId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.AddCardLabel(ctx, cardID, labelID); err != nil {
				return nil, err
			}
			return mutationResult("", "Label added to card", nil)
		})

	s.addTool("remove_label_from_card", "Detach a label from a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("labelId", mcpgo.Required(), mcpgo.Description("Label identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			labelID, err := req.RequireString("labelId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.RemoveCardLabel(ctx, cardID, labelID); err != nil {
				return nil, err
			}
			return mutationResult("", "Label removed from card", nil)
		})

	s.addTool("add_member_to_card", "Assign a member to a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("memberId", mcpgo.Required(), mcpgo.Description("Member identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			memberID, err := req.RequireString("memberId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.AddCardMember(ctx, cardID, memberID); err != nil {
				return nil, err
			}
			return mutationResult("", "Member assigned to card", nil)
		})

	s.addTool("remove_member_from_card", "Unassign a member from a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("memberId", mcpgo.Required(), mcpgo.Description("Member identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			memberID, err := req.RequireString("memberId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.RemoveCardMember(ctx, cardID, memberID); err != nil {
				return nil, err
			}
			return mutationResult("", "Member unassigned from card", nil)
		})

	s.addTool("get_card_attachments", "List the attachments on a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			attachments, err := client.GetCardAttachments(ctx, cardID)
			if err != nil {
				return nil, err
			}
			return readResult(req, attachments, "attachments")
		})

	s.addTool("add_attachment_to_card", "Attach a URL to a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("url", mcpgo.Required(), mcpgo.Description("URL to attach")),
			mcpgo.WithString("name", mcpgo.Description("Display name for the attachment")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			attachmentURL, err := req.RequireString("url")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			attachment, err := client.AddCardAttachment(ctx, cardID, attachmentURL, req.GetString("name", ""))
			if err != nil {
				return nil, err
			}
			return mutationResult("attachment", "Attachment added", attachment)
		})

	s.addTool("delete_attachment", "Remove an attachment from a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("attachmentId", mcpgo.Required(), mcpgo.Description("Attachment identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			attachmentID, err := req.RequireString("attachmentId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.DeleteCardAttachment(ctx, cardID, attachmentID); err != nil {
				return nil, err
			}
			return mutationResult("", "Attachment deleted", nil)
		})

	s.addTool("get_card_actions", "Get a card's activity history",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithNumber("limit", mcpgo.Description("Number of actions to return (1-1000)")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			actions, err := client.GetCardActions(ctx, cardID, int(req.GetFloat("limit", 0)))
			if err != nil {
				return nil, err
			}
			return readResult(req, actions, "actions")
		})

	s.addTool("get_card_checklists", "List the checklists on a card, items included",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			checklists, err := client.GetCardChecklists(ctx, cardID)
			if err != nil {
				return nil, err
			}
			return readResult(req, checklists, "checklists")
		})
}
