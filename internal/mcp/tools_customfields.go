package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

func (s *Server) registerCustomFieldTools() {
	s.addTool("create_custom_field", "Define a new custom field on a board",
		[]mcpgo.ToolOption{
			mcpgo.WithString("boardId", mcpgo.Required(), mcpgo.Description("Board to define the field on")),
			mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Field name")),
			mcpgo.WithString("type", mcpgo.Required(),
				mcpgo.Description("Field type"),
				mcpgo.Enum("text", "number", "date", "checkbox", "list")),
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
			fieldType, err := req.RequireString("type")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			field, err := client.CreateCustomField(ctx, boardID, name, fieldType)
			if err != nil {
				return nil, err
			}
			return mutationResult("customField", "Custom field created", field)
		})

	s.addTool("get_custom_field", "Get a custom field definition",
		[]mcpgo.ToolOption{
			mcpgo.WithString("fieldId", mcpgo.Required(), mcpgo.Description("Custom field identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			fieldID, err := req.RequireString("fieldId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			field, err := client.GetCustomField(ctx, fieldID)
			if err != nil {
				return nil, err
			}
			return readResult(req, field, "customField")
		})

	s.addTool("update_custom_field", "Rename or reposition a custom field definition",
		[]mcpgo.ToolOption{
			mcpgo.WithString("fieldId", mcpgo.Required(), mcpgo.Description("Custom field identifier")),
			mcpgo.WithString("name", mcpgo.Description("New field name")),
			mcpgo.WithString("position", mcpgo.Description("Position: top, bottom, or a numeric rank")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			fieldID, err := req.RequireString("fieldId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			args := newArgReader(req)
			name, pos := args.optString("name"), args.optString("position")
			if err := args.Err(); err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			field, err := client.UpdateCustomField(ctx, fieldID, name, pos)
			if err != nil {
				return nil, err
			}
			return mutationResult("customField", "Custom field updated", field)
		})

	s.addTool("delete_custom_field", "Delete a custom field definition and all its values",
		[]mcpgo.ToolOption{
			mcpgo.WithString("fieldId", mcpgo.Required(), mcpgo.Description("Custom field identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			fieldID, err := req.RequireString("fieldId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.DeleteCustomField(ctx, fieldID); err != nil {
				return nil, err
			}
			return mutationResult("", "Custom field deleted", nil)
		})

	s.addTool("get_custom_field_options", "List the options of a list-type custom field",
		[]mcpgo.ToolOption{
			mcpgo.WithString("fieldId", mcpgo.Required(), mcpgo.Description("Custom field identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			fieldID, err := req.RequireString("fieldId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			options, err := client.GetCustomFieldOptions(ctx, fieldID)
			if err != nil {
				return nil, err
			}
			return readResult(req, options, "customFieldOptions")
		})

	s.addTool("add_custom_field_option", "Append an option to a list-type custom field",
		[]mcpgo.ToolOption{
			mcpgo.WithString("fieldId", mcpgo.Required(), mcpgo.Description("Custom field identifier")),
			mcpgo.WithString("text", mcpgo.Required(), mcpgo.Description("Option text")),
			mcpgo.WithString("color", mcpgo.Description("Option color")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			fieldID, err := req.RequireString("fieldId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			text, err := req.RequireString("text")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			option, err := client.AddCustomFieldOption(ctx, fieldID, text, req.GetString("color", ""))
			if err != nil {
				return nil, err
			}
			return mutationResult("customFieldOption", "Custom field option added", option)
		})

	s.addTool("delete_custom_field_option", "Remove an option from a list-type custom field",
		[]mcpgo.ToolOption{
			mcpgo.WithString("fieldId", mcpgo.Required(), mcpgo.Description("Custom field identifier")),
			mcpgo.WithString("optionId", mcpgo.Required(), mcpgo.Description("Option identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			fieldID, err := req.RequireString("fieldId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			optionID, err := req.RequireString("optionId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.DeleteCustomFieldOption(ctx, fieldID, optionID); err != nil {
				return nil, err
			}
			return mutationResult("", "Custom field option deleted", nil)
		})

	s.addTool("set_custom_field_value", "Assign a custom field value on a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("fieldId", mcpgo.Required(), mcpgo.Description("Custom field identifier")),
			mcpgo.WithString("value", mcpgo.Description("Value for text, number, date or checkbox fields")),
			mcpgo.WithString("optionId", mcpgo.Description("Option identifier for list fields")),
			mcpgo.WithString("valueType",
				mcpgo.Description("How to encode the value (default: text)"),
				mcpgo.Enum("text", "number", "date", "checked")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			fieldID, err := req.RequireString("fieldId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}

			optionID := req.GetString("optionId", "")
			var value *trello.CustomFieldValue
			if raw, present := req.GetArguments()["value"]; present && raw != nil {
				str, ok := raw.(string)
				if !ok {
					return mcpgo.NewToolResultError("value must be a string"), nil
				}
				value = &trello.CustomFieldValue{}
				switch req.GetString("valueType", "text") {
				case "number":
					value.Number = str
				case "date":
					value.Date = str
				case "checked":
					value.Checked = str
				default:
					value.Text = str
				}
			}

			if err := client.SetCardCustomFieldValue(ctx, cardID, fieldID, value, optionID); err != nil {
				return nil, err
			}
			return mutationResult("", "Custom field value set", nil)
		})

	s.addTool("clear_custom_field_value", "Remove a custom field value from a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
			mcpgo.WithString("fieldId", mcpgo.Required(), mcpgo.Description("Custom field identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			fieldID, err := req.RequireString("fieldId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			if err := client.ClearCardCustomFieldValue(ctx, cardID, fieldID); err != nil {
				return nil, err
			}
			return mutationResult("", "Custom field value cleared", nil)
		})

	s.addTool("get_card_custom_field_values", "List the custom field values set on a card",
		[]mcpgo.ToolOption{
			mcpgo.WithString("cardId", mcpgo.Required(), mcpgo.Description("Card identifier")),
		},
		func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			cardID, err := req.RequireString("cardId")
			if err != nil {
				return mcpgo.NewToolResultError(err.Error()), nil
			}
			items, err := client.GetCardCustomFieldItems(ctx, cardID)
			if err != nil {
				return nil, err
			}
			return readResult(req, items, "customFieldItems")
		})
}
