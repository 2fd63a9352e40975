package trello

import (
	"context"
	"fmt"
	"slices"
)

var customFieldTypes = []string{
	CustomFieldText, CustomFieldNumber, CustomFieldDate,
	CustomFieldCheckbox, CustomFieldList,
}

// CreateCustomField defines a new custom field on a board. FieldType must
// be one of the closed set of field types.
func (c *Client) CreateCustomField(ctx context.Context, boardID, name, fieldType string) (*CustomField, error) {
	if !slices.Contains(customFieldTypes, fieldType) {
		return nil, fmt.Errorf("invalid custom field type %q", fieldType)
	}
	p := newParams().
		Set("idModel", boardID).
		Set("modelType", "board").
		Set("name", name).
		Set("type", fieldType).
		Set("pos", "bottom")
	var field CustomField
	if err := c.post(ctx, "/customFields", p, &field); err != nil {
		return nil, err
	}
	return &field, nil
}

// GetCustomField fetches a custom field definition.
func (c *Client) GetCustomField(ctx context.Context, fieldID string) (*CustomField, error) {
	var field CustomField
	if err := c.get(ctx, "/customFields/"+fieldID, nil, &field); err != nil {
		return nil, err
	}
	return &field, nil
}

// UpdateCustomField renames or repositions a custom field definition.
func (c *Client) UpdateCustomField(ctx context.Context, fieldID string, name, pos *string) (*CustomField, error) {
	p := newParams().SetOpt("name", name).SetOpt("pos", pos)
	var field CustomField
	if err := c.put(ctx, "/customFields/"+fieldID, p, &field); err != nil {
		return nil, err
	}
	return &field, nil
}

// DeleteCustomField removes a custom field definition and all its values.
func (c *Client) DeleteCustomField(ctx context.Context, fieldID string) error {
	return c.delete(ctx, "/customFields/"+fieldID, nil)
}

// GetCustomFieldOptions returns the options of a list-type custom field.
func (c *Client) GetCustomFieldOptions(ctx context.Context, fieldID string) ([]CustomFieldOption, error) {
	var options []CustomFieldOption
	if err := c.get(ctx, "/customFields/"+fieldID+"/options", nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// AddCustomFieldOption appends an option to a list-type custom field.
//
// This endpoint takes a JSON body, not query parameters. Trello dispatches
// on content type per endpoint and only this operation and
// SetCardCustomFieldValue accept JSON; do not fold it into the query-param
// path.
func (c *Client) AddCustomFieldOption(ctx context.Context, fieldID, text, color string) (*CustomFieldOption, error) {
	body := map[string]interface{}{
		"value": map[string]string{"text": text},
	}
	if color != "" {
		body["color"] = color
	}
	var option CustomFieldOption
	if err := c.postJSON(ctx, "/customFields/"+fieldID+"/options", body, &option); err != nil {
		return nil, err
	}
	return &option, nil
}

// DeleteCustomFieldOption removes an option from a list-type field.
func (c *Client) DeleteCustomFieldOption(ctx context.Context, fieldID, optionID string) error {
	return c.delete(ctx, "/customFields/"+fieldID+"/options/"+optionID, nil)
}

// SetCardCustomFieldValue assigns a value to a custom field on a card.
// Exactly one of value (for text/number/date/checkbox fields) or idValue
// (for list fields, naming an option) must be provided.
//
// Like AddCustomFieldOption, this endpoint requires a JSON body.
func (c *Client) SetCardCustomFieldValue(ctx context.Context, cardID, fieldID string, value *CustomFieldValue, idValue string) error {
	if (value == nil) == (idValue == "") {
		return fmt.Errorf("exactly one of value or idValue must be set")
	}
	var body interface{}
	if value != nil {
		body = map[string]interface{}{"value": value}
	} else {
		body = map[string]interface{}{"idValue": idValue}
	}
	return c.putJSON(ctx, "/cards/"+cardID+"/customField/"+fieldID+"/item", body, nil)
}

// ClearCardCustomFieldValue removes a field's value from a card. An empty
// value object is Trello's wire encoding for "unset".
func (c *Client) ClearCardCustomFieldValue(ctx context.Context, cardID, fieldID string) error {
	body := map[string]interface{}{"value": map[string]string{}}
	return c.putJSON(ctx, "/cards/"+cardID+"/customField/"+fieldID+"/item", body, nil)
}

// GetCardCustomFieldItems returns the custom field values set on a card.
func (c *Client) GetCardCustomFieldItems(ctx context.Context, cardID string) ([]CustomFieldItem, error) {
	var items []CustomFieldItem
	if err := c.get(ctx, "/cards/"+cardID+"/customFieldItems", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
