package trello

import (
	"context"
	"fmt"
	"slices"
)

// GetLabel fetches a single label.
func (c *Client) GetLabel(ctx context.Context, labelID string) (*Label, error) {
	var label Label
	if err := c.get(ctx, "/labels/"+labelID, nil, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// CreateLabel creates a label on a board. Color must be one of
// LabelColors; "null" creates a colorless label.
func (c *Client) CreateLabel(ctx context.Context, boardID, name, color string) (*Label, error) {
	if !slices.Contains(LabelColors, color) {
		return nil, fmt.Errorf("invalid label color %q", color)
	}
	p := newParams().Set("idBoard", boardID).Set("name", name).Set("color", color)
	var label Label
	if err := c.post(ctx, "/labels", p, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// UpdateLabel renames or recolors a label.
func (c *Client) UpdateLabel(ctx context.Context, labelID string, name, color *string) (*Label, error) {
	if color != nil && !slices.Contains(LabelColors, *color) {
		return nil, fmt.Errorf("invalid label color %q", *color)
	}
	p := newParams().SetOpt("name", name).SetOpt("color", color)
	var label Label
	if err := c.put(ctx, "/labels/"+labelID, p, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// DeleteLabel removes a label from its board and all cards.
func (c *Client) DeleteLabel(ctx context.Context, labelID string) error {
	return c.delete(ctx, "/labels/"+labelID, nil)
}
