package trello

import (
	"context"
	"fmt"
)

// CheckItemUpdate holds the mutable fields of a check item. State must be
// "complete" or "incomplete" when set.
type CheckItemUpdate struct {
	Name  *string
	State *string
	Pos   *string
}

// GetChecklist fetches a checklist with its items.
func (c *Client) GetChecklist(ctx context.Context, checklistID string) (*Checklist, error) {
	var checklist Checklist
	if err := c.get(ctx, "/checklists/"+checklistID, nil, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

// CreateChecklist creates a checklist on a card. Pos may be "top",
// "bottom" or a numeric rank; empty lets Trello choose.
func (c *Client) CreateChecklist(ctx context.Context, cardID, name, pos string) (*Checklist, error) {
	p := newParams().Set("idCard", cardID).Set("name", name)
	if pos != "" {
		p.Set("pos", pos)
	}
	var checklist Checklist
	if err := c.post(ctx, "/checklists", p, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

// UpdateChecklist renames or repositions a checklist.
func (c *Client) UpdateChecklist(ctx context.Context, checklistID string, name, pos *string) (*Checklist, error) {
	p := newParams().SetOpt("name", name).SetOpt("pos", pos)
	var checklist Checklist
	if err := c.put(ctx, "/checklists/"+checklistID, p, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

// DeleteChecklist removes a checklist from its card.
func (c *Client) DeleteChecklist(ctx context.Context, checklistID string) error {
	return c.delete(ctx, "/checklists/"+checklistID, nil)
}

// GetCheckItems returns the items of a checklist in order.
func (c *Client) GetCheckItems(ctx context.Context, checklistID string) ([]CheckItem, error) {
	var items []CheckItem
	if err := c.get(ctx, "/checklists/"+checklistID+"/checkItems", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddCheckItem appends an item to a checklist. Checked marks the item
// complete on creation; pos may be "top", "bottom" or a numeric rank.
func (c *Client) AddCheckItem(ctx context.Context, checklistID, name string, checked bool, pos string) (*CheckItem, error) {
	p := newParams().Set("name", name).SetBool("checked", checked)
	if pos != "" {
		p.Set("pos", pos)
	}
	var item CheckItem
	if err := c.post(ctx, "/checklists/"+checklistID+"/checkItems", p, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCheckItem updates an item. The endpoint lives under the card, not
// the checklist, so the card identifier is required.
func (c *Client) UpdateCheckItem(ctx context.Context, cardID, checkItemID string, upd *CheckItemUpdate) (*CheckItem, error) {
	p := newParams()
	if upd != nil {
		if upd.State != nil && *upd.State != CheckItemComplete && *upd.State != CheckItemIncomplete {
			return nil, fmt.Errorf("invalid state %q: must be complete or incomplete", *upd.State)
		}
		p.SetOpt("name", upd.Name).
			SetOpt("state", upd.State).
			SetOpt("pos", upd.Pos)
	}
	var item CheckItem
	if err := c.put(ctx, "/cards/"+cardID+"/checkItem/"+checkItemID, p, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteCheckItem removes an item from a checklist.
func (c *Client) DeleteCheckItem(ctx context.Context, checklistID, checkItemID string) error {
	return c.delete(ctx, "/checklists/"+checklistID+"/checkItems/"+checkItemID, nil)
}
