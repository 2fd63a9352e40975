package trello

import (
	"context"
	"fmt"
)

// ListUpdate holds the mutable fields of a list. Pos is passed through
// verbatim: "top", "bottom", or a numeric rank as a string. Ordering
// semantics live entirely upstream.
type ListUpdate struct {
	Name   *string
	Closed *bool
	Pos    *string
}

// GetList fetches a single list.
func (c *Client) GetList(ctx context.Context, listID string) (*List, error) {
	var list List
	if err := c.get(ctx, "/lists/"+listID, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateList creates a list on a board. Pos may be "top", "bottom" or a
// numeric rank; empty lets Trello choose.
func (c *Client) CreateList(ctx context.Context, boardID, name, pos string) (*List, error) {
	p := newParams().Set("name", name).Set("idBoard", boardID)
	if pos != "" {
		p.Set("pos", pos)
	}
	var list List
	if err := c.post(ctx, "/lists", p, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateList applies any subset of mutable list fields.
func (c *Client) UpdateList(ctx context.Context, listID string, upd *ListUpdate) (*List, error) {
	p := newParams()
	if upd != nil {
		p.SetOpt("name", upd.Name).
			SetOptBool("closed", upd.Closed).
			SetOpt("pos", upd.Pos)
	}
	var list List
	if err := c.put(ctx, "/lists/"+listID, p, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ArchiveList closes a list.
func (c *Client) ArchiveList(ctx context.Context, listID string) (*List, error) {
	closed := true
	return c.UpdateList(ctx, listID, &ListUpdate{Closed: &closed})
}

// UnarchiveList reopens a closed list.
func (c *Client) UnarchiveList(ctx context.Context, listID string) (*List, error) {
	closed := false
	return c.UpdateList(ctx, listID, &ListUpdate{Closed: &closed})
}

// MoveListToBoard moves a list onto another board.
func (c *Client) MoveListToBoard(ctx context.Context, listID, boardID string) (*List, error) {
	p := newParams().Set("value", boardID)
	var list List
	if err := c.put(ctx, "/lists/"+listID+"/idBoard", p, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetListCards returns the cards in a list, filtered by status.
func (c *Client) GetListCards(ctx context.Context, listID string, filter Filter) ([]Card, error) {
	if filter == "" {
		filter = FilterOpen
	}
	if !filter.Valid() {
		return nil, fmt.Errorf("invalid filter %q: must be all, open or closed", filter)
	}
	var cards []Card
	p := newParams().Set("filter", string(filter))
	if err := c.get(ctx, "/lists/"+listID+"/cards", p, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}
