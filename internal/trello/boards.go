package trello

import (
	"context"
	"fmt"
)

// BoardUpdate holds the mutable fields of a board. A nil pointer omits the
// field from the request entirely; a pointer to the empty string clears a
// clearable field. Trello treats an absent field as "no change" and a
// present-but-empty field as "clear", so the distinction matters.
type BoardUpdate struct {
	Name           *string
	Desc           *string
	Closed         *bool
	IDOrganization *string
	// PermissionLevel is one of "private", "org", "public".
	PermissionLevel *string
}

// CreateBoardOptions holds the optional fields of board creation.
type CreateBoardOptions struct {
	Desc           *string
	IDOrganization *string
	// DefaultLists controls whether Trello seeds the new board with the
	// stock To Do / Doing / Done lists.
	DefaultLists    *bool
	PermissionLevel *string
}

// ListMyBoards returns the boards of the authenticated member, filtered by
// status. An empty filter defaults to open boards.
func (c *Client) ListMyBoards(ctx context.Context, filter Filter) ([]Board, error) {
	if filter == "" {
		filter = FilterOpen
	}
	if !filter.Valid() {
		return nil, fmt.Errorf("invalid filter %q: must be all, open or closed", filter)
	}
	var boards []Board
	p := newParams().Set("filter", string(filter))
	if err := c.get(ctx, "/members/me/boards", p, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// GetBoard fetches a single board.
func (c *Client) GetBoard(ctx context.Context, boardID string) (*Board, error) {
	var board Board
	if err := c.get(ctx, "/boards/"+boardID, nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// CreateBoard creates a board. Name is required; everything else is
// optional.
func (c *Client) CreateBoard(ctx context.Context, name string, opts *CreateBoardOptions) (*Board, error) {
	p := newParams().Set("name", name)
	if opts != nil {
		p.SetOpt("desc", opts.Desc).
			SetOpt("idOrganization", opts.IDOrganization).
			SetOptBool("defaultLists", opts.DefaultLists).
			SetOpt("prefs_permissionLevel", opts.PermissionLevel)
	}
	var board Board
	if err := c.post(ctx, "/boards", p, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// UpdateBoard applies any subset of mutable board fields.
func (c *Client) UpdateBoard(ctx context.Context, boardID string, upd *BoardUpdate) (*Board, error) {
	p := newParams()
	if upd != nil {
		p.SetOpt("name", upd.Name).
			SetOpt("desc", upd.Desc).
			SetOptBool("closed", upd.Closed).
			SetOpt("idOrganization", upd.IDOrganization).
			SetOpt("prefs/permissionLevel", upd.PermissionLevel)
	}
	var board Board
	if err := c.put(ctx, "/boards/"+boardID, p, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// DeleteBoard permanently deletes a board. This cannot be undone upstream.
func (c *Client) DeleteBoard(ctx context.Context, boardID string) error {
	return c.delete(ctx, "/boards/"+boardID, nil)
}

// ArchiveBoard closes a board. Archiving is an update of the closed flag,
// not a separate upstream endpoint.
func (c *Client) ArchiveBoard(ctx context.Context, boardID string) (*Board, error) {
	closed := true
	return c.UpdateBoard(ctx, boardID, &BoardUpdate{Closed: &closed})
}

// UnarchiveBoard reopens a closed board.
func (c *Client) UnarchiveBoard(ctx context.Context, boardID string) (*Board, error) {
	closed := false
	return c.UpdateBoard(ctx, boardID, &BoardUpdate{Closed: &closed})
}

// GetBoardLists returns the lists on a board, filtered by status.
func (c *Client) GetBoardLists(ctx context.Context, boardID string, filter Filter) ([]List, error) {
	if filter == "" {
		filter = FilterOpen
	}
	if !filter.Valid() {
		return nil, fmt.Errorf("invalid filter %q: must be all, open or closed", filter)
	}
	var lists []List
	p := newParams().Set("filter", string(filter))
	if err := c.get(ctx, "/boards/"+boardID+"/lists", p, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetBoardCards returns the cards on a board, filtered by status.
func (c *Client) GetBoardCards(ctx context.Context, boardID string, filter Filter) ([]Card, error) {
	if filter == "" {
		filter = FilterOpen
	}
	if !filter.Valid() {
		return nil, fmt.Errorf("invalid filter %q: must be all, open or closed", filter)
	}
	var cards []Card
	p := newParams().Set("filter", string(filter))
	if err := c.get(ctx, "/boards/"+boardID+"/cards", p, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetBoardLabels returns all labels defined on a board.
func (c *Client) GetBoardLabels(ctx context.Context, boardID string) ([]Label, error) {
	var labels []Label
	if err := c.get(ctx, "/boards/"+boardID+"/labels", nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// GetBoardMembers returns the members of a board.
func (c *Client) GetBoardMembers(ctx context.Context, boardID string) ([]Member, error) {
	var members []Member
	if err := c.get(ctx, "/boards/"+boardID+"/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddBoardMember invites a member to a board by email. MemberType is
// "normal", "admin" or "observer"; empty defaults to normal membership.
func (c *Client) AddBoardMember(ctx context.Context, boardID, email, memberType string) error {
	p := newParams().Set("email", email)
	if memberType != "" {
		p.Set("type", memberType)
	}
	return c.put(ctx, "/boards/"+boardID+"/members", p, nil)
}

// RemoveBoardMember removes a member from a board.
func (c *Client) RemoveBoardMember(ctx context.Context, boardID, memberID string) error {
	return c.delete(ctx, "/boards/"+boardID+"/members/"+memberID, nil)
}

// GetBoardActions returns the board's activity history. Limit must be in
// [1, 1000]; zero selects Trello's default page size.
func (c *Client) GetBoardActions(ctx context.Context, boardID string, limit int) ([]Action, error) {
	p := newParams()
	if limit != 0 {
		if limit < 1 || limit > 1000 {
			return nil, errInvalidActionLimit(limit)
		}
		p.SetInt("limit", limit)
	}
	var actions []Action
	if err := c.get(ctx, "/boards/"+boardID+"/actions", p, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// GetBoardCustomFields returns the custom field definitions on a board.
func (c *Client) GetBoardCustomFields(ctx context.Context, boardID string) ([]CustomField, error) {
	var fields []CustomField
	if err := c.get(ctx, "/boards/"+boardID+"/customFields", nil, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
