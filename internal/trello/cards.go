package trello

import "context"

// CreateCardOptions holds the optional fields of card creation. Due and
// Start take RFC3339 timestamps; a pointer to the empty string explicitly
// clears the field, nil omits it.
type CreateCardOptions struct {
	Desc      *string
	Due       *string
	Start     *string
	Pos       *string
	IDMembers []string
	IDLabels  []string
}

// CardUpdate holds the mutable fields of a card. Nil means "leave
// unchanged"; a pointer to the empty string on Due/Start clears the date.
type CardUpdate struct {
	Name        *string
	Desc        *string
	Closed      *bool
	Due         *string
	DueComplete *bool
	Start       *string
	IDList      *string
	IDBoard     *string
	Pos         *string
	IDMembers   []string
	IDLabels    []string
}

// GetCard fetches a single card.
func (c *Client) GetCard(ctx context.Context, cardID string) (*Card, error) {
	var card Card
	if err := c.get(ctx, "/cards/"+cardID, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// CreateCard creates a card in a list. Name is required.
func (c *Client) CreateCard(ctx context.Context, listID, name string, opts *CreateCardOptions) (*Card, error) {
	p := newParams().Set("idList", listID).Set("name", name)
	if opts != nil {
		p.SetOpt("desc", opts.Desc).
			SetOpt("due", opts.Due).
			SetOpt("start", opts.Start).
			SetOpt("pos", opts.Pos).
			SetOptList("idMembers", opts.IDMembers).
			SetOptList("idLabels", opts.IDLabels)
	}
	var card Card
	if err := c.post(ctx, "/cards", p, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard applies any subset of mutable card fields.
func (c *Client) UpdateCard(ctx context.Context, cardID string, upd *CardUpdate) (*Card, error) {
	p := newParams()
	if upd != nil {
		p.SetOpt("name", upd.Name).
			SetOpt("desc", upd.Desc).
			SetOptBool("closed", upd.Closed).
			SetOpt("due", upd.Due).
			SetOptBool("dueComplete", upd.DueComplete).
			SetOpt("start", upd.Start).
			SetOpt("idList", upd.IDList).
			SetOpt("idBoard", upd.IDBoard).
			SetOpt("pos", upd.Pos).
			SetOptList("idMembers", upd.IDMembers).
			SetOptList("idLabels", upd.IDLabels)
	}
	var card Card
	if err := c.put(ctx, "/cards/"+cardID, p, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// DeleteCard permanently deletes a card.
func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	return c.delete(ctx, "/cards/"+cardID, nil)
}

// ArchiveCard closes a card.
func (c *Client) ArchiveCard(ctx context.Context, cardID string) (*Card, error) {
	closed := true
	return c.UpdateCard(ctx, cardID, &CardUpdate{Closed: &closed})
}

// UnarchiveCard reopens a closed card.
func (c *Client) UnarchiveCard(ctx context.Context, cardID string) (*Card, error) {
	closed := false
	return c.UpdateCard(ctx, cardID, &CardUpdate{Closed: &closed})
}

// MoveCard moves a card to another list, optionally across boards. An
// empty boardID keeps the card on its current board.
func (c *Client) MoveCard(ctx context.Context, cardID, listID, boardID, pos string) (*Card, error) {
	upd := &CardUpdate{IDList: &listID}
	if boardID != "" {
		upd.IDBoard = &boardID
	}
	if pos != "" {
		upd.Pos = &pos
	}
	return c.UpdateCard(ctx, cardID, upd)
}

// AddCardComment posts a comment on a card.
func (c *Client) AddCardComment(ctx context.Context, cardID, text string) (*Action, error) {
	p := newParams().Set("text", text)
	var action Action
	if err := c.post(ctx, "/cards/"+cardID+"/actions/comments", p, &action); err != nil {
		return nil, err
	}
	return &action, nil
}

// GetCardComments returns the comment actions on a card, newest first.
func (c *Client) GetCardComments(ctx context.Context, cardID string) ([]Action, error) {
	p := newParams().Set("filter", "commentCard")
	var actions []Action
	if err := c.get(ctx, "/cards/"+cardID+"/actions", p, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// UpdateCardComment edits the text of an existing comment.
func (c *Client) UpdateCardComment(ctx context.Context, cardID, actionID, text string) (*Action, error) {
	p := newParams().Set("text", text)
	var action Action
	if err := c.put(ctx, "/cards/"+cardID+"/actions/"+actionID+"/comments", p, &action); err != nil {
		return nil, err
	}
	return &action, nil
}

// DeleteCardComment removes a comment from a card.
func (c *Client) DeleteCardComment(ctx context.Context, cardID, actionID string) error {
	return c.delete(ctx, "/cards/"+cardID+"/actions/"+actionID+"/comments", nil)
}

// AddCardLabel attaches an existing label to a card.
func (c *Client) AddCardLabel(ctx context.Context, cardID, labelID string) error {
	p := newParams().Set("value", labelID)
	return c.post(ctx, "/cards/"+cardID+"/idLabels", p, nil)
}

// RemoveCardLabel detaches a label from a card.
func (c *Client) RemoveCardLabel(ctx context.Context, cardID, labelID string) error {
	return c.delete(ctx, "/cards/"+cardID+"/idLabels/"+labelID, nil)
}

// AddCardMember assigns a member to a card.
func (c *Client) AddCardMember(ctx context.Context, cardID, memberID string) error {
	p := newParams().Set("value", memberID)
	return c.post(ctx, "/cards/"+cardID+"/idMembers", p, nil)
}

// RemoveCardMember unassigns a member from a card.
func (c *Client) RemoveCardMember(ctx context.Context, cardID, memberID string) error {
	return c.delete(ctx, "/cards/"+cardID+"/idMembers/"+memberID, nil)
}

// GetCardAttachments returns the attachments on a card.
func (c *Client) GetCardAttachments(ctx context.Context, cardID string) ([]Attachment, error) {
	var attachments []Attachment
	if err := c.get(ctx, "/cards/"+cardID+"/attachments", nil, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// AddCardAttachment attaches a URL to a card. Name is optional.
func (c *Client) AddCardAttachment(ctx context.Context, cardID, attachmentURL, name string) (*Attachment, error) {
	p := newParams().Set("url", attachmentURL)
	if name != "" {
		p.Set("name", name)
	}
	var attachment Attachment
	if err := c.post(ctx, "/cards/"+cardID+"/attachments", p, &attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}

// DeleteCardAttachment removes an attachment from a card.
func (c *Client) DeleteCardAttachment(ctx context.Context, cardID, attachmentID string) error {
	return c.delete(ctx, "/cards/"+cardID+"/attachments/"+attachmentID, nil)
}

// GetCardActions returns the card's activity history. Limit follows the
// same [1, 1000] bound as board actions; zero selects the default.
func (c *Client) GetCardActions(ctx context.Context, cardID string, limit int) ([]Action, error) {
	p := newParams()
	if limit != 0 {
		if limit < 1 || limit > 1000 {
			return nil, errInvalidActionLimit(limit)
		}
		p.SetInt("limit", limit)
	}
	var actions []Action
	if err := c.get(ctx, "/cards/"+cardID+"/actions", p, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// GetCardChecklists returns the checklists on a card, items included.
func (c *Client) GetCardChecklists(ctx context.Context, cardID string) ([]Checklist, error) {
	var checklists []Checklist
	if err := c.get(ctx, "/cards/"+cardID+"/checklists", nil, &checklists); err != nil {
		return nil, err
	}
	return checklists, nil
}
