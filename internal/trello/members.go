package trello

import (
	"context"
	"fmt"
)

// GetMe returns the member the tenant's token belongs to.
func (c *Client) GetMe(ctx context.Context) (*Member, error) {
	return c.GetMember(ctx, "me")
}

// GetMember fetches a member by id or username.
func (c *Client) GetMember(ctx context.Context, memberID string) (*Member, error) {
	var member Member
	if err := c.get(ctx, "/members/"+memberID, nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// GetMemberBoards returns a member's boards, filtered by status.
func (c *Client) GetMemberBoards(ctx context.Context, memberID string, filter Filter) ([]Board, error) {
	if filter == "" {
		filter = FilterOpen
	}
	if !filter.Valid() {
		return nil, fmt.Errorf("invalid filter %q: must be all, open or closed", filter)
	}
	var boards []Board
	p := newParams().Set("filter", string(filter))
	if err := c.get(ctx, "/members/"+memberID+"/boards", p, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// GetMemberCards returns the cards assigned to a member.
func (c *Client) GetMemberCards(ctx context.Context, memberID string) ([]Card, error) {
	var cards []Card
	if err := c.get(ctx, "/members/"+memberID+"/cards", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetMemberOrganizations returns the workspaces a member belongs to.
func (c *Client) GetMemberOrganizations(ctx context.Context, memberID string) ([]Organization, error) {
	var orgs []Organization
	if err := c.get(ctx, "/members/"+memberID+"/organizations", nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// SearchMembers searches members by name fragment. Limit must be in
// [1, 20]; zero selects Trello's default of 8.
func (c *Client) SearchMembers(ctx context.Context, query string, limit int) ([]Member, error) {
	p := newParams().Set("query", query)
	if limit != 0 {
		if limit < 1 || limit > 20 {
			return nil, fmt.Errorf("invalid limit %d: must be between 1 and 20", limit)
		}
		p.SetInt("limit", limit)
	}
	var members []Member
	if err := c.get(ctx, "/search/members", p, &members); err != nil {
		return nil, err
	}
	return members, nil
}
