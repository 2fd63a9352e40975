package trello

import (
	"context"
	"fmt"
)

// OrganizationUpdate holds the mutable fields of a workspace.
type OrganizationUpdate struct {
	DisplayName *string
	Desc        *string
	Name        *string
	Website     *string
}

// GetOrganization fetches a workspace by id or short name.
func (c *Client) GetOrganization(ctx context.Context, orgID string) (*Organization, error) {
	var org Organization
	if err := c.get(ctx, "/organizations/"+orgID, nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// CreateOrganization creates a workspace. DisplayName is required.
func (c *Client) CreateOrganization(ctx context.Context, displayName string, desc, name, website *string) (*Organization, error) {
	p := newParams().Set("displayName", displayName).
		SetOpt("desc", desc).
		SetOpt("name", name).
		SetOpt("website", website)
	var org Organization
	if err := c.post(ctx, "/organizations", p, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// UpdateOrganization applies any subset of mutable workspace fields.
func (c *Client) UpdateOrganization(ctx context.Context, orgID string, upd *OrganizationUpdate) (*Organization, error) {
	p := newParams()
	if upd != nil {
		p.SetOpt("displayName", upd.DisplayName).
			SetOpt("desc", upd.Desc).
			SetOpt("name", upd.Name).
			SetOpt("website", upd.Website)
	}
	var org Organization
	if err := c.put(ctx, "/organizations/"+orgID, p, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// DeleteOrganization permanently deletes a workspace.
func (c *Client) DeleteOrganization(ctx context.Context, orgID string) error {
	return c.delete(ctx, "/organizations/"+orgID, nil)
}

// GetOrganizationBoards returns the boards in a workspace, filtered by
// status.
func (c *Client) GetOrganizationBoards(ctx context.Context, orgID string, filter Filter) ([]Board, error) {
	if filter == "" {
		filter = FilterOpen
	}
	if !filter.Valid() {
		return nil, fmt.Errorf("invalid filter %q: must be all, open or closed", filter)
	}
	var boards []Board
	p := newParams().Set("filter", string(filter))
	if err := c.get(ctx, "/organizations/"+orgID+"/boards", p, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// GetOrganizationMembers returns the members of a workspace.
func (c *Client) GetOrganizationMembers(ctx context.Context, orgID string) ([]Member, error) {
	var members []Member
	if err := c.get(ctx, "/organizations/"+orgID+"/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// RemoveOrganizationMember removes a member from a workspace.
func (c *Client) RemoveOrganizationMember(ctx context.Context, orgID, memberID string) error {
	return c.delete(ctx, "/organizations/"+orgID+"/members/"+memberID, nil)
}
