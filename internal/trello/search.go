package trello

import (
	"context"
	"strings"
)

// SearchOptions narrows a search. ModelTypes selects which entity kinds to
// match ("boards", "cards", "members", "organizations"); nil searches all.
// Partial enables prefix matching on words instead of exact matching.
type SearchOptions struct {
	ModelTypes      []string
	BoardsLimit     *int
	CardsLimit      *int
	Partial         *bool
	IDBoards        []string
	IDOrganizations []string
}

// Search runs a free-text search across the tenant's visible models.
func (c *Client) Search(ctx context.Context, query string, opts *SearchOptions) (*SearchResult, error) {
	p := newParams().Set("query", query)
	if opts != nil {
		if opts.ModelTypes != nil {
			p.Set("modelTypes", strings.Join(opts.ModelTypes, ","))
		}
		p.SetOptInt("boards_limit", opts.BoardsLimit).
			SetOptInt("cards_limit", opts.CardsLimit).
			SetOptBool("partial", opts.Partial).
			SetOptList("idBoards", opts.IDBoards).
			SetOptList("idOrganizations", opts.IDOrganizations)
	}
	var result SearchResult
	if err := c.get(ctx, "/search", p, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
