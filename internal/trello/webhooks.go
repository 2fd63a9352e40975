package trello

import "context"

// WebhookUpdate holds the mutable fields of a webhook.
type WebhookUpdate struct {
	Description *string
	CallbackURL *string
	IDModel     *string
	Active      *bool
}

// ListWebhooks returns all webhooks registered under the tenant's token.
func (c *Client) ListWebhooks(ctx context.Context) ([]Webhook, error) {
	var webhooks []Webhook
	if err := c.get(ctx, "/tokens/"+c.creds.Token+"/webhooks", nil, &webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

// GetWebhook fetches a single webhook.
func (c *Client) GetWebhook(ctx context.Context, webhookID string) (*Webhook, error) {
	var webhook Webhook
	if err := c.get(ctx, "/webhooks/"+webhookID, nil, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// CreateWebhook registers a callback URL on a model (board, list or card).
func (c *Client) CreateWebhook(ctx context.Context, idModel, callbackURL, description string) (*Webhook, error) {
	p := newParams().Set("idModel", idModel).Set("callbackURL", callbackURL)
	if description != "" {
		p.Set("description", description)
	}
	var webhook Webhook
	if err := c.post(ctx, "/webhooks", p, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// UpdateWebhook applies any subset of mutable webhook fields.
func (c *Client) UpdateWebhook(ctx context.Context, webhookID string, upd *WebhookUpdate) (*Webhook, error) {
	p := newParams()
	if upd != nil {
		p.SetOpt("description", upd.Description).
			SetOpt("callbackURL", upd.CallbackURL).
			SetOpt("idModel", upd.IDModel).
			SetOptBool("active", upd.Active)
	}
	var webhook Webhook
	if err := c.put(ctx, "/webhooks/"+webhookID, p, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// DeleteWebhook unregisters a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	return c.delete(ctx, "/webhooks/"+webhookID, nil)
}
