package chatwoot

import (
	"context"
	"encoding/json"
)

// ListInboxes lists all inboxes of the account and returns the
// response document unmodified. The configured inbox ID normally
// refers to one of these.
func (c *Client) ListInboxes(ctx context.Context) (json.RawMessage, error) {
	result, err := c.apiClient.ListInboxes(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
