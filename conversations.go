package chatwoot

import (
	"context"
	"encoding/json"
	"fmt"
)

// CreateConversation opens a conversation in the configured inbox for
// the contact identified by sourceID and returns the numeric
// conversation ID. The source ID comes from CreateContact; for a web
// widget it is the identifier hash, for an email channel the email
// address.
//
// The conversation starts in StatusOpen unless WithStatus overrides
// it. WithConversationField passes arbitrary extra payload fields
// through to the API.
func (c *Client) CreateConversation(ctx context.Context, sourceID string, opts ...ConversationOption) (int, error) {
	if sourceID == "" {
		return 0, fmt.Errorf("contact source ID cannot be empty")
	}

	cfg := &conversationConfig{status: StatusOpen}
	for _, opt := range opts {
		opt(cfg)
	}

	body := map[string]interface{}{
		"source_id": sourceID,
		"inbox_id":  c.cfg.InboxID,
		"status":    string(cfg.status),
	}
	if cfg.contactID != 0 {
		body["contact_id"] = cfg.contactID
	}
	if cfg.assigneeID != 0 {
		body["assignee_id"] = cfg.assigneeID
	}
	if cfg.teamID != 0 {
		body["team_id"] = cfg.teamID
	}
	if cfg.additionalAttributes != nil {
		body["additional_attributes"] = cfg.additionalAttributes
	}
	for key, value := range cfg.extra {
		body[key] = value
	}

	resp, err := c.apiClient.CreateConversation(ctx, body)
	if err != nil {
		return 0, wrapError(err)
	}

	return resp.ID, nil
}

// GetConversation retrieves a conversation, including all its
// messages, and returns the response document unmodified.
func (c *Client) GetConversation(ctx context.Context, conversationID int) (json.RawMessage, error) {
	result, err := c.apiClient.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ToggleConversationStatus flips a conversation between open and
// resolved and returns the response document unmodified.
func (c *Client) ToggleConversationStatus(ctx context.Context, conversationID int) (json.RawMessage, error) {
	result, err := c.apiClient.ToggleConversationStatus(ctx, conversationID)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
