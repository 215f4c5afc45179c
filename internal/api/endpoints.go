package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CreateContact registers a new contact.
func (c *Client) CreateContact(ctx context.Context, req CreateContactRequest) (*CreateContactResponse, error) {
	var result CreateContactResponse
	if err := c.Do(ctx, http.MethodPost, c.accountPath("/contacts"), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchContacts searches resolved contacts by name, identifier, email
// or phone number. A single page of results is requested.
func (c *Client) SearchContacts(ctx context.Context, query string, page int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))

	path := c.accountPath("/contacts/search") + "?" + params.Encode()
	var result json.RawMessage
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetContact retrieves a contact by its numeric ID.
func (c *Client) GetContact(ctx context.Context, contactID int) (json.RawMessage, error) {
	path := c.accountPath(fmt.Sprintf("/contacts/%d", contactID))
	var result json.RawMessage
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateConversation opens a new conversation. The body is open-ended:
// the API accepts arbitrary extra fields alongside the documented ones.
func (c *Client) CreateConversation(ctx context.Context, body map[string]interface{}) (*CreateConversationResponse, error) {
	var result CreateConversationResponse
	if err := c.Do(ctx, http.MethodPost, c.accountPath("/conversations"), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetConversation retrieves a conversation with all its messages.
func (c *Client) GetConversation(ctx context.Context, conversationID int) (json.RawMessage, error) {
	path := c.accountPath(fmt.Sprintf("/conversations/%d", conversationID))
	var result json.RawMessage
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ToggleConversationStatus flips a conversation between open and resolved.
func (c *Client) ToggleConversationStatus(ctx context.Context, conversationID int) (json.RawMessage, error) {
	path := c.accountPath(fmt.Sprintf("/conversations/%d/toggle_status", conversationID))
	var result json.RawMessage
	if err := c.Do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateMessage appends a message to a conversation.
func (c *Client) CreateMessage(ctx context.Context, conversationID int, req CreateMessageRequest) (*CreateMessageResponse, error) {
	path := c.accountPath(fmt.Sprintf("/conversations/%d/messages", conversationID))
	var result CreateMessageResponse
	if err := c.Do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListMessages lists all messages of a conversation.
func (c *Client) ListMessages(ctx context.Context, conversationID int) (json.RawMessage, error) {
	path := c.accountPath(fmt.Sprintf("/conversations/%d/messages", conversationID))
	var result json.RawMessage
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListInboxes lists all inboxes of the account.
func (c *Client) ListInboxes(ctx context.Context) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.Do(ctx, http.MethodGet, c.accountPath("/inboxes"), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListAgents lists all agents of the account.
func (c *Client) ListAgents(ctx context.Context) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.Do(ctx, http.MethodGet, c.accountPath("/agents"), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateAgent adds a new agent to the account.
func (c *Client) CreateAgent(ctx context.Context, req CreateAgentRequest) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.Do(ctx, http.MethodPost, c.accountPath("/agents"), req, &result); err != nil {
		return nil, err
	}
	return result, nil
}
