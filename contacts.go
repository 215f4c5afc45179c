package chatwoot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santana-ai/chatwoot-go/internal/api"
)

// CreateContact creates a contact in the configured inbox and returns
// its source ID, e.g. "561f3286-a92e-4b59-ae1d-9301154313f1". The
// source ID ties the contact to the inbox and is required to open
// conversations for it.
//
// A contact represents a person in the Chatwoot CRM. email and phone
// may be empty; Chatwoot resolves contacts by identifier, email or
// phone number.
func (c *Client) CreateContact(ctx context.Context, name, email, phone string, opts ...ContactOption) (string, error) {
	cfg := &contactConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	resp, err := c.apiClient.CreateContact(ctx, api.CreateContactRequest{
		InboxID:          c.cfg.InboxID,
		Name:             name,
		Email:            email,
		PhoneNumber:      phone,
		Identifier:       cfg.identifier,
		CustomAttributes: cfg.customAttributes,
	})
	if err != nil {
		return "", wrapError(err)
	}

	return resp.Payload.ContactInbox.SourceID, nil
}

// SearchContacts searches resolved contacts by name, identifier, email
// or phone number and returns the response document unmodified. One
// page of results is fetched per call (page size 15); use WithPage to
// select a page.
func (c *Client) SearchContacts(ctx context.Context, query string, opts ...SearchOption) (json.RawMessage, error) {
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	cfg := &searchConfig{page: 1}
	for _, opt := range opts {
		opt(cfg)
	}

	result, err := c.apiClient.SearchContacts(ctx, query, cfg.page)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// GetContact retrieves a contact by its numeric ID and returns the
// response document unmodified.
func (c *Client) GetContact(ctx context.Context, contactID int) (json.RawMessage, error) {
	result, err := c.apiClient.GetContact(ctx, contactID)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
