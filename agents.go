package chatwoot

import (
	"context"
	"encoding/json"

	"github.com/santana-ai/chatwoot-go/internal/api"
)

// ListAgents lists all agents of the account and returns the response
// document unmodified.
func (c *Client) ListAgents(ctx context.Context) (json.RawMessage, error) {
	result, err := c.apiClient.ListAgents(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// CreateAgent adds an agent to the account and returns the created
// agent document unmodified. The agent receives a confirmation email
// from Chatwoot. Role defaults to RoleAgent.
func (c *Client) CreateAgent(ctx context.Context, name, email string, opts ...AgentOption) (json.RawMessage, error) {
	cfg := &agentConfig{role: RoleAgent}
	for _, opt := range opts {
		opt(cfg)
	}

	result, err := c.apiClient.CreateAgent(ctx, api.CreateAgentRequest{
		Name:  name,
		Email: email,
		Role:  string(cfg.role),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
