package chatwoot

import (
	"context"
	"encoding/json"

	"github.com/santana-ai/chatwoot-go/internal/api"
)

// CreateMessage appends a message to a conversation and returns the
// numeric message ID. Messages are incoming and public unless
// WithMessageType or WithPrivate override that.
//
// With an API inbox, outgoing messages trigger the inbox webhook, so
// the receiving server must be reachable or the API reports an error.
func (c *Client) CreateMessage(ctx context.Context, conversationID int, content string, opts ...MessageOption) (int, error) {
	cfg := &messageConfig{messageType: MessageIncoming}
	for _, opt := range opts {
		opt(cfg)
	}

	resp, err := c.apiClient.CreateMessage(ctx, conversationID, api.CreateMessageRequest{
		Content:     content,
		MessageType: string(cfg.messageType),
		Private:     cfg.private,
	})
	if err != nil {
		return 0, wrapError(err)
	}

	return resp.ID, nil
}

// ListMessages lists all messages of a conversation and returns the
// response document unmodified.
func (c *Client) ListMessages(ctx context.Context, conversationID int) (json.RawMessage, error) {
	result, err := c.apiClient.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
