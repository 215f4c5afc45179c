package chatwoot

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/santana-ai/chatwoot-go/internal/api"
)

// Client talks to one Chatwoot account. Configuration is fixed at
// construction time and every method issues a single synchronous HTTP
// request, so a Client is safe for concurrent use.
type Client struct {
	cfg       Config
	apiClient *api.Client
}

// New creates a new Chatwoot client. The configuration is validated
// and no network activity takes place; the first request happens when
// an operation is called.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Domain = strings.TrimRight(cfg.Domain, "/")

	conf := &clientConfig{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(conf)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:     cfg.Domain,
		AccessToken: cfg.AccessToken,
		AccountID:   cfg.AccountID,
		HTTPClient:  conf.httpClient,
		Timeout:     conf.timeout,
		UserAgent:   conf.userAgent,
		Logger:      conf.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		cfg:       cfg,
		apiClient: apiClient,
	}, nil
}

// Domain returns the configured base URL, without a trailing slash.
func (c *Client) Domain() string {
	return c.cfg.Domain
}

// AccountID returns the configured account ID.
func (c *Client) AccountID() string {
	return c.cfg.AccountID
}

// InboxID returns the configured inbox ID.
func (c *Client) InboxID() string {
	return c.cfg.InboxID
}
