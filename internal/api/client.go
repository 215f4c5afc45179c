package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout is the HTTP client timeout used when none is configured.
const DefaultTimeout = 30 * time.Second

// Config holds the settings for the API client.
type Config struct {
	// BaseURL is the Chatwoot installation URL, without a trailing slash.
	BaseURL string
	// AccessToken is sent on every request via the api-access-token header.
	AccessToken string
	// AccountID scopes every request path.
	AccountID string
	// HTTPClient overrides the default HTTP client. When set, Timeout is ignored.
	HTTPClient *http.Client
	// Timeout applies to the default HTTP client. Zero means DefaultTimeout.
	Timeout time.Duration
	// UserAgent is sent as the User-Agent header when non-empty.
	UserAgent string
	// Logger receives debug-level request/response lines.
	Logger zerolog.Logger
}

// Client is the HTTP API client. Every request is scoped to a single
// account and authenticated with the access token. Requests are issued
// exactly once: failed requests are never retried.
type Client struct {
	baseURL     string
	accessToken string
	accountID   string
	userAgent   string
	httpClient  *http.Client
	log         zerolog.Logger
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}
	if cfg.AccountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		accountID:   cfg.AccountID,
		userAgent:   cfg.UserAgent,
		httpClient:  httpClient,
		log:         cfg.Logger,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// accountPath builds an account-scoped API path.
func (c *Client) accountPath(suffix string) string {
	return fmt.Sprintf("/api/v1/accounts/%s%s", url.PathEscape(c.accountID), suffix)
}

// Do executes one HTTP request against the API. A non-2xx status is
// returned as an *APIError, a transport failure as a *NetworkError.
// When result is non-nil the response body is JSON-decoded into it.
func (c *Client) Do(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("api-access-token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return &NetworkError{Err: err, URL: fullURL}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Error       string `json:"error"`
		Message     string `json:"message"`
		Description string `json:"description"`
	}

	var message string
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Message != "":
			message = errResp.Message
		case errResp.Error != "":
			message = errResp.Error
		case errResp.Description != "":
			message = errResp.Description
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		Body:       string(body),
	}
}
