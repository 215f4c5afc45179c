package chatwoot

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"
)

// Environment variable names read by ConfigFromEnv.
const (
	EnvDomain      = "DOMAIN"
	EnvAccessToken = "API_ACCESS_TOKEN"
	EnvAccountID   = "ACCOUNT_ID"
	EnvInboxID     = "INBOX_ID"
)

var validate = validator.New()

// Config holds the connection settings for one Chatwoot account. All
// four values are required; the client keeps them for its lifetime.
type Config struct {
	// Domain is the base URL of the Chatwoot installation,
	// e.g. "https://chatwoot.example.com".
	Domain string `validate:"required,url"`

	// AccessToken is an agent or administrator access token for the
	// account. It is sent on every request via the api-access-token
	// header.
	AccessToken string `validate:"required"`

	// AccountID is the numeric ID of the account, e.g. "1". It is
	// embedded into every request path.
	AccountID string `validate:"required"`

	// InboxID is the ID of the inbox new contacts and conversations
	// are attached to, e.g. "1".
	InboxID string `validate:"required"`
}

// Validate checks that all required configuration values are present
// and well formed. Failures are reported as *ConfigError.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return configError(fieldErrs[0])
	}
	return &ConfigError{Reason: err.Error()}
}

func configError(f validator.FieldError) *ConfigError {
	switch f.Tag() {
	case "required":
		return &ConfigError{Field: f.Field(), Reason: "is required"}
	case "url":
		return &ConfigError{Field: f.Field(), Reason: "must be a valid URL"}
	default:
		return &ConfigError{Field: f.Field(), Reason: "failed " + f.Tag() + " validation"}
	}
}

// ConfigFromEnv builds a Config from the DOMAIN, API_ACCESS_TOKEN,
// ACCOUNT_ID and INBOX_ID environment variables. Missing variables
// leave the corresponding field empty; call Validate or New to check.
func ConfigFromEnv() Config {
	return Config{
		Domain:      os.Getenv(EnvDomain),
		AccessToken: os.Getenv(EnvAccessToken),
		AccountID:   os.Getenv(EnvAccountID),
		InboxID:     os.Getenv(EnvInboxID),
	}
}
