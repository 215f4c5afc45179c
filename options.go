package chatwoot

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ConversationStatus is the lifecycle state of a conversation.
type ConversationStatus string

const (
	// StatusOpen marks a conversation as awaiting a reply.
	StatusOpen ConversationStatus = "open"
	// StatusResolved marks a conversation as finished.
	StatusResolved ConversationStatus = "resolved"
	// StatusPending marks a conversation as waiting on a bot or agent handoff.
	StatusPending ConversationStatus = "pending"
)

// MessageType is the direction of a message within a conversation.
type MessageType string

const (
	// MessageIncoming is a message authored by the contact.
	MessageIncoming MessageType = "incoming"
	// MessageOutgoing is a message authored by an agent.
	MessageOutgoing MessageType = "outgoing"
)

// AgentRole is the permission level of an account agent.
type AgentRole string

const (
	// RoleAgent is the default agent role.
	RoleAgent AgentRole = "agent"
	// RoleAdministrator grants account administration access.
	RoleAdministrator AgentRole = "administrator"
)

// DefaultTimeout is the HTTP timeout applied when none is configured.
const DefaultTimeout = 30 * time.Second

// clientConfig holds construction-time settings for the client.
type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     zerolog.Logger
}

// contactConfig holds per-call settings for contact creation.
type contactConfig struct {
	identifier       string
	customAttributes map[string]interface{}
}

// searchConfig holds per-call settings for contact search.
type searchConfig struct {
	page int
}

// conversationConfig holds per-call settings for conversation creation.
type conversationConfig struct {
	contactID            int
	assigneeID           int
	teamID               int
	status               ConversationStatus
	additionalAttributes map[string]interface{}
	extra                map[string]interface{}
}

// messageConfig holds per-call settings for message creation.
type messageConfig struct {
	messageType MessageType
	private     bool
}

// agentConfig holds per-call settings for agent creation.
type agentConfig struct {
	role AgentRole
}

// Option configures the client.
type Option func(*clientConfig)

// ContactOption configures contact creation.
type ContactOption func(*contactConfig)

// SearchOption configures contact search.
type SearchOption func(*searchConfig)

// ConversationOption configures conversation creation.
type ConversationOption func(*conversationConfig)

// MessageOption configures message creation.
type MessageOption func(*messageConfig)

// AgentOption configures agent creation.
type AgentOption func(*agentConfig)

// WithHTTPClient sets a custom HTTP client. When set, WithTimeout has
// no effect; configure the timeout on the supplied client instead.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP timeout for API calls.
// Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for debug-level request logging.
// Default: a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithIdentifier sets a unique identifier for the contact in an
// external system.
func WithIdentifier(identifier string) ContactOption {
	return func(c *contactConfig) {
		c.identifier = identifier
	}
}

// WithCustomAttributes attaches free-form attributes to the contact,
// e.g. {"type": "customer", "age": 30}.
func WithCustomAttributes(attrs map[string]interface{}) ContactOption {
	return func(c *contactConfig) {
		c.customAttributes = attrs
	}
}

// WithPage selects the result page to fetch. Pages are 1-based.
// Default: 1. Only the requested page is fetched.
func WithPage(page int) SearchOption {
	return func(c *searchConfig) {
		c.page = page
	}
}

// WithContactID sets the contact the conversation is created for.
func WithContactID(contactID int) ConversationOption {
	return func(c *conversationConfig) {
		c.contactID = contactID
	}
}

// WithAssigneeID assigns the conversation to an agent.
func WithAssigneeID(assigneeID int) ConversationOption {
	return func(c *conversationConfig) {
		c.assigneeID = assigneeID
	}
}

// WithTeamID assigns the conversation to a team.
func WithTeamID(teamID int) ConversationOption {
	return func(c *conversationConfig) {
		c.teamID = teamID
	}
}

// WithStatus sets the initial conversation status.
// Default: StatusOpen.
func WithStatus(status ConversationStatus) ConversationOption {
	return func(c *conversationConfig) {
		c.status = status
	}
}

// WithAdditionalAttributes attaches attributes like browser or referer
// information to the conversation.
func WithAdditionalAttributes(attrs map[string]interface{}) ConversationOption {
	return func(c *conversationConfig) {
		c.additionalAttributes = attrs
	}
}

// WithConversationField sets an arbitrary extra field on the creation
// payload. Fields set this way override the documented ones.
func WithConversationField(key string, value interface{}) ConversationOption {
	return func(c *conversationConfig) {
		if c.extra == nil {
			c.extra = make(map[string]interface{})
		}
		c.extra[key] = value
	}
}

// WithMessageType sets the message direction.
// Default: MessageIncoming.
func WithMessageType(messageType MessageType) MessageOption {
	return func(c *messageConfig) {
		c.messageType = messageType
	}
}

// WithPrivate marks the message as a private note, visible to agents only.
func WithPrivate() MessageOption {
	return func(c *messageConfig) {
		c.private = true
	}
}

// WithRole sets the agent role.
// Default: RoleAgent.
func WithRole(role AgentRole) AgentOption {
	return func(c *agentConfig) {
		c.role = role
	}
}
