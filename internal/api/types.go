package api

// CreateContactRequest represents the POST /contacts request body.
type CreateContactRequest struct {
	InboxID          string                 `json:"inbox_id"`
	Name             string                 `json:"name"`
	Email            string                 `json:"email,omitempty"`
	PhoneNumber      string                 `json:"phone_number,omitempty"`
	Identifier       string                 `json:"identifier,omitempty"`
	CustomAttributes map[string]interface{} `json:"custom_attributes,omitempty"`
}

// CreateContactResponse extracts the contact inbox source ID from a
// contact creation response. The source ID ties the contact to the
// inbox and is needed to open conversations. The rest of the payload
// is left unread.
type CreateContactResponse struct {
	Payload struct {
		ContactInbox struct {
			SourceID string `json:"source_id"`
		} `json:"contact_inbox"`
	} `json:"payload"`
}

// CreateConversationResponse extracts the numeric conversation ID from
// a conversation creation response.
type CreateConversationResponse struct {
	ID int `json:"id"`
}

// CreateMessageRequest represents the POST /conversations/{id}/messages
// request body.
type CreateMessageRequest struct {
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
	Private     bool   `json:"private"`
}

// CreateMessageResponse extracts the numeric message ID from a message
// creation response.
type CreateMessageResponse struct {
	ID int `json:"id"`
}

// CreateAgentRequest represents the POST /agents request body.
type CreateAgentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
