// Package chatwoot provides a Go client SDK for the Chatwoot
// customer-messaging platform's application API.
//
// The client is configured with a domain, an access token, an account
// ID and an inbox ID, and exposes the account-scoped operations for
// contacts, conversations, messages, inboxes and agents. Every call
// issues exactly one HTTP request; responses come back as raw JSON and
// failures as typed, classified errors.
//
// Basic usage:
//
//	client, err := chatwoot.New(chatwoot.Config{
//	    Domain:      "https://chatwoot.example.com",
//	    AccessToken: "your-access-token",
//	    AccountID:   "1",
//	    InboxID:     "1",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create a contact and open a conversation for it
//	sourceID, err := client.CreateContact(ctx, "henrique", "henrique@example.com", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conversationID, err := client.CreateConversation(ctx, sourceID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_, err = client.CreateMessage(ctx, conversationID, "Hello!")
//	if err != nil {
//	    log.Fatal(err)
//	}
package chatwoot
