package chatwoot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/v1/accounts/1/conversations/77/messages" {
			t.Errorf("path = %s, want /api/v1/accounts/1/conversations/77/messages", r.URL.Path)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if body["content"] != "Hello!" {
			t.Errorf("content = %v, want Hello!", body["content"])
		}
		if body["message_type"] != "incoming" {
			t.Errorf("message_type = %v, want incoming", body["message_type"])
		}
		if body["private"] != false {
			t.Errorf("private = %v, want false", body["private"])
		}

		w.Write([]byte(`{"id":501,"content":"Hello!"}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	messageID, err := client.CreateMessage(context.Background(), 77, "Hello!")
	if err != nil {
		t.Fatalf("CreateMessage() error = %v", err)
	}
	if messageID != 501 {
		t.Errorf("messageID = %d, want 501", messageID)
	}
}

func TestCreateMessage_OutgoingPrivate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if body["message_type"] != "outgoing" {
			t.Errorf("message_type = %v, want outgoing", body["message_type"])
		}
		if body["private"] != true {
			t.Errorf("private = %v, want true", body["private"])
		}

		w.Write([]byte(`{"id":502}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.CreateMessage(context.Background(), 77, "internal note",
		WithMessageType(MessageOutgoing),
		WithPrivate(),
	)
	if err != nil {
		t.Fatalf("CreateMessage() error = %v", err)
	}
}

func TestListMessages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/v1/accounts/1/conversations/77/messages" {
			t.Errorf("path = %s, want /api/v1/accounts/1/conversations/77/messages", r.URL.Path)
		}
		w.Write([]byte(`{"meta":{},"payload":[{"id":501,"content":"Hello!"}]}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	result, err := client.ListMessages(context.Background(), 77)
	if err != nil {
		t.Fatalf("ListMessages() error = %v", err)
	}

	var doc struct {
		Payload []struct {
			ID int `json:"id"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(result, &doc); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if len(doc.Payload) != 1 || doc.Payload[0].ID != 501 {
		t.Errorf("payload = %s", result)
	}
}
