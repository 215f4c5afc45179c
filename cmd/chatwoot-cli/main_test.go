package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	rc := DefaultConfig()

	if rc.Stdout != os.Stdout {
		t.Error("DefaultConfig().Stdout should be os.Stdout")
	}
	if rc.Stderr != os.Stderr {
		t.Error("DefaultConfig().Stderr should be os.Stderr")
	}
	if !rc.Spinner {
		t.Error("DefaultConfig().Spinner should be enabled")
	}
}

// testRunConfig captures output and disables the spinner.
func testRunConfig() (RunConfig, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return RunConfig{Stdout: &stdout, Stderr: &stderr, Spinner: false}, &stdout, &stderr
}

// setCredentials points the CLI at the given test server.
func setCredentials(t *testing.T, serverURL string) {
	t.Helper()
	t.Setenv("DOMAIN", serverURL)
	t.Setenv("API_ACCESS_TOKEN", "cli-token")
	t.Setenv("ACCOUNT_ID", "1")
	t.Setenv("INBOX_ID", "2")
}

func TestRun_NoCommand(t *testing.T) {
	rc, _, _ := testRunConfig()
	err := run([]string{"chatwoot-cli"}, rc)
	if err == nil {
		t.Fatal("run() without a command should fail")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	setCredentials(t, "https://chatwoot.example.com")

	rc, _, _ := testRunConfig()
	err := run([]string{"chatwoot-cli", "bogus"}, rc)
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("run() error = %v, want unknown command", err)
	}
}

func TestRun_MissingCredentials(t *testing.T) {
	t.Setenv("DOMAIN", "")
	t.Setenv("API_ACCESS_TOKEN", "")
	t.Setenv("ACCOUNT_ID", "")
	t.Setenv("INBOX_ID", "")

	rc, _, _ := testRunConfig()
	err := run([]string{"chatwoot-cli", "inboxes"}, rc)
	if err == nil {
		t.Fatal("run() without credentials should fail")
	}
}

func TestRun_Inboxes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts/1/inboxes" {
			t.Errorf("path = %s, want /api/v1/accounts/1/inboxes", r.URL.Path)
		}
		if got := r.Header.Get("api-access-token"); got != "cli-token" {
			t.Errorf("api-access-token = %s, want cli-token", got)
		}
		w.Write([]byte(`{"payload":[{"id":2,"name":"Support"}]}`))
	}))
	defer server.Close()
	setCredentials(t, server.URL)

	rc, stdout, _ := testRunConfig()
	if err := run([]string{"chatwoot-cli", "inboxes"}, rc); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	// Output is re-indented JSON.
	if !strings.Contains(stdout.String(), "\"name\": \"Support\"") {
		t.Errorf("stdout = %s", stdout.String())
	}
}

func TestRun_ContactsSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts/1/contacts/search" {
			t.Errorf("path = %s, want /api/v1/accounts/1/contacts/search", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "henrique" {
			t.Errorf("q = %s, want henrique", got)
		}
		if got := r.URL.Query().Get("page"); got != "3" {
			t.Errorf("page = %s, want 3", got)
		}
		w.Write([]byte(`{"payload":[{"id":1,"name":"henrique"}]}`))
	}))
	defer server.Close()
	setCredentials(t, server.URL)

	rc, stdout, _ := testRunConfig()
	err := run([]string{"chatwoot-cli", "contacts", "search", "-q", "henrique", "-page", "3"}, rc)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "\"id\": 1") {
		t.Errorf("stdout = %s", stdout.String())
	}
}

func TestRun_ContactsSearch_RequiresQuery(t *testing.T) {
	setCredentials(t, "https://chatwoot.example.com")

	rc, _, _ := testRunConfig()
	err := run([]string{"chatwoot-cli", "contacts", "search"}, rc)
	if err == nil {
		t.Fatal("contacts search without -q should fail")
	}
}

func TestRun_ContactsCreate_GeneratesIdentifier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		identifier, _ := body["identifier"].(string)
		if identifier == "" {
			t.Error("identifier should be generated when not given")
		}
		w.Write([]byte(`{"payload":{"contact_inbox":{"source_id":"src-cli"}}}`))
	}))
	defer server.Close()
	setCredentials(t, server.URL)

	rc, stdout, _ := testRunConfig()
	err := run([]string{"chatwoot-cli", "contacts", "create", "-name", "henrique"}, rc)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "source_id: src-cli") {
		t.Errorf("stdout = %s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "identifier: ") {
		t.Errorf("stdout = %s", stdout.String())
	}
}

func TestRun_MessagesSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts/1/conversations/77/messages" {
			t.Errorf("path = %s, want /api/v1/accounts/1/conversations/77/messages", r.URL.Path)
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if body["content"] != "hello" {
			t.Errorf("content = %v, want hello", body["content"])
		}
		if body["message_type"] != "outgoing" {
			t.Errorf("message_type = %v, want outgoing", body["message_type"])
		}
		w.Write([]byte(`{"id":501}`))
	}))
	defer server.Close()
	setCredentials(t, server.URL)

	rc, stdout, _ := testRunConfig()
	err := run([]string{"chatwoot-cli", "messages", "send",
		"-conversation", "77", "-content", "hello", "-type", "outgoing"}, rc)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "message_id: 501") {
		t.Errorf("stdout = %s", stdout.String())
	}
}

func TestRun_ConfigProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("api-access-token"); got != "profile-token" {
			t.Errorf("api-access-token = %s, want profile-token", got)
		}
		if r.URL.Path != "/api/v1/accounts/9/inboxes" {
			t.Errorf("path = %s, want /api/v1/accounts/9/inboxes", r.URL.Path)
		}
		w.Write([]byte(`{"payload":[]}`))
	}))
	defer server.Close()

	// The profile overrides everything the environment provides.
	setCredentials(t, "https://wrong.example.com")

	configPath := filepath.Join(t.TempDir(), "profile.yaml")
	configData := "domain: " + server.URL + "\n" +
		"access_token: profile-token\n" +
		"account_id: \"9\"\n" +
		"inbox_id: \"2\"\n"
	if err := os.WriteFile(configPath, []byte(configData), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	rc, _, _ := testRunConfig()
	err := run([]string{"chatwoot-cli", "-config", configPath, "inboxes"}, rc)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
}

func TestRun_ConfigProfile_NotFound(t *testing.T) {
	setCredentials(t, "https://chatwoot.example.com")

	rc, _, _ := testRunConfig()
	err := run([]string{"chatwoot-cli", "-config", "/nonexistent/profile.yaml", "inboxes"}, rc)
	if err == nil {
		t.Fatal("run() with a missing config file should fail")
	}
}

func TestPrintJSON_NotIndentable(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, []byte("not json")); err != nil {
		t.Fatalf("printJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), "not json") {
		t.Errorf("output = %s", buf.String())
	}
}
