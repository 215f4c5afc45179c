// Command chatwoot-cli drives the Chatwoot account API from the
// terminal: contact search and creation, conversations, messages,
// inboxes and agents.
//
// Credentials come from a YAML profile (-config), a .env file, or the
// process environment, in that order of precedence.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	chatwoot "github.com/santana-ai/chatwoot-go"
)

// RunConfig carries the process dependencies so tests can substitute them.
type RunConfig struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Spinner bool
}

// DefaultConfig returns the RunConfig used by the real binary.
func DefaultConfig() RunConfig {
	return RunConfig{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Spinner: true,
	}
}

// profile is the YAML file format accepted by -config. Values present
// in the file override the environment.
type profile struct {
	Domain      string `yaml:"domain"`
	AccessToken string `yaml:"access_token"`
	AccountID   string `yaml:"account_id"`
	InboxID     string `yaml:"inbox_id"`
}

func run(args []string, rc RunConfig) error {
	fs := flag.NewFlagSet("chatwoot-cli", flag.ContinueOnError)
	fs.SetOutput(rc.Stderr)
	configPath := fs.String("config", "", "YAML profile with domain, access_token, account_id, inbox_id")
	verbose := fs.Bool("v", false, "Enable debug request logging")
	timeout := fs.Duration("timeout", 60*time.Second, "Overall timeout for the command")
	fs.Usage = func() { printUsage(rc.Stderr) }
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 1 {
		printUsage(rc.Stderr)
		return fmt.Errorf("no command given")
	}

	client, err := buildClient(*configPath, *verbose, rc)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch rest[0] {
	case "contacts":
		return cmdContacts(ctx, client, rest[1:], rc)
	case "conversations":
		return cmdConversations(ctx, client, rest[1:], rc)
	case "messages":
		return cmdMessages(ctx, client, rest[1:], rc)
	case "inboxes":
		return cmdInboxes(ctx, client, rc)
	case "agents":
		return cmdAgents(ctx, client, rest[1:], rc)
	default:
		printUsage(rc.Stderr)
		return fmt.Errorf("unknown command: %s", rest[0])
	}
}

// buildClient resolves credentials and constructs the SDK client.
// Resolution order: -config profile, .env file, process environment.
func buildClient(configPath string, verbose bool, rc RunConfig) (*chatwoot.Client, error) {
	// Load .env into the environment when present. Existing variables win.
	_ = godotenv.Load()

	cfg := chatwoot.ConfigFromEnv()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		var p profile
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if p.Domain != "" {
			cfg.Domain = p.Domain
		}
		if p.AccessToken != "" {
			cfg.AccessToken = p.AccessToken
		}
		if p.AccountID != "" {
			cfg.AccountID = p.AccountID
		}
		if p.InboxID != "" {
			cfg.InboxID = p.InboxID
		}
	}

	opts := []chatwoot.Option{
		chatwoot.WithUserAgent("chatwoot-cli"),
	}
	if verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: rc.Stderr}).
			With().Timestamp().Logger().
			Level(zerolog.DebugLevel)
		opts = append(opts, chatwoot.WithLogger(logger))
	}

	return chatwoot.New(cfg, opts...)
}

func cmdContacts(ctx context.Context, client *chatwoot.Client, args []string, rc RunConfig) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: chatwoot-cli contacts search|create|show [flags]")
	}

	switch args[0] {
	case "search":
		fs := flag.NewFlagSet("contacts search", flag.ContinueOnError)
		fs.SetOutput(rc.Stderr)
		query := fs.String("q", "", "Search query (name, identifier, email or phone)")
		page := fs.Int("page", 1, "Result page to fetch")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *query == "" {
			return fmt.Errorf("usage: chatwoot-cli contacts search -q <query> [-page N]")
		}

		var result json.RawMessage
		err := rc.call(func() error {
			var err error
			result, err = client.SearchContacts(ctx, *query, chatwoot.WithPage(*page))
			return err
		})
		if err != nil {
			return err
		}
		return printJSON(rc.Stdout, result)

	case "create":
		fs := flag.NewFlagSet("contacts create", flag.ContinueOnError)
		fs.SetOutput(rc.Stderr)
		name := fs.String("name", "", "Contact name")
		email := fs.String("email", "", "Contact email")
		phone := fs.String("phone", "", "Contact phone number")
		identifier := fs.String("identifier", "", "External identifier (generated when empty)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("usage: chatwoot-cli contacts create -name <name> [-email E] [-phone P] [-identifier I]")
		}

		id := *identifier
		if id == "" {
			id = uuid.NewString()
		}

		var sourceID string
		err := rc.call(func() error {
			var err error
			sourceID, err = client.CreateContact(ctx, *name, *email, *phone,
				chatwoot.WithIdentifier(id))
			return err
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(rc.Stdout, "source_id: %s\nidentifier: %s\n", sourceID, id)
		return nil

	case "show":
		fs := flag.NewFlagSet("contacts show", flag.ContinueOnError)
		fs.SetOutput(rc.Stderr)
		contactID := fs.Int("id", 0, "Numeric contact ID")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *contactID == 0 {
			return fmt.Errorf("usage: chatwoot-cli contacts show -id <contact-id>")
		}

		var result json.RawMessage
		err := rc.call(func() error {
			var err error
			result, err = client.GetContact(ctx, *contactID)
			return err
		})
		if err != nil {
			return err
		}
		return printJSON(rc.Stdout, result)

	default:
		return fmt.Errorf("unknown contacts subcommand: %s", args[0])
	}
}

func cmdConversations(ctx context.Context, client *chatwoot.Client, args []string, rc RunConfig) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: chatwoot-cli conversations new|show|toggle [flags]")
	}

	switch args[0] {
	case "new":
		fs := flag.NewFlagSet("conversations new", flag.ContinueOnError)
		fs.SetOutput(rc.Stderr)
		sourceID := fs.String("source-id", "", "Contact source ID from contacts create")
		status := fs.String("status", string(chatwoot.StatusOpen), "Initial status: open, resolved or pending")
		assignee := fs.Int("assignee", 0, "Agent ID to assign the conversation to")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *sourceID == "" {
			return fmt.Errorf("usage: chatwoot-cli conversations new -source-id <id> [-status S] [-assignee A]")
		}

		opts := []chatwoot.ConversationOption{
			chatwoot.WithStatus(chatwoot.ConversationStatus(*status)),
		}
		if *assignee != 0 {
			opts = append(opts, chatwoot.WithAssigneeID(*assignee))
		}

		var conversationID int
		err := rc.call(func() error {
			var err error
			conversationID, err = client.CreateConversation(ctx, *sourceID, opts...)
			return err
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(rc.Stdout, "conversation_id: %d\n", conversationID)
		return nil

	case "show":
		fs := flag.NewFlagSet("conversations show", flag.ContinueOnError)
		fs.SetOutput(rc.Stderr)
		conversationID := fs.Int("id", 0, "Numeric conversation ID")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *conversationID == 0 {
			return fmt.Errorf("usage: chatwoot-cli conversations show -id <conversation-id>")
		}

		var result json.RawMessage
		err := rc.call(func() error {
			var err error
			result, err = client.GetConversation(ctx, *conversationID)
			return err
		})
		if err != nil {
			return err
		}
		return printJSON(rc.Stdout, result)

	case "toggle":
		fs := flag.NewFlagSet("conversations toggle", flag.ContinueOnError)
		fs.SetOutput(rc.Stderr)
		conversationID := fs.Int("id", 0, "Numeric conversation ID")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *conversationID == 0 {
			return fmt.Errorf("usage: chatwoot-cli conversations toggle -id <conversation-id>")
		}

		var result json.RawMessage
		err := rc.call(func() error {
			var err error
			result, err = client.ToggleConversationStatus(ctx, *conversationID)
			return err
		})
		if err != nil {
			return err
		}
		return printJSON(rc.Stdout, result)

	default:
		return fmt.Errorf("unknown conversations subcommand: %s", args[0])
	}
}

func cmdMessages(ctx context.Context, client *chatwoot.Client, args []string, rc RunConfig) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: chatwoot-cli messages send|list [flags]")
	}

	switch args[0] {
	case "send":
		fs := flag.NewFlagSet("messages send", flag.ContinueOnError)
		fs.SetOutput(rc.Stderr)
		conversationID := fs.Int("conversation", 0, "Numeric conversation ID")
		content := fs.String("content", "", "Message text")
		messageType := fs.String("type", string(chatwoot.MessageIncoming), "Message direction: incoming or outgoing")
		private := fs.Bool("private", false, "Send as a private note")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *conversationID == 0 || *content == "" {
			return fmt.Errorf("usage: chatwoot-cli messages send -conversation <id> -content <text> [-type T] [-private]")
		}

		opts := []chatwoot.MessageOption{
			chatwoot.WithMessageType(chatwoot.MessageType(*messageType)),
		}
		if *private {
			opts = append(opts, chatwoot.WithPrivate())
		}

		var messageID int
		err := rc.call(func() error {
			var err error
			messageID, err = client.CreateMessage(ctx, *conversationID, *content, opts...)
			return err
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(rc.Stdout, "message_id: %d\n", messageID)
		return nil

	case "list":
		fs := flag.NewFlagSet("messages list", flag.ContinueOnError)
		fs.SetOutput(rc.Stderr)
		conversationID := fs.Int("conversation", 0, "Numeric conversation ID")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *conversationID == 0 {
			return fmt.Errorf("usage: chatwoot-cli messages list -conversation <id>")
		}

		var result json.RawMessage
		err := rc.call(func() error {
			var err error
			result, err = client.ListMessages(ctx, *conversationID)
			return err
		})
		if err != nil {
			return err
		}
		return printJSON(rc.Stdout, result)

	default:
		return fmt.Errorf("unknown messages subcommand: %s", args[0])
	}
}

func cmdInboxes(ctx context.Context, client *chatwoot.Client, rc RunConfig) error {
	var result json.RawMessage
	err := rc.call(func() error {
		var err error
		result, err = client.ListInboxes(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return printJSON(rc.Stdout, result)
}

func cmdAgents(ctx context.Context, client *chatwoot.Client, args []string, rc RunConfig) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: chatwoot-cli agents list|create [flags]")
	}

	switch args[0] {
	case "list":
		var result json.RawMessage
		err := rc.call(func() error {
			var err error
			result, err = client.ListAgents(ctx)
			return err
		})
		if err != nil {
			return err
		}
		return printJSON(rc.Stdout, result)

	case "create":
		fs := flag.NewFlagSet("agents create", flag.ContinueOnError)
		fs.SetOutput(rc.Stderr)
		name := fs.String("name", "", "Agent name")
		email := fs.String("email", "", "Agent email")
		role := fs.String("role", string(chatwoot.RoleAgent), "Agent role: agent or administrator")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *name == "" || *email == "" {
			return fmt.Errorf("usage: chatwoot-cli agents create -name <name> -email <email> [-role R]")
		}

		var result json.RawMessage
		err := rc.call(func() error {
			var err error
			result, err = client.CreateAgent(ctx, *name, *email,
				chatwoot.WithRole(chatwoot.AgentRole(*role)))
			return err
		})
		if err != nil {
			return err
		}
		return printJSON(rc.Stdout, result)

	default:
		return fmt.Errorf("unknown agents subcommand: %s", args[0])
	}
}

// call runs fn with a spinner on the terminal when enabled.
func (rc RunConfig) call(fn func() error) error {
	if !rc.Spinner {
		return fn()
	}
	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(rc.Stderr))
	spin.Start()
	defer spin.Stop()
	return fn()
}

func printJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		// Not a JSON document we can re-indent; print as-is.
		fmt.Fprintln(w, string(raw))
		return nil
	}
	fmt.Fprintln(w, buf.String())
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: chatwoot-cli [-config FILE] [-v] [-timeout D] <command> [flags]

Commands:
  contacts search -q <query> [-page N]
  contacts create -name <name> [-email E] [-phone P] [-identifier I]
  contacts show -id <contact-id>
  conversations new -source-id <id> [-status S] [-assignee A]
  conversations show -id <conversation-id>
  conversations toggle -id <conversation-id>
  messages send -conversation <id> -content <text> [-type T] [-private]
  messages list -conversation <id>
  inboxes
  agents list
  agents create -name <name> -email <email> [-role R]

Credentials resolve from -config, then a .env file, then the DOMAIN,
API_ACCESS_TOKEN, ACCOUNT_ID and INBOX_ID environment variables.`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
