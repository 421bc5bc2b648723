package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/itf-dev/schedule-masters/internal/client"
	"github.com/itf-dev/schedule-masters/internal/model/chat"
	"github.com/itf-dev/schedule-masters/internal/model/topic"
	"github.com/itf-dev/schedule-masters/internal/service/session"
	"github.com/itf-dev/schedule-masters/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type chatOptions struct {
	server       string
	topicID      string
	userKey      string
	displayName  string
	dbPath       string
	oneshot      string
	stallTimeout time.Duration
}

func newRootCmd() *cobra.Command {
	var opts chatOptions

	rootCmd := &cobra.Command{
		Use:           "chatctl",
		Short:         "Terminal client for the Schedule Masters chat backend",
		Long:          "chatctl opens a conversation with a Schedule Master: pick a topic, type questions, and watch the reply stream in. Signed-in identities (--user) get their history restored across runs.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd.Context(), opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.server, "server", "http://localhost:8080", "backend base URL")
	rootCmd.Flags().StringVarP(&opts.topicID, "topic", "t", "", "schedule topic id (see 'chatctl topics')")
	rootCmd.Flags().StringVar(&opts.userKey, "user", "", "identity key; omit for a guest session without history")
	rootCmd.Flags().StringVar(&opts.displayName, "name", "", "display name used in the greeting")
	rootCmd.Flags().StringVar(&opts.dbPath, "db", defaultDBPath(), "history database path")
	rootCmd.Flags().StringVar(&opts.oneshot, "oneshot", "", "send a single message and exit")
	rootCmd.Flags().DurationVar(&opts.stallTimeout, "stall-timeout", client.DefaultStallTimeout, "treat a stream with no chunk for this long as failed")
	_ = rootCmd.MarkFlagRequired("topic")

	rootCmd.AddCommand(newTopicsCmd())

	return rootCmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the available schedule topics",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, item := range topic.Seed() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", item.ID, item.Name)
			}
		},
	}
}

func runChat(ctx context.Context, opts chatOptions) error {
	catalog := topic.NewMemoryCatalog(topic.Seed())

	store, err := openStore(opts)
	if err != nil {
		return err
	}
	defer store.Close()

	var identity *session.Identity
	if opts.userKey != "" {
		identity = &session.Identity{Key: opts.userKey, DisplayName: opts.displayName}
	}

	sessions := session.NewService(catalog, store)
	sess, err := sessions.Open(ctx, opts.topicID, identity)
	if errors.Is(err, session.ErrTopicNotFound) {
		return fmt.Errorf("unknown topic %q; run 'chatctl topics' to list them", opts.topicID)
	}
	if err != nil {
		return err
	}

	conversation := client.NewChat(sessions, sess, client.NewTransport(opts.server), opts.stallTimeout)

	for _, msg := range sess.Messages {
		printMessage(msg)
	}

	// Ctrl-C aborts the in-flight stream instead of killing the program.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
			conversation.Cancel()
		}
	}()

	if opts.oneshot != "" {
		return send(ctx, conversation, opts.oneshot)
	}

	fmt.Println(`type your question and press enter ("/quit" to leave)`)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "/quit" {
			return nil
		}

		if err := send(ctx, conversation, line); err != nil {
			return err
		}
	}
}

func send(ctx context.Context, conversation *client.Chat, text string) error {
	printed := 0
	started := false

	outcome, err := conversation.Send(ctx, text, func(partial string) {
		if !started {
			fmt.Print("master> ")
			started = true
		}
		fmt.Print(partial[printed:])
		printed = len(partial)
	})
	if err != nil {
		return err
	}

	switch outcome.State {
	case client.StateCompleted:
		if started {
			fmt.Println()
		}
	case client.StateCancelled:
		if started {
			fmt.Println()
		}
		fmt.Println("(cancelled)")
	case client.StateFailed:
		if started {
			fmt.Println()
		}
		fmt.Printf("master> %s\n", session.FallbackReply)
	}

	return nil
}

func openStore(opts chatOptions) (storage.Store, error) {
	// Guests never persist, so they never need the database.
	if opts.userKey == "" {
		return storage.NewMemoryStore(), nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	return storage.NewSQLiteStore(opts.dbPath)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "schedule-masters.db"
	}
	return filepath.Join(home, ".schedule-masters", "history.db")
}

func printMessage(msg chat.Message) {
	prefix := "master>"
	if msg.Role == chat.RoleUser {
		prefix = "you>"
	}
	fmt.Printf("%s %s\n", prefix, msg.Content)
}
