package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/itf-dev/schedule-masters/internal/model/chat"
	"github.com/itf-dev/schedule-masters/internal/model/topic"
	"github.com/itf-dev/schedule-masters/internal/service/session"
	"github.com/itf-dev/schedule-masters/internal/storage"
)

func newTestChat(t *testing.T, serverURL string) *Chat {
	t.Helper()

	sessions := session.NewService(topic.NewMemoryCatalog(topic.Seed()), storage.NewMemoryStore())
	sess, err := sessions.Open(context.Background(), "siwes", nil)
	require.NoError(t, err)

	return NewChat(sessions, sess, NewTransport(serverURL), 0)
}

func TestChatSendPairsUserAndAssistant(t *testing.T) {
	srv := chunkServer(t, "An industrial ", "training scheme.")
	c := newTestChat(t, srv.URL)
	before := len(c.Session().Messages)

	outcome, err := c.Send(context.Background(), "What is SIWES?", nil)
	require.NoError(t, err)
	require.Equal(t, StateCompleted, outcome.State)

	messages := c.Session().Messages
	require.Len(t, messages, before+2)

	userMsg := messages[len(messages)-2]
	assistantMsg := messages[len(messages)-1]
	require.Equal(t, chat.RoleUser, userMsg.Role)
	require.Equal(t, "What is SIWES?", userMsg.Content)
	require.Equal(t, chat.RoleAssistant, assistantMsg.Role)
	require.Equal(t, "An industrial training scheme.", assistantMsg.Content)
	require.False(t, assistantMsg.CreatedAt.Before(userMsg.CreatedAt))
}

func TestChatSendWhitespaceIsIgnored(t *testing.T) {
	srv := chunkServer(t, "unused")
	c := newTestChat(t, srv.URL)
	before := len(c.Session().Messages)

	outcome, err := c.Send(context.Background(), "  \n ", nil)
	require.NoError(t, err)
	require.Equal(t, StateIdle, outcome.State)
	require.Len(t, c.Session().Messages, before)
}

func TestChatSendFailureAppendsFallback(t *testing.T) {
	srv := errorServer(t)
	c := newTestChat(t, srv.URL)
	before := len(c.Session().Messages)

	outcome, err := c.Send(context.Background(), "What is SIWES?", nil)
	require.NoError(t, err)
	require.Equal(t, StateFailed, outcome.State)

	messages := c.Session().Messages
	require.Len(t, messages, before+2)
	require.Equal(t, session.FallbackReply, messages[len(messages)-1].Content)
	require.Equal(t, chat.RoleAssistant, messages[len(messages)-1].Role)
}

func TestChatSendCancelAppendsNothing(t *testing.T) {
	srv := hangingServer(t)
	c := newTestChat(t, srv.URL)
	before := len(c.Session().Messages)

	type result struct {
		outcome Outcome
		err     error
	}
	done := make(chan result, 1)
	go func() {
		outcome, err := c.Send(context.Background(), "What is SIWES?", nil)
		done <- result{outcome, err}
	}()

	require.Eventually(t, c.Busy, time.Second, 5*time.Millisecond)
	c.Cancel()

	got := <-done
	require.NoError(t, got.err)
	require.Equal(t, StateCancelled, got.outcome.State)

	// The user turn stays; no partial assistant message is created.
	messages := c.Session().Messages
	require.Len(t, messages, before+1)
	require.Equal(t, chat.RoleUser, messages[len(messages)-1].Role)
}

func TestChatSendEmptyCompletionAppendsNothing(t *testing.T) {
	srv := chunkServer(t)
	c := newTestChat(t, srv.URL)
	before := len(c.Session().Messages)

	outcome, err := c.Send(context.Background(), "What is SIWES?", nil)
	require.NoError(t, err)
	require.Equal(t, StateCompleted, outcome.State)
	require.Len(t, c.Session().Messages, before+1)
}
