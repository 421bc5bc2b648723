package client

import (
	"context"
	"time"

	"github.com/itf-dev/schedule-masters/internal/service/session"
)

// Chat drives one conversation: it appends the user turn, streams the reply,
// and commits the terminal outcome so a user message is never left without a
// paired assistant reply (or the fixed fallback).
type Chat struct {
	sessions *session.Service
	sess     *session.Session
	stream   *Reassembler
}

// NewChat binds a session to a transport. stallTimeout <= 0 selects the
// default.
func NewChat(sessions *session.Service, sess *session.Session, transport *Transport, stallTimeout time.Duration) *Chat {
	return &Chat{
		sessions: sessions,
		sess:     sess,
		stream:   NewReassembler(transport, stallTimeout),
	}
}

// Session exposes the underlying transcript for rendering.
func (c *Chat) Session() *session.Session {
	return c.sess
}

// Busy reports whether a completion stream is in flight. Submission is
// rejected, not queued, while busy.
func (c *Chat) Busy() bool {
	return c.stream.State() == StateStreaming
}

// Cancel aborts the in-flight stream, if any.
func (c *Chat) Cancel() {
	c.stream.Cancel()
}

// Send submits one user turn. Whitespace-only input is silently ignored: no
// message is created and no request is sent. The returned outcome reflects
// the stream's terminal state.
func (c *Chat) Send(ctx context.Context, text string, onDelta func(partial string)) (Outcome, error) {
	if c.Busy() {
		return Outcome{}, ErrStreamActive
	}

	if _, ok := c.sessions.AppendUser(ctx, c.sess, text); !ok {
		return Outcome{State: StateIdle}, nil
	}

	outcome, err := c.stream.Run(ctx, c.sess.TopicID, c.sess.Messages, onDelta)
	if err != nil {
		return Outcome{}, err
	}

	switch outcome.State {
	case StateCompleted:
		// An empty accumulation terminates cleanly with no placeholder.
		if outcome.Text != "" {
			c.sessions.AppendAssistant(ctx, c.sess, outcome.Text)
		}
	case StateFailed:
		c.sessions.AppendAssistant(ctx, c.sess, session.FallbackReply)
	}

	return outcome, nil
}
