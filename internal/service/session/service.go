package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/itf-dev/schedule-masters/internal/model/chat"
	"github.com/itf-dev/schedule-masters/internal/model/topic"
	"github.com/itf-dev/schedule-masters/internal/storage"
)

// ErrTopicNotFound is returned by Open for a topic the catalog does not know.
// Callers render a not-found state rather than opening a transcript.
var ErrTopicNotFound = errors.New("topic not found")

// FallbackReply replaces the assistant turn when a completion fails, so the
// transcript stays readable.
const FallbackReply = "Sorry, I'm having trouble responding right now. Please try again."

// Service owns session transcripts: it seeds the welcome message, appends
// turns, and persists the whole transcript for authenticated identities.
type Service struct {
	catalog topic.Catalog
	store   storage.Store
}

// NewService creates the session service around an injected store.
func NewService(catalog topic.Catalog, store storage.Store) *Service {
	return &Service{catalog: catalog, store: store}
}

// Open restores the persisted transcript for (topicID, identity) when one
// exists, or seeds a fresh session with a single welcome message.
func (s *Service) Open(ctx context.Context, topicID string, identity *Identity) (*Session, error) {
	t, ok := s.catalog.Lookup(topicID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTopicNotFound, topicID)
	}

	sess := &Session{TopicID: topicID, Identity: identity}

	if sess.Authenticated() {
		messages, found, err := s.store.Load(ctx, storage.Key{TopicID: topicID, IdentityKey: identity.Key})
		if err != nil {
			log.Printf("[session] failed to restore transcript for topic=%s: %v", topicID, err)
		} else if found {
			sess.Messages = messages
			return sess, nil
		}
	}

	sess.Messages = []chat.Message{newMessage(chat.RoleAssistant, welcomeText(t, identity))}
	return sess, nil
}

// AppendUser appends a user turn and persists. Input that is empty after
// trimming is a no-op and the returned ok is false.
func (s *Service) AppendUser(ctx context.Context, sess *Session, text string) (chat.Message, bool) {
	if strings.TrimSpace(text) == "" {
		return chat.Message{}, false
	}

	msg := newMessage(chat.RoleUser, text)
	sess.Messages = append(sess.Messages, msg)
	s.persist(ctx, sess)
	return msg, true
}

// AppendAssistant appends an assistant turn and persists. Only the terminal
// outcomes of a stream call this.
func (s *Service) AppendAssistant(ctx context.Context, sess *Session, text string) chat.Message {
	msg := newMessage(chat.RoleAssistant, text)
	sess.Messages = append(sess.Messages, msg)
	s.persist(ctx, sess)
	return msg
}

// persist overwrites the stored transcript for authenticated sessions. A
// write failure is logged and swallowed; the session carries on in memory.
func (s *Service) persist(ctx context.Context, sess *Session) {
	if !sess.Authenticated() {
		return
	}

	key := storage.Key{TopicID: sess.TopicID, IdentityKey: sess.Identity.Key}
	if err := s.store.Save(ctx, key, sess.Messages); err != nil {
		log.Printf("[session] failed to persist transcript for topic=%s: %v", sess.TopicID, err)
	}
}

func newMessage(role chat.Role, content string) chat.Message {
	return chat.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// welcomeText builds the seeded greeting from the topic persona and, when
// signed in, the caller's display name.
func welcomeText(t topic.Topic, identity *Identity) string {
	var b strings.Builder

	b.WriteString("Hello")
	if identity != nil && identity.DisplayName != "" {
		b.WriteString(" ")
		b.WriteString(identity.DisplayName)
	}
	b.WriteString("! I'm your ")
	b.WriteString(t.Name)
	b.WriteString(" Schedule Master. I'm here to help you with all aspects of ")
	b.WriteString(t.Acronym)
	b.WriteString(", including procedures, guidelines, and best practices. ")
	if identity == nil || identity.Key == "" {
		b.WriteString("Note: As a guest user, your chat history will not be saved. Consider logging in for a better experience. ")
	}
	b.WriteString("How can I assist you today?")

	return b.String()
}
