// Package storage persists conversation transcripts for authenticated
// identities. Writes replace the whole transcript for a key; last writer wins.
package storage

import (
	"context"

	"github.com/itf-dev/schedule-masters/internal/model/chat"
)

// Key namespaces one persisted transcript.
type Key struct {
	TopicID     string
	IdentityKey string
}

// Store is the injected persistence boundary. A missing key is a normal
// outcome reported through ok=false, never an error.
type Store interface {
	Load(ctx context.Context, key Key) (messages []chat.Message, ok bool, err error)
	Save(ctx context.Context, key Key, messages []chat.Message) error
	Close() error
}
