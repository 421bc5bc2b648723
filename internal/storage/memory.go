package storage

import (
	"context"
	"sync"

	"github.com/itf-dev/schedule-masters/internal/model/chat"
)

// MemoryStore keeps transcripts in process memory. Guest sessions and tests
// use it; contents are lost when the process exits.
type MemoryStore struct {
	mu          sync.RWMutex
	transcripts map[Key][]chat.Message
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{transcripts: make(map[Key][]chat.Message)}
}

// Load returns a copy of the transcript stored for the key, if any.
func (s *MemoryStore) Load(_ context.Context, key Key) ([]chat.Message, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.transcripts[key]
	if !ok {
		return nil, false, nil
	}

	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, true, nil
}

// Save overwrites the transcript stored for the key.
func (s *MemoryStore) Save(_ context.Context, key Key, messages []chat.Message) error {
	copied := make([]chat.Message, len(messages))
	copy(copied, messages)

	s.mu.Lock()
	s.transcripts[key] = copied
	s.mu.Unlock()
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
