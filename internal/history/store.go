// Package history persists completed conversations. The store is
// best-effort: the conversation flow never fails because history could not
// be read or written.
package history

import (
	"sort"
	"sync"

	"github.com/saya-chit/saya/internal/chat"
)

// Store lists, saves (upsert by id) and clears completed conversations.
// List returns conversations newest-first by timestamp.
type Store interface {
	List() ([]chat.Conversation, error)
	Save(c chat.Conversation) error
	Clear() error
}

// MemStore is an in-memory Store, used in tests and as the fallback when
// the on-disk store cannot be opened.
type MemStore struct {
	mu            sync.Mutex
	conversations []chat.Conversation
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// List returns copies of the stored conversations newest-first.
func (s *MemStore) List() ([]chat.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]chat.Conversation(nil), s.conversations...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out, nil
}

// Save upserts the conversation by id.
func (s *MemStore) Save(c chat.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.conversations {
		if s.conversations[i].ID == c.ID {
			s.conversations[i] = c
			return nil
		}
	}
	s.conversations = append(s.conversations, c)
	return nil
}

// Clear removes all stored conversations.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = nil
	return nil
}
