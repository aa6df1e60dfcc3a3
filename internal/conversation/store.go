package conversation

import (
	"context"
	"sync"

	"propertychat/internal/model"
)

// MaxTurns caps a user's stored conversation history. Older turns are
// evicted front-first once the cap is exceeded.
const MaxTurns = 5

// Store keeps per-user bounded conversation histories. It is injected
// into the chat service so tests can substitute a scoped instance.
type Store interface {
	// Read returns the user's history in order, oldest first. Users with
	// no history yet get an empty slice, never an error.
	Read(ctx context.Context, userID string) ([]model.ConversationTurn, error)

	// Append pushes turns to the end of the user's history, evicting from
	// the front until at most MaxTurns remain. The entry is created lazily
	// on first append.
	Append(ctx context.Context, userID string, turns ...model.ConversationTurn) error
}

// MemoryStore is the default Store: a process-lifetime map guarded by a
// mutex. Nothing survives a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	contexts map[string][]model.ConversationTurn
}

// NewMemoryStore creates an empty in-memory conversation store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		contexts: make(map[string][]model.ConversationTurn),
	}
}

// Read returns a copy of the user's history so callers cannot mutate the
// stored sequence.
func (s *MemoryStore) Read(_ context.Context, userID string) ([]model.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.contexts[userID]
	out := make([]model.ConversationTurn, len(turns))
	copy(out, turns)
	return out, nil
}

// Append adds turns and enforces the FIFO cap
func (s *MemoryStore) Append(_ context.Context, userID string, turns ...model.ConversationTurn) error {
	if len(turns) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append(s.contexts[userID], turns...)
	if len(updated) > MaxTurns {
		updated = updated[len(updated)-MaxTurns:]
	}
	s.contexts[userID] = updated
	return nil
}
