package leaderboard

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps entries for the lifetime of the process
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (m *MemoryStore) Append(ctx context.Context, name string, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e, err := newEntry(name, score, m.now())
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.entries = append(m.entries, e)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) TopN(ctx context.Context, n int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return top(m.entries, n), nil
}

// Len returns the number of recorded entries
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
