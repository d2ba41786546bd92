package audit

import (
	"context"
	"sync"
)

// MemoryStore keeps the last 50 events in process. Used by default and in tests.
type MemoryStore struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{events: []Event{}}
}

func (m *MemoryStore) Record(_ context.Context, e Event) (Event, error) {
	e = stamp(e)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, e)
	if len(m.events) > maxLimit {
		m.events = m.events[len(m.events)-maxLimit:]
	}
	return e, nil
}

func (m *MemoryStore) Recent(_ context.Context, limit int) ([]Event, error) {
	limit = normalizeLimit(limit)

	m.mu.Lock()
	defer m.mu.Unlock()

	n := min(limit, len(m.events))
	out := make([]Event, 0, n)
	for i := len(m.events) - 1; i >= len(m.events)-n; i-- {
		out = append(out, m.events[i])
	}
	return out, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
