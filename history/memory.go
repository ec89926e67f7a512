package history

import (
	"sync"

	"github.com/quintans/go-trafficlight/trafficlight"
)

const DefaultCapacity = 256

// MemStore keeps the most recent transitions of a light in memory.
// Once full, each new transition overwrites the oldest one.
type MemStore struct {
	mu    sync.Mutex
	ring  []trafficlight.Transition
	head  int // index of the oldest entry
	count int
}

// New returns a MemStore holding up to capacity transitions.
// A non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *MemStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemStore{
		ring: make([]trafficlight.Transition, capacity),
	}
}

func (s *MemStore) Record(t trafficlight.Transition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := (s.head + s.count) % len(s.ring)
	s.ring[idx] = t
	if s.count < len(s.ring) {
		s.count++
		return
	}
	s.head = (s.head + 1) % len(s.ring)
}

// List returns the stored transitions, oldest first.
func (s *MemStore) List() []trafficlight.Transition {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]trafficlight.Transition, 0, s.count)
	for i := range s.count {
		out = append(out, s.ring[(s.head+i)%len(s.ring)])
	}
	return out
}

func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.count
}

func (s *MemStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.ring)
	s.head = 0
	s.count = 0
}
