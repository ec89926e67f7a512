package lib

import (
	"sync"
)

// Waiter hands out a channel that the next Poke closes.
//
//   - Wait(): return the pending channel, creating it on first use.
//   - Poke(): close the pending channel, if any, releasing every holder at once.
type Waiter struct {
	mu     sync.Mutex
	waiter chan struct{} // non-nil while somebody holds a channel from Wait
	pokes  uint64
}

// NewWaiter creates a Waiter with no pending channel.
func NewWaiter() *Waiter {
	return &Waiter{}
}

// Wait returns a receive-only channel closed by the next Poke. Callers
// between two pokes share the same channel.
func (w *Waiter) Wait() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.waiter == nil {
		w.waiter = make(chan struct{})
	}

	return w.waiter
}

// Poke releases the current holders. Without holders it only counts.
func (w *Waiter) Poke() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pokes++
	if w.waiter == nil {
		return
	}
	close(w.waiter)
	w.waiter = nil
}

// Pokes returns how many times Poke was called.
func (w *Waiter) Pokes() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.pokes
}
