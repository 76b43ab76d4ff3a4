// internal/core/state/store.go
package state

import "sync/atomic"

// Store holds the live configuration. Readers get a consistent
// snapshot; a reload swaps the whole snapshot in one step, so no
// reader ever observes a half-applied configuration.
type Store struct {
	current atomic.Pointer[State]
}

// NewStore returns a store holding the given initial state.
func NewStore(initial *State) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Current returns the live snapshot.
func (s *Store) Current() *State {
	return s.current.Load()
}

// Replace swaps in a new snapshot.
func (s *Store) Replace(next *State) {
	s.current.Store(next)
}
