package state

import "sync"

// Store owns the state tree. Dispatch applies actions one at a time under
// the lock, so a transition is never observed half-applied. There is no
// global sequence number across async operations: when two in-flight
// network calls race on the same slice, the last one to complete wins.
type Store struct {
	mu      sync.Mutex
	state   State
	version uint64
}

func NewStore() *Store {
	return &Store{state: initial()}
}

func (st *Store) Dispatch(actions ...Action) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, a := range actions {
		st.state = apply(st.state, a)
		st.version++
	}
}

// Snapshot returns a copy safe for concurrent reads. Slice headers are
// cloned by the reducer on every write, so the copy shares no mutable
// backing arrays with future states.
func (st *Store) Snapshot() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

// Version increments on every applied action; the UI uses it to decide
// whether a re-render is needed.
func (st *Store) Version() uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.version
}
