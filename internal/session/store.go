// Package session keeps engine states between actions for hosts that serve
// more than one player, such as the SSH server.
package session

import (
	"sync"
	"time"

	"github.com/vovakirdan/quiztris/internal/engine"
)

// ID identifies a player session. The SSH server uses the login user name so
// a reconnecting player finds their game again.
type ID string

// entry is a stored state with its last update time.
type entry struct {
	state   engine.State
	updated time.Time
}

// Store tracks session states.
// Thread-safe for concurrent access.
type Store struct {
	mu       sync.RWMutex
	sessions map[ID]entry
	now      func() time.Time
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[ID]entry),
		now:      time.Now,
	}
}

// Put stores the latest state for a session.
func (s *Store) Put(id ID, state engine.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = entry{state: state, updated: s.now()}
}

// Get retrieves a session state by ID.
func (s *Store) Get(id ID) (engine.State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[id]
	return e.state, ok
}

// Delete removes a session.
func (s *Store) Delete(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count returns the number of stored sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Prune removes sessions not updated within maxAge and returns how many were
// removed. A non-positive maxAge keeps everything.
func (s *Store) Prune(maxAge time.Duration) int {
	if maxAge <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxAge)
	removed := 0
	for id, e := range s.sessions {
		if e.updated.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
