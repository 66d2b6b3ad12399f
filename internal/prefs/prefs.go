// Package prefs keeps per-session presentation state: the audio track the
// background player is on and the active color theme. One consistent
// selection is shared by every page a session renders; nothing here is
// durable, so a restart simply resets every session to the defaults.
package prefs

import "sync"

// Preferences is the current selection for one browser session.
type Preferences struct {
	Track string `json:"track"`
	Theme string `json:"theme"`
}

// Store holds preferences keyed by session ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Preferences
	defaults Preferences
}

// NewStore creates a preference store with the given defaults for
// sessions that have not written anything yet.
func NewStore(defaults Preferences) *Store {
	return &Store{
		sessions: make(map[string]Preferences),
		defaults: defaults,
	}
}

// Get returns the session's preferences, falling back to the defaults.
func (s *Store) Get(sessionID string) Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.sessions[sessionID]; ok {
		return p
	}
	return s.defaults
}

// Set replaces the session's preferences.
func (s *Store) Set(sessionID string, p Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = p
}
