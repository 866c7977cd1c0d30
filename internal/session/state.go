// Package session holds the process-wide "logged in" flag. The service
// tracks a single session: a successful login sets the flag for the
// username that logged in, and logout clears it.
package session

import "sync"

// State is the single-session flag. The zero value is logged out and ready to use.
type State struct {
	mu       sync.RWMutex
	loggedIn bool
	username string
}

// New returns a logged-out State.
func New() *State {
	return &State{}
}

// Login marks the session as logged in for username, replacing any previous user.
func (s *State) Login(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
	s.username = username
}

// Logout clears the flag.
func (s *State) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
	s.username = ""
}

// Current reports whether the session is logged in and for which username.
func (s *State) Current() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username, s.loggedIn
}

// LoggedIn reports whether the flag is set.
func (s *State) LoggedIn() bool {
	_, ok := s.Current()
	return ok
}
