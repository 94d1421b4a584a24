// Package services contains the application services of the NusaView client:
// the session state holder, authentication operations, and the generic
// listing service instantiated once per content variant.
package services

import "sync"

// Session is the single piece of state shared across screens: whether a user
// is signed in, and who. It is written only by AuthService and read
// everywhere else. Subscribers are notified synchronously, and only when the
// authenticated flag actually flips.
type Session struct {
	mu            sync.RWMutex
	authenticated bool
	userID        string
	email         string
	subs          []func(authenticated bool)
}

func NewSession() *Session {
	return &Session{}
}

// Set marks the session authenticated for the given account.
func (s *Session) Set(userID, email string) {
	s.mu.Lock()
	changed := !s.authenticated
	s.authenticated = true
	s.userID = userID
	s.email = email
	subs := append([]func(bool){}, s.subs...)
	s.mu.Unlock()

	if changed {
		for _, fn := range subs {
			fn(true)
		}
	}
}

// Clear marks the session unauthenticated.
func (s *Session) Clear() {
	s.mu.Lock()
	changed := s.authenticated
	s.authenticated = false
	s.userID = ""
	s.email = ""
	subs := append([]func(bool){}, s.subs...)
	s.mu.Unlock()

	if changed {
		for _, fn := range subs {
			fn(false)
		}
	}
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// Subscribe registers fn to run on every flip of the authenticated flag.
func (s *Session) Subscribe(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
