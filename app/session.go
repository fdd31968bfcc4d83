package app

import "chucklechain/domain"

// Session is the single authoritative copy of the signed-in user. Every view
// holds the same *Session and reads identity through it, so a profile edit
// updates the navbar, compose snapshot and profile page in one place.
//
// Bubble Tea serializes Update calls, so Session needs no locking.
type Session struct {
	user domain.User
}

// NewSession creates a session for the given user.
func NewSession(u domain.User) *Session {
	return &Session{user: u}
}

// User returns the current identity snapshot.
func (s *Session) User() domain.User {
	return s.user
}

// SetIdentity refreshes the mutable identity fields. Empty values leave the
// existing field untouched.
func (s *Session) SetIdentity(username, profilePicture string) {
	if username != "" {
		s.user.Username = username
	}
	if profilePicture != "" {
		s.user.ProfilePicture = profilePicture
	}
}

// Owns reports whether the given user id is the session user's.
func (s *Session) Owns(userID string) bool {
	return userID != "" && userID == s.user.ID
}
