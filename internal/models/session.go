package models

import (
	"time"
)

// SessionStatus represents the current state of a session
type SessionStatus string

const (
	// SessionStatusOpen indicates a session is accepting restaurant suggestions
	SessionStatusOpen SessionStatus = "open"

	// SessionStatusLocked indicates a session has drawn its restaurant and is closed to changes
	SessionStatusLocked SessionStatus = "locked"
)

// Session represents a group restaurant-picking session
type Session struct {
	// Code is the short shareable identifier, stored uppercase
	Code string

	// Initiator is the username of the user who created the session
	Initiator string

	// Status is the current state of the session
	Status SessionStatus

	// FirstSubmitter is the username of the first user to submit a restaurant.
	// Set exactly once and never cleared, even if the founding suggestion is deleted.
	FirstSubmitter string

	// Selection is the restaurant chosen by the draw, set when the session locks
	Selection *Restaurant

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// LockedAt is when the session was locked by a successful draw
	LockedAt *time.Time
}

// IsLocked reports whether the session has been locked by a draw
func (s *Session) IsLocked() bool {
	return s.Status == SessionStatusLocked
}
