package models

import (
	"time"
)

// UserRole controls what a registered user may do
type UserRole string

const (
	// UserRoleSessionInitiator allows a user to create new sessions
	UserRoleSessionInitiator UserRole = "session_initiator"

	// UserRoleGuest allows a user to join and submit, but not create sessions
	UserRoleGuest UserRole = "guest"
)

// User represents an entry in the allow-list directory
type User struct {
	// Username is the unique login-free identity of the user
	Username string

	// Email is the user's contact address
	Email string

	// Role is the user's permission level
	Role UserRole

	// CreatedAt is when the user was registered
	CreatedAt time.Time
}

// CanInitiateSession reports whether the user may create sessions
func (u *User) CanInitiateSession() bool {
	return u.Role == UserRoleSessionInitiator
}
