package models

import (
	"time"
)

// Restaurant represents a single restaurant suggestion within a session
type Restaurant struct {
	// ID is the unique identifier for the suggestion
	ID string

	// SessionCode is the code of the session the suggestion belongs to
	SessionCode string

	// Name is the restaurant name as submitted
	Name string

	// SubmittedBy is the username of the submitter
	SubmittedBy string

	// SubmittedAt is when the suggestion was submitted
	SubmittedAt time.Time
}
