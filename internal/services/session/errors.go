package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	// Validation
	ErrEmptyUsername         SessionError = "username cannot be empty"
	ErrEmptyRestaurantName   SessionError = "restaurant name cannot be empty"
	ErrRestaurantNameTooLong SessionError = "restaurant name exceeds maximum length"

	// Not found
	ErrSessionNotFound    SessionError = "session not found"
	ErrRestaurantNotFound SessionError = "restaurant not found"

	// Forbidden
	ErrUserNotRegistered    SessionError = "user is not registered"
	ErrNotSessionInitiator  SessionError = "user is not authorized to initiate sessions"
	ErrNotSuggestionOwner   SessionError = "only the submitter may delete a suggestion"
	ErrNotFirstSubmitter    SessionError = "only the first submitter may request the draw"

	// Invalid state
	ErrSessionLocked SessionError = "session is locked"
	ErrNoRestaurants SessionError = "no restaurants available in session"

	// Exhaustion
	ErrCodeSpaceExhausted SessionError = "session code space exhausted"

	// Construction
	ErrNilConfig         SessionError = "config cannot be nil"
	ErrNilSessionRepo    SessionError = "session repository cannot be nil"
	ErrNilRestaurantRepo SessionError = "restaurant repository cannot be nil"
	ErrNilCodeGenerator  SessionError = "code generator cannot be nil"
	ErrNilPicker         SessionError = "picker cannot be nil"
	ErrNilClock          SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator  SessionError = "UUID generator cannot be nil"
)
