package user

// UserError represents an error in the user directory
type UserError string

// Error implements the error interface
func (e UserError) Error() string {
	return string(e)
}

// Validation errors
const (
	// ErrEmptyUsername is returned when a username is empty
	ErrEmptyUsername = UserError("username cannot be empty")

	// ErrEmptyEmail is returned when an email is empty
	ErrEmptyEmail = UserError("email cannot be empty")

	// ErrInvalidRole is returned when a role is not a known role
	ErrInvalidRole = UserError("role must be session_initiator or guest")
)

// Conflict errors
const (
	// ErrUsernameTaken is returned when registering an already-registered username
	ErrUsernameTaken = UserError("username is already registered")

	// ErrEmailTaken is returned when registering an already-registered email
	ErrEmailTaken = UserError("email is already registered")
)

// Not-found errors
const (
	// ErrUserNotFound is returned when a user is not in the directory
	ErrUserNotFound = UserError("user not found")
)

// Configuration errors
const (
	// ErrNilConfig is returned when a nil config is provided
	ErrNilConfig = UserError("config cannot be nil")

	// ErrNilUserRepo is returned when a nil user repository is provided
	ErrNilUserRepo = UserError("user repository cannot be nil")

	// ErrNilClock is returned when a nil clock is provided
	ErrNilClock = UserError("clock cannot be nil")
)
