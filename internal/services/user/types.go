package user

import (
	"io"

	"github.com/KirkDiggler/eatwhat/internal/common/clock"
	"github.com/KirkDiggler/eatwhat/internal/models"
	userRepo "github.com/KirkDiggler/eatwhat/internal/repositories/user"
)

// Config holds the dependencies for the user service
type Config struct {
	UserRepo userRepo.Repository
	Clock    clock.Clock
}

// RegisterUserInput contains parameters for registering a user
type RegisterUserInput struct {
	Username string
	Email    string
	Role     models.UserRole
}

// RegisterUserOutput contains the registered user
type RegisterUserOutput struct {
	User *models.User
}

// GetUsersInput contains parameters for listing users
type GetUsersInput struct {
}

// GetUsersOutput contains all registered users
type GetUsersOutput struct {
	Users []*models.User
}

// ValidateUserInput contains parameters for validating a username
type ValidateUserInput struct {
	Username string
}

// ValidateUserOutput contains the validation result
type ValidateUserOutput struct {
	Valid            bool
	CanCreateSession bool
	User             *models.User
}

// UserExistsInput contains parameters for the existence check
type UserExistsInput struct {
	Username string
}

// UserExistsOutput contains the existence check result
type UserExistsOutput struct {
	Exists bool
}

// ImportCSVInput contains the CSV source to import users from.
// Records are username,email,role rows; a header row is skipped.
type ImportCSVInput struct {
	Reader io.Reader
}

// ImportCSVOutput contains the import counts
type ImportCSVOutput struct {
	Imported int
	Skipped  int
}
