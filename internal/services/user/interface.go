package user

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/eatwhat/internal/services/user Service

import "context"

// Service defines the interface for the user directory
type Service interface {
	// RegisterUser adds a user to the directory
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error)

	// GetUsers returns all registered users
	GetUsers(ctx context.Context, input *GetUsersInput) (*GetUsersOutput, error)

	// ValidateUser reports whether a username is registered and whether it may create sessions
	ValidateUser(ctx context.Context, input *ValidateUserInput) (*ValidateUserOutput, error)

	// UserExists reports whether a username is registered
	UserExists(ctx context.Context, input *UserExistsInput) (*UserExistsOutput, error)

	// ImportCSV registers users read from CSV records, skipping duplicates
	ImportCSV(ctx context.Context, input *ImportCSVInput) (*ImportCSVOutput, error)
}
