package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/eatwhat/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/eatwhat/internal/models"
)

// Repository defines the interface for user directory persistence
type Repository interface {
	// SaveUser persists a user
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user by username
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// ListUsers retrieves all registered users
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)

	// CountUsers returns the number of registered users
	CountUsers(ctx context.Context, input *CountUsersInput) (int64, error)

	// EmailInUse reports whether a user is registered with the given email
	EmailInUse(ctx context.Context, input *EmailInUseInput) (bool, error)
}
