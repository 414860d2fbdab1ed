package user

import "github.com/KirkDiggler/eatwhat/internal/models"

// SaveUserInput contains parameters for saving a user
type SaveUserInput struct {
	User *models.User
}

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	Username string
}

// ListUsersInput contains parameters for listing users
type ListUsersInput struct {
}

// ListUsersOutput contains the result of listing users
type ListUsersOutput struct {
	Users []*models.User
}

// CountUsersInput contains parameters for counting users
type CountUsersInput struct {
}

// EmailInUseInput contains parameters for checking email uniqueness
type EmailInUseInput struct {
	Email string
}
