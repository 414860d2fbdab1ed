// Package user implements the allow-list directory of known users.
package user

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/eatwhat/internal/common/clock"
	"github.com/KirkDiggler/eatwhat/internal/models"
	userRepo "github.com/KirkDiggler/eatwhat/internal/repositories/user"
)

// service implements the Service interface
type service struct {
	userRepo userRepo.Repository
	clock    clock.Clock
}

// New creates a new user service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		userRepo: cfg.UserRepo,
		clock:    cfg.Clock,
	}, nil
}

// RegisterUser adds a user to the directory, rejecting duplicate
// usernames and duplicate emails.
func (s *service) RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, ErrEmptyEmail
	}

	role := input.Role
	if role == "" {
		role = models.UserRoleGuest
	}
	if role != models.UserRoleSessionInitiator && role != models.UserRoleGuest {
		return nil, ErrInvalidRole
	}

	_, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		Username: username,
	})
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, err
	}

	taken, err := s.userRepo.EmailInUse(ctx, &userRepo.EmailInUseInput{
		Email: email,
	})
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	user := &models.User{
		Username:  username,
		Email:     email,
		Role:      role,
		CreatedAt: s.clock.Now(),
	}

	err = s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{
		User: user,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterUserOutput{
		User: user,
	}, nil
}

// GetUsers returns all registered users
func (s *service) GetUsers(ctx context.Context, input *GetUsersInput) (*GetUsersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	result, err := s.userRepo.ListUsers(ctx, &userRepo.ListUsersInput{})
	if err != nil {
		return nil, err
	}

	return &GetUsersOutput{
		Users: result.Users,
	}, nil
}

// ValidateUser reports whether a username is registered and whether it
// may create sessions. An unknown username yields Valid false, not an
// error.
func (s *service) ValidateUser(ctx context.Context, input *ValidateUserInput) (*ValidateUserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		Username: username,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return &ValidateUserOutput{Valid: false}, nil
		}
		return nil, err
	}

	return &ValidateUserOutput{
		Valid:            true,
		CanCreateSession: user.CanInitiateSession(),
		User:             user,
	}, nil
}

// UserExists reports whether a username is registered
func (s *service) UserExists(ctx context.Context, input *UserExistsInput) (*UserExistsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	_, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		Username: username,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return &UserExistsOutput{Exists: false}, nil
		}
		return nil, err
	}

	return &UserExistsOutput{Exists: true}, nil
}

// ImportCSV registers users read from username,email,role records.
// Rows that collide with existing users are skipped rather than
// failing the whole import, so re-running an import is harmless.
func (s *service) ImportCSV(ctx context.Context, input *ImportCSVInput) (*ImportCSVOutput, error) {
	if input == nil || input.Reader == nil {
		return nil, errors.New("input reader cannot be nil")
	}

	reader := csv.NewReader(input.Reader)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse user CSV: %w", err)
	}

	output := &ImportCSVOutput{}

	for i, record := range records {
		// Skip a header row
		if i == 0 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "username") {
			continue
		}

		if len(record) < 3 {
			output.Skipped++
			continue
		}

		_, err := s.RegisterUser(ctx, &RegisterUserInput{
			Username: record[0],
			Email:    record[1],
			Role:     models.UserRole(strings.TrimSpace(record[2])),
		})
		if err != nil {
			var userErr UserError
			if errors.As(err, &userErr) {
				output.Skipped++
				continue
			}
			return output, err
		}

		output.Imported++
	}

	return output, nil
}
