package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/eatwhat/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/eatwhat/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// SaveSession persists a session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by code
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// CodeInUse reports whether a session exists for the given code
	CodeInUse(ctx context.Context, input *CodeInUseInput) (bool, error)
}
