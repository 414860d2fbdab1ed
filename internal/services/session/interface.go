package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/eatwhat/internal/services/session Service

import "context"

// Service defines the interface for session coordination
type Service interface {
	// CreateSession creates a new open session with a freshly allocated code
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession retrieves a session by code
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// SubmitRestaurant appends a suggestion to an open session's ledger
	SubmitRestaurant(ctx context.Context, input *SubmitRestaurantInput) (*SubmitRestaurantOutput, error)

	// ListRestaurants returns a session's suggestions in insertion order
	ListRestaurants(ctx context.Context, input *ListRestaurantsInput) (*ListRestaurantsOutput, error)

	// DeleteRestaurant removes a suggestion, if requested by its submitter
	DeleteRestaurant(ctx context.Context, input *DeleteRestaurantInput) (*DeleteRestaurantOutput, error)

	// CountRestaurants returns the number of suggestions in a session
	CountRestaurants(ctx context.Context, input *CountRestaurantsInput) (*CountRestaurantsOutput, error)

	// CanRequestRandom reports whether a user currently holds the draw privilege
	CanRequestRandom(ctx context.Context, input *CanRequestRandomInput) (*CanRequestRandomOutput, error)

	// DrawRandom picks one suggestion uniformly at random and locks the session
	DrawRandom(ctx context.Context, input *DrawRandomInput) (*DrawRandomOutput, error)
}
