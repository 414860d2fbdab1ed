package restaurant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/eatwhat/internal/repositories/restaurant Repository

import (
	"context"

	"github.com/KirkDiggler/eatwhat/internal/models"
)

// Repository defines the interface for restaurant suggestion persistence
type Repository interface {
	// AddRestaurant persists a suggestion and appends it to its session's ledger
	AddRestaurant(ctx context.Context, input *AddRestaurantInput) error

	// GetRestaurant retrieves a suggestion by ID within a session
	GetRestaurant(ctx context.Context, input *GetRestaurantInput) (*models.Restaurant, error)

	// GetRestaurants retrieves all suggestions for a session in insertion order
	GetRestaurants(ctx context.Context, input *GetRestaurantsInput) ([]*models.Restaurant, error)

	// RemoveRestaurant deletes a suggestion from its session's ledger
	RemoveRestaurant(ctx context.Context, input *RemoveRestaurantInput) error

	// CountRestaurants returns the number of suggestions in a session
	CountRestaurants(ctx context.Context, input *CountRestaurantsInput) (int64, error)
}
