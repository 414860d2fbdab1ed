package session

import (
	"github.com/KirkDiggler/eatwhat/internal/common/clock"
	"github.com/KirkDiggler/eatwhat/internal/common/keymutex"
	"github.com/KirkDiggler/eatwhat/internal/common/uuid"
	"github.com/KirkDiggler/eatwhat/internal/models"
	"github.com/KirkDiggler/eatwhat/internal/random"
	restaurantRepo "github.com/KirkDiggler/eatwhat/internal/repositories/restaurant"
	sessionRepo "github.com/KirkDiggler/eatwhat/internal/repositories/session"
	userRepo "github.com/KirkDiggler/eatwhat/internal/repositories/user"
	"github.com/KirkDiggler/eatwhat/internal/sessioncode"
)

// Config holds the dependencies and settings for the session service
type Config struct {
	SessionRepo    sessionRepo.Repository
	RestaurantRepo restaurantRepo.Repository

	// UserRepo is optional. When it holds registered users, session
	// creation is restricted to users with the session_initiator role.
	UserRepo userRepo.Repository

	CodeGenerator *sessioncode.Generator
	Picker        random.Picker
	Clock         clock.Clock
	UUID          uuid.UUID
	Locks         *keymutex.KeyMutex

	// MaxRestaurantNameLength caps submitted names. Zero means the default of 100.
	MaxRestaurantNameLength int
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	Username string
}

// CreateSessionOutput contains the created session
type CreateSessionOutput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	Code string
}

// GetSessionOutput contains the retrieved session
type GetSessionOutput struct {
	Session *models.Session
}

// SubmitRestaurantInput contains parameters for submitting a suggestion
type SubmitRestaurantInput struct {
	SessionCode string
	Name        string
	SubmittedBy string
}

// SubmitRestaurantOutput contains the created suggestion
type SubmitRestaurantOutput struct {
	Restaurant *models.Restaurant
}

// ListRestaurantsInput contains parameters for listing suggestions
type ListRestaurantsInput struct {
	SessionCode string
}

// ListRestaurantsOutput contains a session's suggestions in insertion order
type ListRestaurantsOutput struct {
	Restaurants []*models.Restaurant
}

// DeleteRestaurantInput contains parameters for deleting a suggestion
type DeleteRestaurantInput struct {
	SessionCode  string
	RestaurantID string
	RequestedBy  string
}

// DeleteRestaurantOutput contains the result of deleting a suggestion
type DeleteRestaurantOutput struct {
}

// CountRestaurantsInput contains parameters for counting suggestions
type CountRestaurantsInput struct {
	SessionCode string
}

// CountRestaurantsOutput contains the suggestion count
type CountRestaurantsOutput struct {
	Count int64
}

// CanRequestRandomInput contains parameters for the privilege check
type CanRequestRandomInput struct {
	SessionCode string
	Username    string
}

// CanRequestRandomOutput contains the privilege check result
type CanRequestRandomOutput struct {
	CanRequest bool
}

// DrawRandomInput contains parameters for the draw
type DrawRandomInput struct {
	SessionCode string
	RequestedBy string
}

// DrawRandomOutput contains the drawn restaurant
type DrawRandomOutput struct {
	Restaurant *models.Restaurant
}
