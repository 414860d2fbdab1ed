package rest

import (
	"time"

	"github.com/KirkDiggler/eatwhat/internal/models"
	sessionService "github.com/KirkDiggler/eatwhat/internal/services/session"
	userService "github.com/KirkDiggler/eatwhat/internal/services/user"
)

// Config holds the dependencies for the REST handler
type Config struct {
	SessionService sessionService.Service
	UserService    userService.Service
}

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

type createSessionRequest struct {
	Username string `json:"username" binding:"required"`
}

type submitRestaurantRequest struct {
	RestaurantName string `json:"restaurantName" binding:"required"`
	SubmittedBy    string `json:"submittedBy" binding:"required"`
}

type sessionResponse struct {
	SessionCode    string              `json:"sessionCode"`
	Initiator      string              `json:"initiator"`
	Status         string              `json:"status"`
	FirstSubmitter string              `json:"firstSubmitter,omitempty"`
	Selection      *restaurantResponse `json:"selection,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	LockedAt       *time.Time          `json:"lockedAt,omitempty"`
}

type restaurantResponse struct {
	ID             string    `json:"id"`
	SessionCode    string    `json:"sessionCode"`
	RestaurantName string    `json:"restaurantName"`
	SubmittedBy    string    `json:"submittedBy"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

type sessionStatusResponse struct {
	SessionCode string `json:"sessionCode"`
	Locked      bool   `json:"locked"`
}

type restaurantCountResponse struct {
	Count int64 `json:"count"`
}

type canRequestRandomResponse struct {
	CanRequest bool `json:"canRequest"`
}

type userResponse struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type userValidationResponse struct {
	Username           string `json:"username"`
	Exists             bool   `json:"exists"`
	CanInitiateSession bool   `json:"canInitiateSession"`
}

type userExistsResponse struct {
	Username string `json:"username"`
	Exists   bool   `json:"exists"`
}

func newSessionResponse(session *models.Session) *sessionResponse {
	return &sessionResponse{
		SessionCode:    session.Code,
		Initiator:      session.Initiator,
		Status:         string(session.Status),
		FirstSubmitter: session.FirstSubmitter,
		Selection:      newRestaurantResponse(session.Selection),
		CreatedAt:      session.CreatedAt,
		LockedAt:       session.LockedAt,
	}
}

func newRestaurantResponse(restaurant *models.Restaurant) *restaurantResponse {
	if restaurant == nil {
		return nil
	}

	return &restaurantResponse{
		ID:             restaurant.ID,
		SessionCode:    restaurant.SessionCode,
		RestaurantName: restaurant.Name,
		SubmittedBy:    restaurant.SubmittedBy,
		SubmittedAt:    restaurant.SubmittedAt,
	}
}

func newRestaurantResponses(restaurants []*models.Restaurant) []*restaurantResponse {
	responses := make([]*restaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		responses = append(responses, newRestaurantResponse(restaurant))
	}
	return responses
}

func newUserResponses(users []*models.User) []*userResponse {
	responses := make([]*userResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, &userResponse{
			Username:  user.Username,
			Email:     user.Email,
			Role:      string(user.Role),
			CreatedAt: user.CreatedAt,
		})
	}
	return responses
}
