// Package rest exposes the session coordinator over HTTP for the
// browser client.
package rest

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	sessionService "github.com/KirkDiggler/eatwhat/internal/services/session"
	userService "github.com/KirkDiggler/eatwhat/internal/services/user"
)

// Handler serves the REST API
type Handler struct {
	sessionService sessionService.Service
	userService    userService.Service
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.UserService == nil {
		return nil, errors.New("user service cannot be nil")
	}

	return &Handler{
		sessionService: cfg.SessionService,
		userService:    cfg.UserService,
	}, nil
}

// RegisterRoutes attaches the API routes to the router
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.Health)

	api := r.Group("/api/v1")

	sessions := api.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:code", h.GetSession)
	sessions.GET("/:code/status", h.GetSessionStatus)

	restaurants := sessions.Group("/:code/restaurants")
	restaurants.POST("", h.SubmitRestaurant)
	restaurants.GET("", h.ListRestaurants)
	restaurants.DELETE("/:id", h.DeleteRestaurant)
	restaurants.GET("/count", h.CountRestaurants)
	restaurants.GET("/random", h.DrawRandom)
	restaurants.GET("/can-request-random/:username", h.CanRequestRandom)

	users := api.Group("/users")
	users.GET("", h.ListUsers)
	users.GET("/validate/:username", h.ValidateUser)
	users.GET("/exists/:username", h.UserExists)
}

func respondOK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Message: message,
		Code:    http.StatusOK,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
		Code:    status,
	})
}

func respondServiceError(c *gin.Context, err error) {
	respondError(c, statusForError(err), err.Error())
}

// Health reports liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateSession handles POST /api/v1/sessions
func (h *Handler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "username is required")
		return
	}

	log.Printf("creating session: username=%s", req.Username)

	result, err := h.sessionService.CreateSession(c.Request.Context(), &sessionService.CreateSessionInput{
		Username: req.Username,
	})
	if err != nil {
		log.Printf("failed to create session: username=%s error=%v", req.Username, err)
		respondServiceError(c, err)
		return
	}

	log.Printf("session created: code=%s initiator=%s", result.Session.Code, result.Session.Initiator)
	respondOK(c, newSessionResponse(result.Session), "Session created successfully")
}

// GetSession handles GET /api/v1/sessions/:code
func (h *Handler) GetSession(c *gin.Context) {
	code := c.Param("code")

	result, err := h.sessionService.GetSession(c.Request.Context(), &sessionService.GetSessionInput{
		Code: code,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, newSessionResponse(result.Session), "")
}

// GetSessionStatus handles GET /api/v1/sessions/:code/status
func (h *Handler) GetSessionStatus(c *gin.Context) {
	code := c.Param("code")

	result, err := h.sessionService.GetSession(c.Request.Context(), &sessionService.GetSessionInput{
		Code: code,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, &sessionStatusResponse{
		SessionCode: result.Session.Code,
		Locked:      result.Session.IsLocked(),
	}, "")
}

// SubmitRestaurant handles POST /api/v1/sessions/:code/restaurants
func (h *Handler) SubmitRestaurant(c *gin.Context) {
	code := c.Param("code")

	var req submitRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "restaurantName and submittedBy are required")
		return
	}

	log.Printf("submitting restaurant: code=%s name=%s submittedBy=%s", code, req.RestaurantName, req.SubmittedBy)

	result, err := h.sessionService.SubmitRestaurant(c.Request.Context(), &sessionService.SubmitRestaurantInput{
		SessionCode: code,
		Name:        req.RestaurantName,
		SubmittedBy: req.SubmittedBy,
	})
	if err != nil {
		log.Printf("failed to submit restaurant: code=%s error=%v", code, err)
		respondServiceError(c, err)
		return
	}

	respondOK(c, newRestaurantResponse(result.Restaurant), "Restaurant submitted successfully")
}

// ListRestaurants handles GET /api/v1/sessions/:code/restaurants
func (h *Handler) ListRestaurants(c *gin.Context) {
	code := c.Param("code")

	result, err := h.sessionService.ListRestaurants(c.Request.Context(), &sessionService.ListRestaurantsInput{
		SessionCode: code,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, newRestaurantResponses(result.Restaurants), "")
}

// DeleteRestaurant handles DELETE /api/v1/sessions/:code/restaurants/:id.
// The requesting user is named in the username query parameter.
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	code := c.Param("code")
	restaurantID := c.Param("id")
	username := c.Query("username")

	if username == "" {
		respondError(c, http.StatusBadRequest, "username query parameter is required")
		return
	}

	log.Printf("deleting restaurant: code=%s id=%s requestedBy=%s", code, restaurantID, username)

	_, err := h.sessionService.DeleteRestaurant(c.Request.Context(), &sessionService.DeleteRestaurantInput{
		SessionCode:  code,
		RestaurantID: restaurantID,
		RequestedBy:  username,
	})
	if err != nil {
		log.Printf("failed to delete restaurant: code=%s id=%s error=%v", code, restaurantID, err)
		respondServiceError(c, err)
		return
	}

	respondOK(c, nil, "Restaurant deleted successfully")
}

// CountRestaurants handles GET /api/v1/sessions/:code/restaurants/count
func (h *Handler) CountRestaurants(c *gin.Context) {
	code := c.Param("code")

	result, err := h.sessionService.CountRestaurants(c.Request.Context(), &sessionService.CountRestaurantsInput{
		SessionCode: code,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, &restaurantCountResponse{Count: result.Count}, "")
}

// DrawRandom handles GET /api/v1/sessions/:code/restaurants/random.
// The requesting user is named in the username query parameter so the
// first-submitter privilege can be enforced server-side.
func (h *Handler) DrawRandom(c *gin.Context) {
	code := c.Param("code")
	username := c.Query("username")

	if username == "" {
		respondError(c, http.StatusBadRequest, "username query parameter is required")
		return
	}

	log.Printf("drawing random restaurant: code=%s requestedBy=%s", code, username)

	result, err := h.sessionService.DrawRandom(c.Request.Context(), &sessionService.DrawRandomInput{
		SessionCode: code,
		RequestedBy: username,
	})
	if err != nil {
		log.Printf("failed to draw random restaurant: code=%s error=%v", code, err)
		respondServiceError(c, err)
		return
	}

	log.Printf("random restaurant selected: code=%s restaurantId=%s", code, result.Restaurant.ID)
	respondOK(c, newRestaurantResponse(result.Restaurant), "Random restaurant selected")
}

// CanRequestRandom handles GET /api/v1/sessions/:code/restaurants/can-request-random/:username
func (h *Handler) CanRequestRandom(c *gin.Context) {
	code := c.Param("code")
	username := c.Param("username")

	result, err := h.sessionService.CanRequestRandom(c.Request.Context(), &sessionService.CanRequestRandomInput{
		SessionCode: code,
		Username:    username,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, &canRequestRandomResponse{CanRequest: result.CanRequest}, "")
}

// ListUsers handles GET /api/v1/users
func (h *Handler) ListUsers(c *gin.Context) {
	result, err := h.userService.GetUsers(c.Request.Context(), &userService.GetUsersInput{})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, newUserResponses(result.Users), "")
}

// ValidateUser handles GET /api/v1/users/validate/:username
func (h *Handler) ValidateUser(c *gin.Context) {
	username := c.Param("username")

	result, err := h.userService.ValidateUser(c.Request.Context(), &userService.ValidateUserInput{
		Username: username,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, &userValidationResponse{
		Username:           username,
		Exists:             result.Valid,
		CanInitiateSession: result.CanCreateSession,
	}, "")
}

// UserExists handles GET /api/v1/users/exists/:username
func (h *Handler) UserExists(c *gin.Context) {
	username := c.Param("username")

	result, err := h.userService.UserExists(c.Request.Context(), &userService.UserExistsInput{
		Username: username,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, &userExistsResponse{
		Username: username,
		Exists:   result.Exists,
	}, "")
}
