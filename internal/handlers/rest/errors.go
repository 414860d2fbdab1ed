package rest

import (
	"errors"
	"net/http"

	sessionService "github.com/KirkDiggler/eatwhat/internal/services/session"
	userService "github.com/KirkDiggler/eatwhat/internal/services/user"
)

// statusForError maps service errors onto HTTP status codes. Anything
// unrecognized is treated as an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, sessionService.ErrEmptyUsername),
		errors.Is(err, sessionService.ErrEmptyRestaurantName),
		errors.Is(err, sessionService.ErrRestaurantNameTooLong),
		errors.Is(err, userService.ErrEmptyUsername),
		errors.Is(err, userService.ErrEmptyEmail),
		errors.Is(err, userService.ErrInvalidRole):
		return http.StatusBadRequest

	case errors.Is(err, sessionService.ErrSessionNotFound),
		errors.Is(err, sessionService.ErrRestaurantNotFound),
		errors.Is(err, userService.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, sessionService.ErrUserNotRegistered),
		errors.Is(err, sessionService.ErrNotSessionInitiator),
		errors.Is(err, sessionService.ErrNotSuggestionOwner),
		errors.Is(err, sessionService.ErrNotFirstSubmitter):
		return http.StatusForbidden

	case errors.Is(err, sessionService.ErrSessionLocked),
		errors.Is(err, sessionService.ErrNoRestaurants),
		errors.Is(err, userService.ErrUsernameTaken),
		errors.Is(err, userService.ErrEmailTaken):
		return http.StatusConflict

	case errors.Is(err, sessionService.ErrCodeSpaceExhausted):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
