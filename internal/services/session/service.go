package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

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

const defaultMaxRestaurantNameLength = 100

// service implements the Service interface
type service struct {
	sessionRepo    sessionRepo.Repository
	restaurantRepo restaurantRepo.Repository
	userRepo       userRepo.Repository
	codeGenerator  *sessioncode.Generator
	picker         random.Picker
	clock          clock.Clock
	uuid           uuid.UUID
	locks          *keymutex.KeyMutex
	maxNameLength  int
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.RestaurantRepo == nil {
		return nil, ErrNilRestaurantRepo
	}

	if cfg.CodeGenerator == nil {
		return nil, ErrNilCodeGenerator
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	locks := cfg.Locks
	if locks == nil {
		locks = keymutex.New(nil)
	}

	maxNameLength := cfg.MaxRestaurantNameLength
	if maxNameLength <= 0 {
		maxNameLength = defaultMaxRestaurantNameLength
	}

	return &service{
		sessionRepo:    cfg.SessionRepo,
		restaurantRepo: cfg.RestaurantRepo,
		userRepo:       cfg.UserRepo,
		codeGenerator:  cfg.CodeGenerator,
		picker:         cfg.Picker,
		clock:          cfg.Clock,
		uuid:           cfg.UUID,
		locks:          locks,
		maxNameLength:  maxNameLength,
	}, nil
}

// canonicalCode normalizes a session code to its stored uppercase form
func canonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// getSession loads a session, translating the repository's not-found error
func (s *service) getSession(ctx context.Context, code string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		Code: code,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return session, nil
}

// CreateSession creates a new open session with a freshly allocated code
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	// Enforce the allow-list only when the directory is populated
	if s.userRepo != nil {
		count, err := s.userRepo.CountUsers(ctx, &userRepo.CountUsersInput{})
		if err != nil {
			return nil, err
		}

		if count > 0 {
			user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
				Username: username,
			})
			if err != nil {
				if errors.Is(err, userRepo.ErrUserNotFound) {
					return nil, ErrUserNotRegistered
				}
				return nil, err
			}

			if !user.CanInitiateSession() {
				return nil, ErrNotSessionInitiator
			}
		}
	}

	// Allocate a collision-free code
	code, err := s.codeGenerator.Unique(ctx, func(ctx context.Context, code string) (bool, error) {
		return s.sessionRepo.CodeInUse(ctx, &sessionRepo.CodeInUseInput{
			Code: code,
		})
	})
	if err != nil {
		if errors.Is(err, sessioncode.ErrExhausted) {
			return nil, ErrCodeSpaceExhausted
		}
		return nil, err
	}

	session := &models.Session{
		Code:      code,
		Initiator: username,
		Status:    models.SessionStatusOpen,
		CreatedAt: s.clock.Now(),
	}

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	return &CreateSessionOutput{
		Session: session,
	}, nil
}

// GetSession retrieves a session by code
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.getSession(ctx, canonicalCode(input.Code))
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session: session,
	}, nil
}

// SubmitRestaurant appends a suggestion to an open session's ledger.
// The first successful submission also claims the draw privilege; both
// writes happen inside the session's critical section so no two
// concurrent first submissions can both win.
func (s *service) SubmitRestaurant(ctx context.Context, input *SubmitRestaurantInput) (*SubmitRestaurantOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyRestaurantName
	}

	if utf8.RuneCountInString(name) > s.maxNameLength {
		return nil, ErrRestaurantNameTooLong
	}

	submittedBy := strings.TrimSpace(input.SubmittedBy)
	if submittedBy == "" {
		return nil, ErrEmptyUsername
	}

	code := canonicalCode(input.SessionCode)

	s.locks.Lock(code)
	defer s.locks.Unlock(code)

	session, err := s.getSession(ctx, code)
	if err != nil {
		return nil, err
	}

	if session.IsLocked() {
		return nil, ErrSessionLocked
	}

	restaurant := &models.Restaurant{
		ID:          s.uuid.NewUUID(),
		SessionCode: code,
		Name:        name,
		SubmittedBy: submittedBy,
		SubmittedAt: s.clock.Now(),
	}

	err = s.restaurantRepo.AddRestaurant(ctx, &restaurantRepo.AddRestaurantInput{
		Restaurant: restaurant,
	})
	if err != nil {
		return nil, err
	}

	// The first accepted suggestion claims the draw privilege, once
	if session.FirstSubmitter == "" {
		session.FirstSubmitter = submittedBy

		err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
			Session: session,
		})
		if err != nil {
			// Keep ledger and privilege consistent: drop the suggestion we just added
			rollbackErr := s.restaurantRepo.RemoveRestaurant(ctx, &restaurantRepo.RemoveRestaurantInput{
				SessionCode:  code,
				RestaurantID: restaurant.ID,
			})
			if rollbackErr != nil {
				log.Printf("failed to roll back suggestion %s in session %s: %v", restaurant.ID, code, rollbackErr)
			}
			return nil, err
		}
	}

	return &SubmitRestaurantOutput{
		Restaurant: restaurant,
	}, nil
}

// ListRestaurants returns a session's suggestions in insertion order
func (s *service) ListRestaurants(ctx context.Context, input *ListRestaurantsInput) (*ListRestaurantsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	code := canonicalCode(input.SessionCode)

	_, err := s.getSession(ctx, code)
	if err != nil {
		return nil, err
	}

	restaurants, err := s.restaurantRepo.GetRestaurants(ctx, &restaurantRepo.GetRestaurantsInput{
		SessionCode: code,
	})
	if err != nil {
		return nil, err
	}

	return &ListRestaurantsOutput{
		Restaurants: restaurants,
	}, nil
}

// DeleteRestaurant removes a suggestion, if requested by its submitter.
// Deleting the founding suggestion does not revoke the first-submitter
// privilege; that status is sticky for the life of the session.
func (s *service) DeleteRestaurant(ctx context.Context, input *DeleteRestaurantInput) (*DeleteRestaurantOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	code := canonicalCode(input.SessionCode)

	s.locks.Lock(code)
	defer s.locks.Unlock(code)

	session, err := s.getSession(ctx, code)
	if err != nil {
		return nil, err
	}

	if session.IsLocked() {
		return nil, ErrSessionLocked
	}

	restaurant, err := s.restaurantRepo.GetRestaurant(ctx, &restaurantRepo.GetRestaurantInput{
		SessionCode:  code,
		RestaurantID: input.RestaurantID,
	})
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if restaurant.SubmittedBy != input.RequestedBy {
		return nil, ErrNotSuggestionOwner
	}

	err = s.restaurantRepo.RemoveRestaurant(ctx, &restaurantRepo.RemoveRestaurantInput{
		SessionCode:  code,
		RestaurantID: input.RestaurantID,
	})
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	return &DeleteRestaurantOutput{}, nil
}

// CountRestaurants returns the number of suggestions in a session
func (s *service) CountRestaurants(ctx context.Context, input *CountRestaurantsInput) (*CountRestaurantsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	code := canonicalCode(input.SessionCode)

	_, err := s.getSession(ctx, code)
	if err != nil {
		return nil, err
	}

	count, err := s.restaurantRepo.CountRestaurants(ctx, &restaurantRepo.CountRestaurantsInput{
		SessionCode: code,
	})
	if err != nil {
		return nil, err
	}

	return &CountRestaurantsOutput{
		Count: count,
	}, nil
}

// CanRequestRandom reports whether a user currently holds the draw
// privilege. The answer comes from the session's FirstSubmitter field,
// never from re-scanning the ledger's oldest entry, so deleting the
// founding suggestion cannot shift the privilege.
func (s *service) CanRequestRandom(ctx context.Context, input *CanRequestRandomInput) (*CanRequestRandomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	code := canonicalCode(input.SessionCode)

	session, err := s.getSession(ctx, code)
	if err != nil {
		return nil, err
	}

	if session.IsLocked() || session.FirstSubmitter == "" || session.FirstSubmitter != input.Username {
		return &CanRequestRandomOutput{CanRequest: false}, nil
	}

	count, err := s.restaurantRepo.CountRestaurants(ctx, &restaurantRepo.CountRestaurantsInput{
		SessionCode: code,
	})
	if err != nil {
		return nil, err
	}

	return &CanRequestRandomOutput{
		CanRequest: count > 0,
	}, nil
}

// DrawRandom picks one suggestion uniformly at random and locks the
// session. Every precondition is re-checked inside the critical
// section; the winning read, the selection, and the lock transition
// cannot interleave with submissions, deletions, or other draws on the
// same session. The session record is written exactly once, so a
// failed save leaves the session untouched.
func (s *service) DrawRandom(ctx context.Context, input *DrawRandomInput) (*DrawRandomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	code := canonicalCode(input.SessionCode)

	s.locks.Lock(code)
	defer s.locks.Unlock(code)

	session, err := s.getSession(ctx, code)
	if err != nil {
		return nil, err
	}

	if session.IsLocked() {
		return nil, ErrSessionLocked
	}

	restaurants, err := s.restaurantRepo.GetRestaurants(ctx, &restaurantRepo.GetRestaurantsInput{
		SessionCode: code,
	})
	if err != nil {
		return nil, err
	}

	if len(restaurants) == 0 {
		return nil, ErrNoRestaurants
	}

	if session.FirstSubmitter != input.RequestedBy {
		return nil, ErrNotFirstSubmitter
	}

	winner := restaurants[s.picker.Pick(len(restaurants))]

	now := s.clock.Now()
	session.Status = models.SessionStatusLocked
	session.Selection = winner
	session.LockedAt = &now

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	return &DrawRandomOutput{
		Restaurant: winner,
	}, nil
}
