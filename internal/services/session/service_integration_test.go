package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/eatwhat/internal/common/clock"
	"github.com/KirkDiggler/eatwhat/internal/common/uuid"
	"github.com/KirkDiggler/eatwhat/internal/models"
	"github.com/KirkDiggler/eatwhat/internal/random"
	restaurantRepo "github.com/KirkDiggler/eatwhat/internal/repositories/restaurant"
	sessionRepo "github.com/KirkDiggler/eatwhat/internal/repositories/session"
	"github.com/KirkDiggler/eatwhat/internal/sessioncode"
)

// SessionServiceIntegrationTestSuite runs the service against real
// repositories backed by miniredis, exercising the concurrency paths
// that mock-based tests cannot.
type SessionServiceIntegrationTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	service Service
	ctx     context.Context
}

func (s *SessionServiceIntegrationTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	s.ctx = context.Background()

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	restaurants, err := restaurantRepo.NewRedis(&restaurantRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	svc, err := New(&Config{
		SessionRepo:    sessions,
		RestaurantRepo: restaurants,
		CodeGenerator:  sessioncode.New(&sessioncode.Config{Seed: 42}),
		Picker:         random.New(&random.Config{Seed: 42}),
		Clock:          clock.New(),
		UUID:           uuid.New(),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *SessionServiceIntegrationTestSuite) TearDownTest() {
	_ = s.client.Close()
	s.mr.Close()
}

func TestSessionServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceIntegrationTestSuite))
}

func (s *SessionServiceIntegrationTestSuite) createSession(initiator string) *models.Session {
	result, err := s.service.CreateSession(s.ctx, &CreateSessionInput{
		Username: initiator,
	})
	s.Require().NoError(err)
	return result.Session
}

func (s *SessionServiceIntegrationTestSuite) TestConcurrentFirstSubmissions() {
	session := s.createSession("alice")

	const workers = 20

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := s.service.SubmitRestaurant(s.ctx, &SubmitRestaurantInput{
				SessionCode: session.Code,
				Name:        fmt.Sprintf("Restaurant %d", i),
				SubmittedBy: fmt.Sprintf("user%d", i),
			})
			s.NoError(err)
		}(i)
	}

	wg.Wait()

	loaded, err := s.service.GetSession(s.ctx, &GetSessionInput{Code: session.Code})
	s.Require().NoError(err)

	listed, err := s.service.ListRestaurants(s.ctx, &ListRestaurantsInput{
		SessionCode: session.Code,
	})
	s.Require().NoError(err)
	s.Require().Len(listed.Restaurants, workers)

	// Exactly one submitter claimed the privilege, and it is whoever
	// landed first in the ledger.
	s.NotEmpty(loaded.Session.FirstSubmitter)
	s.Equal(listed.Restaurants[0].SubmittedBy, loaded.Session.FirstSubmitter)
}

func (s *SessionServiceIntegrationTestSuite) TestConcurrentDrawsLockOnce() {
	session := s.createSession("alice")

	for i := 0; i < 5; i++ {
		_, err := s.service.SubmitRestaurant(s.ctx, &SubmitRestaurantInput{
			SessionCode: session.Code,
			Name:        fmt.Sprintf("Restaurant %d", i),
			SubmittedBy: "alice",
		})
		s.Require().NoError(err)
	}

	const workers = 10

	var wg sync.WaitGroup
	wg.Add(workers)

	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := s.service.DrawRandom(s.ctx, &DrawRandomInput{
				SessionCode: session.Code,
				RequestedBy: "alice",
			})
			errs[i] = err
		}(i)
	}

	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			s.Equal(ErrSessionLocked, err)
		}
	}
	s.Equal(1, succeeded)

	loaded, err := s.service.GetSession(s.ctx, &GetSessionInput{Code: session.Code})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusLocked, loaded.Session.Status)
	s.Require().NotNil(loaded.Session.Selection)
	s.Require().NotNil(loaded.Session.LockedAt)
}

func (s *SessionServiceIntegrationTestSuite) TestFullSessionFlow() {
	session := s.createSession("alice")
	code := session.Code

	// alice submits first and claims the draw privilege
	first, err := s.service.SubmitRestaurant(s.ctx, &SubmitRestaurantInput{
		SessionCode: code,
		Name:        "Pizza Place",
		SubmittedBy: "alice",
	})
	s.Require().NoError(err)

	_, err = s.service.SubmitRestaurant(s.ctx, &SubmitRestaurantInput{
		SessionCode: code,
		Name:        "Taco Truck",
		SubmittedBy: "bob",
	})
	s.Require().NoError(err)

	// bob never gets the privilege, even after alice deletes her entry
	canBob, err := s.service.CanRequestRandom(s.ctx, &CanRequestRandomInput{
		SessionCode: code,
		Username:    "bob",
	})
	s.Require().NoError(err)
	s.False(canBob.CanRequest)

	_, err = s.service.DeleteRestaurant(s.ctx, &DeleteRestaurantInput{
		SessionCode:  code,
		RestaurantID: first.Restaurant.ID,
		RequestedBy:  "alice",
	})
	s.Require().NoError(err)

	canAlice, err := s.service.CanRequestRandom(s.ctx, &CanRequestRandomInput{
		SessionCode: code,
		Username:    "alice",
	})
	s.Require().NoError(err)
	s.True(canAlice.CanRequest)

	// bob cannot draw
	_, err = s.service.DrawRandom(s.ctx, &DrawRandomInput{
		SessionCode: code,
		RequestedBy: "bob",
	})
	s.Require().Error(err)
	s.Equal(ErrNotFirstSubmitter, err)

	// alice draws; only bob's entry remains
	drawn, err := s.service.DrawRandom(s.ctx, &DrawRandomInput{
		SessionCode: code,
		RequestedBy: "alice",
	})
	s.Require().NoError(err)
	s.Equal("Taco Truck", drawn.Restaurant.Name)

	// the locked session rejects further writes
	_, err = s.service.SubmitRestaurant(s.ctx, &SubmitRestaurantInput{
		SessionCode: code,
		Name:        "Sushi Bar",
		SubmittedBy: "carol",
	})
	s.Require().Error(err)
	s.Equal(ErrSessionLocked, err)

	loaded, err := s.service.GetSession(s.ctx, &GetSessionInput{Code: code})
	s.Require().NoError(err)
	s.True(loaded.Session.IsLocked())
	s.Equal("Taco Truck", loaded.Session.Selection.Name)
	s.Equal("alice", loaded.Session.FirstSubmitter)
}

func (s *SessionServiceIntegrationTestSuite) TestDrawBeforeAnySubmission() {
	session := s.createSession("alice")

	_, err := s.service.DrawRandom(s.ctx, &DrawRandomInput{
		SessionCode: session.Code,
		RequestedBy: "alice",
	})
	s.Require().Error(err)
	s.Equal(ErrNoRestaurants, err)
}
