package restaurant

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/eatwhat/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) addRestaurant(id, name, submittedBy string, offset time.Duration) *models.Restaurant {
	r := &models.Restaurant{
		ID:          id,
		SessionCode: "ABC123",
		Name:        name,
		SubmittedBy: submittedBy,
		SubmittedAt: s.testNow.Add(offset),
	}
	s.Require().NoError(s.repo.AddRestaurant(context.Background(), &AddRestaurantInput{
		Restaurant: r,
	}))
	return r
}

func (s *RedisRepositoryTestSuite) TestAddAndGetRestaurant() {
	s.addRestaurant("restaurant-1", "Pizza Place", "alice", 0)

	retrieved, err := s.repo.GetRestaurant(context.Background(), &GetRestaurantInput{
		SessionCode:  "ABC123",
		RestaurantID: "restaurant-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("restaurant-1", retrieved.ID)
	s.Equal("ABC123", retrieved.SessionCode)
	s.Equal("Pizza Place", retrieved.Name)
	s.Equal("alice", retrieved.SubmittedBy)
	s.Equal(s.testNow.Unix(), retrieved.SubmittedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetRestaurantNotFound() {
	_, err := s.repo.GetRestaurant(context.Background(), &GetRestaurantInput{
		SessionCode:  "ABC123",
		RestaurantID: "missing",
	})
	s.Require().Error(err)
	s.Equal(ErrRestaurantNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestGetRestaurantWrongSession() {
	s.addRestaurant("restaurant-1", "Pizza Place", "alice", 0)

	_, err := s.repo.GetRestaurant(context.Background(), &GetRestaurantInput{
		SessionCode:  "ZZZ999",
		RestaurantID: "restaurant-1",
	})
	s.Require().Error(err)
	s.Equal(ErrRestaurantNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestGetRestaurantsInsertionOrder() {
	for i := 0; i < 5; i++ {
		s.addRestaurant(
			fmt.Sprintf("restaurant-%d", i),
			fmt.Sprintf("Place %d", i),
			"alice",
			time.Duration(i)*time.Second,
		)
	}

	restaurants, err := s.repo.GetRestaurants(context.Background(), &GetRestaurantsInput{
		SessionCode: "ABC123",
	})
	s.Require().NoError(err)
	s.Require().Len(restaurants, 5)

	for i, r := range restaurants {
		s.Equal(fmt.Sprintf("restaurant-%d", i), r.ID)
	}
}

func (s *RedisRepositoryTestSuite) TestGetRestaurantsOrderSurvivesEqualTimestamps() {
	// Same submission instant, IDs chosen so lexical member order would
	// invert insertion order if scores ever tied
	s.addRestaurant("zzzz-first", "First Submitted", "alice", 0)
	s.addRestaurant("aaaa-second", "Second Submitted", "bob", 0)

	restaurants, err := s.repo.GetRestaurants(context.Background(), &GetRestaurantsInput{
		SessionCode: "ABC123",
	})
	s.Require().NoError(err)
	s.Require().Len(restaurants, 2)

	s.Equal("First Submitted", restaurants[0].Name)
	s.Equal("Second Submitted", restaurants[1].Name)
}

func (s *RedisRepositoryTestSuite) TestGetRestaurantsEmptySession() {
	restaurants, err := s.repo.GetRestaurants(context.Background(), &GetRestaurantsInput{
		SessionCode: "ABC123",
	})
	s.Require().NoError(err)
	s.Empty(restaurants)
}

func (s *RedisRepositoryTestSuite) TestGetRestaurantsCaseInsensitiveCode() {
	s.addRestaurant("restaurant-1", "Pizza Place", "alice", 0)

	restaurants, err := s.repo.GetRestaurants(context.Background(), &GetRestaurantsInput{
		SessionCode: "abc123",
	})
	s.Require().NoError(err)
	s.Len(restaurants, 1)
}

func (s *RedisRepositoryTestSuite) TestRemoveRestaurant() {
	s.addRestaurant("restaurant-1", "Pizza Place", "alice", 0)
	s.addRestaurant("restaurant-2", "Tacos", "bob", time.Second)

	err := s.repo.RemoveRestaurant(context.Background(), &RemoveRestaurantInput{
		SessionCode:  "ABC123",
		RestaurantID: "restaurant-1",
	})
	s.Require().NoError(err)

	// Gone from direct lookup
	_, err = s.repo.GetRestaurant(context.Background(), &GetRestaurantInput{
		SessionCode:  "ABC123",
		RestaurantID: "restaurant-1",
	})
	s.Require().Error(err)
	s.Equal(ErrRestaurantNotFound, err)

	// Gone from the session ledger
	restaurants, err := s.repo.GetRestaurants(context.Background(), &GetRestaurantsInput{
		SessionCode: "ABC123",
	})
	s.Require().NoError(err)
	s.Require().Len(restaurants, 1)
	s.Equal("restaurant-2", restaurants[0].ID)
}

func (s *RedisRepositoryTestSuite) TestRemoveRestaurantNotFound() {
	err := s.repo.RemoveRestaurant(context.Background(), &RemoveRestaurantInput{
		SessionCode:  "ABC123",
		RestaurantID: "missing",
	})
	s.Require().Error(err)
	s.Equal(ErrRestaurantNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestCountRestaurants() {
	count, err := s.repo.CountRestaurants(context.Background(), &CountRestaurantsInput{
		SessionCode: "ABC123",
	})
	s.Require().NoError(err)
	s.Equal(int64(0), count)

	s.addRestaurant("restaurant-1", "Pizza Place", "alice", 0)
	s.addRestaurant("restaurant-2", "Tacos", "bob", time.Second)

	count, err = s.repo.CountRestaurants(context.Background(), &CountRestaurantsInput{
		SessionCode: "abc123",
	})
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}
