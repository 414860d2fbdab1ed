package restaurant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/eatwhat/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	restaurantKeyPrefix = "restaurant:"
	ledgerIndexPrefix   = "ledger:"     // per-session insertion-order index
	ledgerSeqPrefix     = "ledger:seq:" // per-session insertion sequence counter
)

// ErrRestaurantNotFound is returned when a suggestion is not found
var ErrRestaurantNotFound = errors.New("restaurant not found")

// Config holds configuration for the Redis restaurant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed restaurant repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func restaurantKey(id string) string {
	return restaurantKeyPrefix + id
}

func ledgerKey(sessionCode string) string {
	return ledgerIndexPrefix + strings.ToUpper(sessionCode)
}

func ledgerSeqKey(sessionCode string) string {
	return ledgerSeqPrefix + strings.ToUpper(sessionCode)
}

// AddRestaurant persists a suggestion to Redis
func (r *redisRepository) AddRestaurant(ctx context.Context, input *AddRestaurantInput) error {
	if input == nil || input.Restaurant == nil {
		return errors.New("input and restaurant cannot be nil")
	}

	if input.Restaurant.ID == "" {
		return errors.New("restaurant ID cannot be empty")
	}

	if input.Restaurant.SessionCode == "" {
		return errors.New("session code cannot be empty")
	}

	// Marshal the restaurant to JSON
	restaurantJSON, err := json.Marshal(input.Restaurant)
	if err != nil {
		return fmt.Errorf("failed to marshal restaurant: %w", err)
	}

	// Draw the next slot in the session's insertion sequence. INCR is
	// atomic server-side, so scores stay strictly increasing even when
	// submissions share a clock instant.
	seq, err := r.client.Incr(ctx, ledgerSeqKey(input.Restaurant.SessionCode)).Result()
	if err != nil {
		return fmt.Errorf("failed to advance ledger sequence: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the restaurant
	pipe.Set(ctx, restaurantKey(input.Restaurant.ID), restaurantJSON, 0)

	// Append it to the session's insertion-order index
	pipe.ZAdd(ctx, ledgerKey(input.Restaurant.SessionCode), redis.Z{
		Score:  float64(seq),
		Member: input.Restaurant.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add restaurant: %w", err)
	}

	return nil
}

// GetRestaurant retrieves a suggestion by ID from Redis
func (r *redisRepository) GetRestaurant(ctx context.Context, input *GetRestaurantInput) (*models.Restaurant, error) {
	if input == nil || input.RestaurantID == "" {
		return nil, errors.New("input and restaurant ID cannot be empty")
	}

	restaurantJSON, err := r.client.Get(ctx, restaurantKey(input.RestaurantID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	// Unmarshal the restaurant from JSON
	var restaurant models.Restaurant
	if err := json.Unmarshal([]byte(restaurantJSON), &restaurant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurant: %w", err)
	}

	// A stale ID from another session is not a hit
	if input.SessionCode != "" && !strings.EqualFold(restaurant.SessionCode, input.SessionCode) {
		return nil, ErrRestaurantNotFound
	}

	return &restaurant, nil
}

// GetRestaurants retrieves all suggestions for a session in insertion order
func (r *redisRepository) GetRestaurants(ctx context.Context, input *GetRestaurantsInput) ([]*models.Restaurant, error) {
	if input == nil || input.SessionCode == "" {
		return nil, errors.New("input and session code cannot be empty")
	}

	// Get the ordered list of suggestion IDs for this session
	ids, err := r.client.ZRange(ctx, ledgerKey(input.SessionCode), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant IDs: %w", err)
	}

	// If there are no suggestions, return an empty slice
	if len(ids) == 0 {
		return []*models.Restaurant{}, nil
	}

	// Get all suggestions using a pipeline, preserving index order
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(ids))

	for i, id := range ids {
		commands[i] = pipe.Get(ctx, restaurantKey(id))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get restaurants: %w", err)
	}

	restaurants := make([]*models.Restaurant, 0, len(ids))
	for i, cmd := range commands {
		restaurantJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Suggestion was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get restaurant %s: %w", ids[i], err)
		}

		var restaurant models.Restaurant
		if err := json.Unmarshal([]byte(restaurantJSON), &restaurant); err != nil {
			return nil, fmt.Errorf("failed to unmarshal restaurant %s: %w", ids[i], err)
		}

		restaurants = append(restaurants, &restaurant)
	}

	return restaurants, nil
}

// RemoveRestaurant deletes a suggestion from Redis. The exists-check
// read and the DEL/ZREM pipeline are not atomic on their own; callers
// must hold the session's key mutex while removing.
func (r *redisRepository) RemoveRestaurant(ctx context.Context, input *RemoveRestaurantInput) error {
	if input == nil || input.RestaurantID == "" {
		return errors.New("input and restaurant ID cannot be empty")
	}

	// Verify the suggestion exists and belongs to the session
	_, err := r.GetRestaurant(ctx, &GetRestaurantInput{
		SessionCode:  input.SessionCode,
		RestaurantID: input.RestaurantID,
	})
	if err != nil {
		return err
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	pipe.Del(ctx, restaurantKey(input.RestaurantID))
	pipe.ZRem(ctx, ledgerKey(input.SessionCode), input.RestaurantID)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove restaurant: %w", err)
	}

	return nil
}

// CountRestaurants returns the number of suggestions in a session
func (r *redisRepository) CountRestaurants(ctx context.Context, input *CountRestaurantsInput) (int64, error) {
	if input == nil || input.SessionCode == "" {
		return 0, errors.New("input and session code cannot be empty")
	}

	count, err := r.client.ZCard(ctx, ledgerKey(input.SessionCode)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}

	return count, nil
}
