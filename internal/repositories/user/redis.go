package user

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
	userKeyPrefix = "user:"
	usernamesKey  = "usernames"
	emailIndexKey = "user:emails"
)

// ErrUserNotFound is returned when a user is not found
var ErrUserNotFound = errors.New("user not found")

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user repository
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

func userKey(username string) string {
	return userKeyPrefix + username
}

// SaveUser persists a user to Redis
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	if input.User.Username == "" {
		return errors.New("username cannot be empty")
	}

	// Marshal the user to JSON
	userJSON, err := json.Marshal(input.User)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	pipe.Set(ctx, userKey(input.User.Username), userJSON, 0)
	pipe.SAdd(ctx, usernamesKey, input.User.Username)

	if input.User.Email != "" {
		pipe.SAdd(ctx, emailIndexKey, strings.ToLower(input.User.Email))
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by username from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.Username == "" {
		return nil, errors.New("input and username cannot be empty")
	}

	userJSON, err := r.client.Get(ctx, userKey(input.Username)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Unmarshal the user from JSON
	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// ListUsers retrieves all registered users from Redis
func (r *redisRepository) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	usernames, err := r.client.SMembers(ctx, usernamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list usernames: %w", err)
	}

	if len(usernames) == 0 {
		return &ListUsersOutput{
			Users: []*models.User{},
		}, nil
	}

	// Get all users using a pipeline
	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd)

	for _, username := range usernames {
		commands[username] = pipe.Get(ctx, userKey(username))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	users := make([]*models.User, 0, len(usernames))
	for username, cmd := range commands {
		userJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// User was removed between reading the set and fetching the record
				continue
			}
			return nil, fmt.Errorf("failed to get user %s: %w", username, err)
		}

		var user models.User
		if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user %s: %w", username, err)
		}

		users = append(users, &user)
	}

	return &ListUsersOutput{
		Users: users,
	}, nil
}

// CountUsers returns the number of registered users
func (r *redisRepository) CountUsers(ctx context.Context, input *CountUsersInput) (int64, error) {
	count, err := r.client.SCard(ctx, usernamesKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

// EmailInUse reports whether a user is registered with the given email
func (r *redisRepository) EmailInUse(ctx context.Context, input *EmailInUseInput) (bool, error) {
	if input == nil || input.Email == "" {
		return false, errors.New("input and email cannot be empty")
	}

	inUse, err := r.client.SIsMember(ctx, emailIndexKey, strings.ToLower(input.Email)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return inUse, nil
}
