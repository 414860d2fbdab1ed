package session

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
	// Key prefix for Redis
	sessionKeyPrefix = "session:"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// sessionKey builds the storage key for a code. Codes are stored
// uppercase so mixed-case lookups hit the same record.
func sessionKey(code string) string {
	return sessionKeyPrefix + strings.ToUpper(code)
}

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.Code == "" {
		return errors.New("session code cannot be empty")
	}

	// Marshal the session to JSON
	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	err = r.client.Set(ctx, sessionKey(input.Session.Code), sessionJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by code from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and code cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.Code)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	// Unmarshal the session from JSON
	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// CodeInUse reports whether a session exists for the given code
func (r *redisRepository) CodeInUse(ctx context.Context, input *CodeInUseInput) (bool, error) {
	if input == nil || input.Code == "" {
		return false, errors.New("input and code cannot be empty")
	}

	exists, err := r.client.Exists(ctx, sessionKey(input.Code)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check code: %w", err)
	}

	return exists > 0, nil
}
