// Package config loads server settings from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server settings
type Config struct {
	ServerPort    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// UsersCSV is the path to a user allow-list to import at startup.
	// Empty means no import and an open identity policy.
	UsersCSV string

	// CORSOrigins is the comma-separated list of allowed origins
	CORSOrigins string
}

// Load reads settings from the environment. A .env file is honored
// when present so local development does not need exported variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		UsersCSV:      getEnv("USERS_CSV", ""),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
