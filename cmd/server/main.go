package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/eatwhat/internal/common/clock"
	"github.com/KirkDiggler/eatwhat/internal/common/uuid"
	"github.com/KirkDiggler/eatwhat/internal/config"
	"github.com/KirkDiggler/eatwhat/internal/handlers/rest"
	"github.com/KirkDiggler/eatwhat/internal/random"
	restaurantRepo "github.com/KirkDiggler/eatwhat/internal/repositories/restaurant"
	sessionRepo "github.com/KirkDiggler/eatwhat/internal/repositories/session"
	userRepo "github.com/KirkDiggler/eatwhat/internal/repositories/user"
	sessionService "github.com/KirkDiggler/eatwhat/internal/services/session"
	userService "github.com/KirkDiggler/eatwhat/internal/services/user"
	"github.com/KirkDiggler/eatwhat/internal/sessioncode"
)

func main() {
	cfg := config.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	restaurants, err := restaurantRepo.NewRedis(&restaurantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create restaurant repository: %v", err)
	}

	users, err := userRepo.NewRedis(&userRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	// Initialize services
	userSvc, err := userService.New(&userService.Config{
		UserRepo: users,
		Clock:    clock.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create user service: %v", err)
	}

	// Import the user allow-list when one is configured
	if cfg.UsersCSV != "" {
		f, err := os.Open(cfg.UsersCSV)
		if err != nil {
			log.Fatalf("Failed to open users CSV %s: %v", cfg.UsersCSV, err)
		}

		imported, err := userSvc.ImportCSV(ctx, &userService.ImportCSVInput{
			Reader: f,
		})
		_ = f.Close()
		if err != nil {
			log.Fatalf("Failed to import users from %s: %v", cfg.UsersCSV, err)
		}

		log.Printf("Imported users from %s: imported=%d skipped=%d",
			cfg.UsersCSV, imported.Imported, imported.Skipped)
	}

	sessionSvc, err := sessionService.New(&sessionService.Config{
		SessionRepo:    sessions,
		RestaurantRepo: restaurants,
		UserRepo:       users,
		CodeGenerator:  sessioncode.New(&sessioncode.Config{}),
		Picker:         random.New(&random.Config{}),
		Clock:          clock.New(),
		UUID:           uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	// Initialize the REST handler
	handler, err := rest.New(&rest.Config{
		SessionService: sessionSvc,
		UserService:    userSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create REST handler: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	handler.RegisterRoutes(r)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Printf("Server listening on :%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server has been shut down")
}
