package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"weblive_server/config"
	"weblive_server/internal/ai"
	"weblive_server/internal/api"
	"weblive_server/internal/planner"
	"weblive_server/internal/storage"
)

func main() {
	// Load .env before viper reads the environment.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// Store: Redis when configured, in-memory otherwise.
	var store storage.Store
	if cfg.RedisAddr != "" {
		redisStore, err := storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Could not connect to redis at %s: %v", cfg.RedisAddr, err)
		}
		store = redisStore
		log.Printf("Using redis store at %s", cfg.RedisAddr)
	} else {
		store = storage.NewMemoryStore()
		log.Println("Using in-memory store")
	}

	// AI planner: optional. Without a key the orchestrator serves every
	// request from the deterministic generator.
	var caller planner.ModelCaller
	if aiPlanner, err := ai.NewPlanner(cfg.OpenAIKey, cfg.OpenAIModel); err != nil {
		log.Printf("WARN: AI planner disabled: %v", err)
	} else {
		caller = aiPlanner
		log.Printf("AI planner enabled (model %s)", cfg.OpenAIModel)
	}
	orchestrator := planner.NewOrchestrator(caller, cfg.MaxPages)

	apiHandler := api.NewAPIHandler(
		orchestrator,
		store,
		time.Duration(cfg.ProjectTTLHours)*time.Hour,
	)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Timeouts to prevent slow client attacks.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}
