package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/astroguard/backend/internal/api"
	"github.com/astroguard/backend/internal/cache"
	"github.com/astroguard/backend/internal/config"
	"github.com/astroguard/backend/internal/elevation"
	"github.com/astroguard/backend/internal/middleware"
	"github.com/astroguard/backend/internal/nasa"
	"github.com/astroguard/backend/internal/store"
	"github.com/astroguard/backend/internal/ws"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database (optional - simulation history is disabled without it)
	var st *store.Store
	if cfg.DatabaseURL != "" {
		db, err := store.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Run migrations on start if requested
		if os.Getenv("MIGRATE_ON_START") == "true" {
			log.Println("↗ Running DB migrations on startup...")
			if err := store.RunMigrations(cfg.DatabaseURL); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		}

		st = store.New(db)
	} else {
		log.Println("[STORE] DATABASE_URL not set - simulation history disabled")
	}

	// Initialize cache: Redis when configured, in-process otherwise
	var cc cache.Cache
	if cfg.RedisURL != "" {
		rdb, err := cache.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		cc = cache.NewRedisCache(rdb)
		log.Println("[CACHE] using Redis backend")
	} else {
		ttl := time.Duration(cfg.CacheTTLMinutes) * time.Minute
		cc = cache.NewMemoryCache(ttl, 2*ttl)
		log.Println("[CACHE] REDIS_URL not set - using in-memory backend")
	}

	// Upstream API clients
	nasaClient := nasa.NewClient(cfg, cc)
	elevClient := elevation.NewClient(cfg, cc)

	// Live close-approach feed over WebSocket
	hub := ws.NewHub()
	go hub.Run(context.Background())
	ws.StartCloseApproachPoller(context.Background(), hub, nasaClient,
		time.Duration(cfg.NEORefreshMinutes)*time.Minute)

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg))

	// Initialize API handlers
	api.SetupRoutes(router, nasaClient, elevClient, st, cc, hub, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting AstroGuard server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
