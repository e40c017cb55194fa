package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Server
	Port        string
	FrontendURL string

	// Optional backing services (empty disables the feature)
	DatabaseURL string
	RedisURL    string

	// NASA / JPL endpoints
	NASAAPIKey   string
	SentryAPIURL string
	SBDBAPIURL   string
	NeoAPIURL    string

	// Elevation providers
	USGSElevationURL      string
	OpenMeteoElevationURL string

	// Upstream behavior
	UpstreamTimeoutSecs  int
	UpstreamRateLimitRPS float64
	UpstreamRateBurst    int
	CacheTTLMinutes      int

	// Simulation settings
	TrajectorySamples  int
	NEORefreshMinutes  int
	NEOLookaheadDays   int
	SimHistoryPageSize int

	// Security
	JWTSecret         string
	AdminPasswordHash string // bcrypt hash; empty disables admin endpoints
	SessionTimeoutMin int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Backing services
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),

		// NASA / JPL
		NASAAPIKey:   getEnv("NASA_API_KEY", "DEMO_KEY"),
		SentryAPIURL: getEnv("SENTRY_API_URL", "https://ssd-api.jpl.nasa.gov/sentry.api"),
		SBDBAPIURL:   getEnv("SBDB_API_URL", "https://ssd-api.jpl.nasa.gov/sbdb.api"),
		NeoAPIURL:    getEnv("NEO_API_URL", "https://api.nasa.gov/neo/rest/v1/feed"),

		// Elevation
		USGSElevationURL:      getEnv("USGS_ELEVATION_URL", "https://elevation.nationalmap.gov/EPQS/v1/json"),
		OpenMeteoElevationURL: getEnv("OPEN_METEO_ELEVATION_URL", "https://api.open-meteo.com/v1/elevation"),

		// Upstream behavior
		UpstreamTimeoutSecs:  getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 10),
		UpstreamRateLimitRPS: getEnvFloat("UPSTREAM_RATE_LIMIT_RPS", 1.0),
		UpstreamRateBurst:    getEnvInt("UPSTREAM_RATE_LIMIT_BURST", 5),
		CacheTTLMinutes:      getEnvInt("CACHE_TTL_MINUTES", 15),

		// Simulation
		TrajectorySamples:  getEnvInt("TRAJECTORY_SAMPLES", 100),
		NEORefreshMinutes:  getEnvInt("NEO_REFRESH_MINUTES", 10),
		NEOLookaheadDays:   getEnvInt("NEO_LOOKAHEAD_DAYS", 7),
		SimHistoryPageSize: getEnvInt("SIM_HISTORY_PAGE_SIZE", 50),

		// Security
		JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		SessionTimeoutMin: getEnvInt("SESSION_TIMEOUT_MINUTES", 30),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
