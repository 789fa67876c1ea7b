package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string        // Listen address
	DatabaseURL    string        // Postgres connection string
	RedisURL       string        // Optional; empty disables the resolve cache
	BaseURL        string        // Public base URL used in short links and QR codes
	JWTSecret      string        // Secret key for JWT token signing
	JWTTTL         time.Duration // JWT token lifetime
	ResolveTimeout time.Duration // Upper bound on the redirect-path store lookup
	ClickQueueSize int           // Capacity of the in-process click recording queue

	RateLimitRPS           float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst         int     // Burst size for general rate limiting
	RateLimitAuthRPS       float64 // Rate limit for auth endpoints (stricter)
	RateLimitAuthBurst     int     // Burst size for auth endpoints
	RateLimitRedirectRPS   float64 // Rate limit for redirects (lenient)
	RateLimitRedirectBurst int     // Burst size for redirects
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Addr:           getEnv("ADDR", ":8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		BaseURL:        getEnv("BASE_URL", "http://localhost:8080"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTTTL:         time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		ResolveTimeout: time.Duration(getEnvInt("RESOLVE_TIMEOUT_MS", 2000)) * time.Millisecond,
		ClickQueueSize: getEnvInt("CLICK_QUEUE_SIZE", 1024),

		RateLimitRPS:           getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:         getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:       getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		RateLimitAuthBurst:     getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
		RateLimitRedirectRPS:   getEnvFloat("RATE_LIMIT_REDIRECT_RPS", 30),
		RateLimitRedirectBurst: getEnvInt("RATE_LIMIT_REDIRECT_BURST", 60),
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
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
