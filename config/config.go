package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	// Base URL of the platform REST API the console talks to
	APIBaseURL string

	// Cache tuning
	CacheStaleTime  time.Duration
	CacheEvictAfter time.Duration
	CacheSweepSpec  string

	// Read queries get a single bounded retry; mutations are never retried
	ReadRetryCount int

	UploadMaxBytes int64
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api"),

		CacheStaleTime:  time.Duration(getEnvInt("CACHE_STALE_MINUTES", 5)) * time.Minute,
		CacheEvictAfter: time.Duration(getEnvInt("CACHE_EVICT_MINUTES", 30)) * time.Minute,
		CacheSweepSpec:  getEnv("CACHE_SWEEP_SPEC", "@every 10m"),

		ReadRetryCount: getEnvInt("READ_RETRY_COUNT", 1),

		UploadMaxBytes: int64(getEnvInt("UPLOAD_MAX_MB", 10)) << 20,
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
