// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service. It is built once at
// startup and treated as read-only afterwards.
type Config struct {
	Port   string
	AppEnv string

	// Object storage (S3-compatible: MinIO locally, AWS S3 or any compatible
	// provider in production)
	StorageEndpoint  string
	StorageRegion    string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool

	// Upload behavior
	KeyPrefix              string // outermost segment of every object key, e.g. "uploads"
	SignedURLExpiryMinutes int    // lifetime of presigned upload and read URLs
	UsePublicURLs          bool   // resolve access URLs as permanent public URLs instead of signed ones
	MaxUploadSizeBytes     int64  // ceiling for a single uploaded file
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageRegion:    getEnv("STORAGE_REGION", ""),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageBucket:    getEnv("STORAGE_BUCKET", ""),
		StorageUseSSL:    getEnv("STORAGE_USE_SSL", "false") == "true",

		KeyPrefix:              getEnv("STORAGE_KEY_PREFIX", ""),
		SignedURLExpiryMinutes: getEnvInt("SIGNED_URL_EXPIRY_MINUTES", 15),
		UsePublicURLs:          getEnv("USE_PUBLIC_URLS", "false") == "true",
		MaxUploadSizeBytes:     getEnvInt64("MAX_UPLOAD_SIZE_BYTES", 100<<20),
	}
}

// Validate reports configuration errors that must stop the process at startup.
func (c *Config) Validate() error {
	if c.StorageBucket == "" {
		return errors.New("STORAGE_BUCKET must be set")
	}
	if c.SignedURLExpiryMinutes <= 0 {
		return errors.New("SIGNED_URL_EXPIRY_MINUTES must be positive")
	}
	return nil
}

// SignedURLExpiry returns the configured signed-URL lifetime as a duration.
func (c *Config) SignedURLExpiry() time.Duration {
	return time.Duration(c.SignedURLExpiryMinutes) * time.Minute
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid value for %s: %q, using default %d", key, v, fallback)
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Printf("invalid value for %s: %q, using default %d", key, v, fallback)
	}
	return fallback
}
