package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	MediaLocal = "local"
	MediaGCS   = "gcs"
)

type AppConfig struct {
	DatabaseURL string
	DBDriver    string
	DBLogLevel  string
	Port        string
	LogLevel    string

	MediaBackend  string
	MediaDir      string
	GCSProjectID  string
	GCSBucketName string
}

// Load reads .env (if present) and the process environment.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	cfg := &AppConfig{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBDriver:      Get("DB_DRIVER", "postgres"),
		DBLogLevel:    Get("DB_LOG_LEVEL", "warn"),
		Port:          Get("PORT", "3000"),
		LogLevel:      Get("LOG_LEVEL", "info"),
		MediaBackend:  Get("MEDIA_BACKEND", MediaLocal),
		MediaDir:      Get("MEDIA_DIR", "media"),
		GCSProjectID:  os.Getenv("GCS_PROJECT_ID"),
		GCSBucketName: os.Getenv("GCS_BUCKET_NAME"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL not set")
	}

	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	switch c.MediaBackend {
	case MediaLocal:
	case MediaGCS:
		if c.GCSBucketName == "" {
			return errors.New("GCS_BUCKET_NAME not set")
		}
	default:
		return fmt.Errorf("unsupported MEDIA_BACKEND %q", c.MediaBackend)
	}
	return nil
}

// Get returns the value of envVar, or fallback when it is unset or blank.
func Get(envVar, fallback string) string {
	value := strings.TrimSpace(os.Getenv(envVar))
	if value == "" {
		return fallback
	}
	return value
}
