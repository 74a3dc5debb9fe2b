package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EmailConfig holds settings for the outgoing mailer.
type EmailConfig struct {
	Provider           string // "ses" or "noop"
	FromAddress        string
	FromName           string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	InsecureSkipVerify bool
}

// Config holds all configuration for the application
type Config struct {
	DBPath             string
	Environment        string
	Port               string
	CORSAllowedOrigins []string
	Email              EmailConfig
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		DBPath:      os.Getenv("THEATER_DB_PATH"),
		Port:        os.Getenv("PORT"),
		Email: EmailConfig{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			AWSRegion:          os.Getenv("AWS_REGION"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			InsecureSkipVerify: os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
		},
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = strings.Split(origins, ",")
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "theater.db"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
	}

	return cfg, nil
}
