package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Upstream backend
	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	// Auth
	JWTSecret string
	JWTIssuer string

	// Rate limiting
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("UPSTREAM_BASE_URL", "")
	viper.SetDefault("UPSTREAM_TIMEOUT", "30s")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "freight-console-app")
	viper.SetDefault("RATE_LIMIT", "100-M")

	// This allows overriding defaults with .env file values, which can then be overridden by actual environment variables.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.UpstreamBaseURL = viper.GetString("UPSTREAM_BASE_URL")
	if cfg.UpstreamBaseURL == "" {
		log.Println("Warning: UPSTREAM_BASE_URL environment variable not set.")
	}

	upstreamTimeoutStr := viper.GetString("UPSTREAM_TIMEOUT")
	upstreamTimeout, err := time.ParseDuration(upstreamTimeoutStr)
	if err != nil {
		upstreamTimeout = 30 * time.Second
		if upstreamTimeoutStr != "" {
			log.Printf("Warning: Invalid value for UPSTREAM_TIMEOUT ('%s'). Defaulting to %s.\n", upstreamTimeoutStr, upstreamTimeout.String())
		}
	}
	cfg.UpstreamTimeout = upstreamTimeout

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
