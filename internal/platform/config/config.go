package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// APIBaseURL is the base URL of the remote banking backend.
	APIBaseURL string
	// APIToken is the bearer token used against the backend. It is the
	// only place credentials live; nothing stores them globally.
	APIToken     string
	Port         string
	IsProduction bool
	// HTTPTimeout bounds every call to the backend.
	HTTPTimeout time.Duration
	// RateLimit is a ulule/limiter formatted rate, e.g. "60-M".
	RateLimit string
	// CORSAllowOrigins lists the origins allowed to call the dashboard API.
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("API_TOKEN", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("HTTP_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.APIBaseURL = viper.GetString("API_BASE_URL")
	if cfg.APIBaseURL == "" {
		log.Println("Warning: API_BASE_URL environment variable not set.")
	}

	cfg.APIToken = viper.GetString("API_TOKEN")
	if cfg.APIToken == "" {
		log.Println("Warning: API_TOKEN not set. Backend calls will be unauthenticated until a login is performed.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	timeoutStr := viper.GetString("HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for HTTP_TIMEOUT (%q). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.HTTPTimeout = timeout

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")

	return cfg, nil
}
