package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	OddsAPIKey         string        `env:"ODDS_API_KEY" envDefault:"-"`
	OpenAIAPIKey       string        `env:"OPENAI_API_KEY" envDefault:"-"`
	OpenAIModel        string        `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	DatabaseURL        string        `env:"DATABASE_URL" envDefault:""`
	AppEnv             string        `env:"APP_ENV" envDefault:"development"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout     int           `env:"REQUEST_TIMEOUT" envDefault:"30"` // seconds
	CacheTTL           time.Duration // CACHE_TTL_MINUTES, default 5
	RateLimitMax       int           `env:"RATE_LIMIT_MAX" envDefault:"10"`
	RateLimitWindow    time.Duration // RATE_LIMIT_WINDOW_MINUTES, default 60
	OracleMaxTokens    int           `env:"ORACLE_MAX_TOKENS" envDefault:"4096"`
	MaxGamesPerRequest int           `env:"MAX_GAMES_PER_REQUEST" envDefault:"10"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.Port = getEnvWithDefault("PORT", "8080")
	cfg.OddsAPIKey = os.Getenv("ODDS_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.AppEnv = getEnvWithDefault("APP_ENV", "development")
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 30)
	cfg.CacheTTL = time.Duration(getEnvIntWithDefault("CACHE_TTL_MINUTES", 5)) * time.Minute
	cfg.RateLimitMax = getEnvIntWithDefault("RATE_LIMIT_MAX", 10)
	cfg.RateLimitWindow = time.Duration(getEnvIntWithDefault("RATE_LIMIT_WINDOW_MINUTES", 60)) * time.Minute
	cfg.OracleMaxTokens = getEnvIntWithDefault("ORACLE_MAX_TOKENS", 4096)
	cfg.MaxGamesPerRequest = getEnvIntWithDefault("MAX_GAMES_PER_REQUEST", 10)

	return &cfg, nil
}

// IsProduction reports whether the deployment mode requires TLS on the
// persistence connection.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
