// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Search      SearchConfig
	Amadeus     AmadeusConfig
	Interpreter InterpreterConfig
	Redis       RedisConfig
	Logging     LoggingConfig
	App         AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"45s"`
}

// SearchConfig holds pipeline settings.
type SearchConfig struct {
	GlobalTimeout time.Duration `env:"SEARCH_GLOBAL_TIMEOUT" envDefault:"30s"`
	BatchTimeout  time.Duration `env:"SEARCH_BATCH_TIMEOUT" envDefault:"10s"`

	// MaxDispatched caps how many planned date combinations one search
	// actually sends to the provider.
	MaxDispatched int `env:"SEARCH_MAX_DISPATCHED" envDefault:"3"`
}

// AmadeusConfig holds the flight-offers provider settings.
type AmadeusConfig struct {
	BaseURL           string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	TokenURL          string        `env:"AMADEUS_TOKEN_URL" envDefault:"https://test.api.amadeus.com/v1/security/oauth2/token"`
	ClientID          string        `env:"AMADEUS_CLIENT_ID"`
	ClientSecret      string        `env:"AMADEUS_CLIENT_SECRET"`
	Timeout           time.Duration `env:"AMADEUS_TIMEOUT" envDefault:"10s"`
	RequestsPerSecond float64       `env:"AMADEUS_RATE_LIMIT" envDefault:"5"`
	Burst             int           `env:"AMADEUS_RATE_BURST" envDefault:"10"`
}

// InterpreterConfig holds the natural-language interpreter settings. The
// interpreter is optional: without an API key, free-text queries fall back to
// default preferences.
type InterpreterConfig struct {
	BaseURL string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
	APIKey  string        `env:"OPENAI_API_KEY"`
	Model   string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	Timeout time.Duration `env:"OPENAI_TIMEOUT" envDefault:"15s"`
}

// Enabled reports whether the interpreter is configured.
func (c InterpreterConfig) Enabled() bool {
	return c.APIKey != ""
}

// RedisConfig holds the offer-cache settings. The cache is optional.
type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_OFFER_TTL" envDefault:"5m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Search.GlobalTimeout <= 0 {
		return fmt.Errorf("SEARCH_GLOBAL_TIMEOUT must be positive")
	}
	if cfg.Search.BatchTimeout <= 0 {
		return fmt.Errorf("SEARCH_BATCH_TIMEOUT must be positive")
	}
	if cfg.Search.BatchTimeout >= cfg.Search.GlobalTimeout {
		return fmt.Errorf("SEARCH_BATCH_TIMEOUT (%s) should be less than SEARCH_GLOBAL_TIMEOUT (%s)",
			cfg.Search.BatchTimeout, cfg.Search.GlobalTimeout)
	}
	if cfg.Search.MaxDispatched < 1 || cfg.Search.MaxDispatched > domain.MaxPlannedCombinations {
		return fmt.Errorf("SEARCH_MAX_DISPATCHED must be between 1 and %d, got %d",
			domain.MaxPlannedCombinations, cfg.Search.MaxDispatched)
	}

	if cfg.Amadeus.ClientID == "" || cfg.Amadeus.ClientSecret == "" {
		return fmt.Errorf("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are required")
	}
	if cfg.Amadeus.Timeout <= 0 {
		return fmt.Errorf("AMADEUS_TIMEOUT must be positive")
	}
	if cfg.Amadeus.RequestsPerSecond <= 0 {
		return fmt.Errorf("AMADEUS_RATE_LIMIT must be positive")
	}

	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required when REDIS_ENABLED is true")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
