package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Provider exposes configuration values to the rest of the application.
// Handlers and services depend on this interface rather than on Config so
// tests can substitute a partial implementation.
type Provider interface {
	GetServerAddr() string
	GetSessionSecret() string
	GetSessionMaxAge() int
	GetHandoffBackend() string
	GetRedisURL() string
	GetSimulatedDelay() time.Duration
	GetRedirectDelay() time.Duration
	GetResendCooldown() time.Duration
	GetSimulateFailures() bool
	GetRateLimit() float64
	GetLogFormat() string
	GetLogLevel() string
	GetLogFile() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr       string        `envconfig:"SERVER_ADDR" default:":8080"`
	SessionSecret    string        `envconfig:"SESSION_SECRET" required:"true"`
	SessionMaxAge    int           `envconfig:"SESSION_MAX_AGE" default:"86400"`
	HandoffBackend   string        `envconfig:"HANDOFF_BACKEND" default:"cookie"`
	RedisURL         string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	SimulatedDelay   time.Duration `envconfig:"SIMULATED_DELAY" default:"1500ms"`
	RedirectDelay    time.Duration `envconfig:"REDIRECT_DELAY" default:"1s"`
	ResendCooldown   time.Duration `envconfig:"RESEND_COOLDOWN" default:"60s"`
	SimulateFailures bool          `envconfig:"SIMULATE_FAILURES" default:"false"`
	RateLimit        float64       `envconfig:"RATE_LIMIT" default:"10"`
	LogFormat        string        `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"debug"`
	LogFile          string        `envconfig:"LOG_FILE"`
}

// Handoff backends accepted by HANDOFF_BACKEND.
const (
	HandoffCookie = "cookie"
	HandoffMemory = "memory"
	HandoffRedis  = "redis"
)

// Load reads an optional .env file and decodes the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet, so the standard logger is used here.
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv decodes the current environment without touching .env files.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that envconfig cannot express with tags.
func (c *Config) Validate() error {
	switch c.HandoffBackend {
	case HandoffCookie, HandoffMemory, HandoffRedis:
	default:
		return fmt.Errorf("unknown handoff backend %q", c.HandoffBackend)
	}
	if len(c.SessionSecret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 characters")
	}
	if c.SimulatedDelay < 0 || c.RedirectDelay < 0 || c.ResendCooldown < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	return nil
}

// New loads the configuration and exits the process when it is invalid.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func (c *Config) GetServerAddr() string            { return c.ServerAddr }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetSessionMaxAge() int            { return c.SessionMaxAge }
func (c *Config) GetHandoffBackend() string        { return c.HandoffBackend }
func (c *Config) GetRedisURL() string              { return c.RedisURL }
func (c *Config) GetSimulatedDelay() time.Duration { return c.SimulatedDelay }
func (c *Config) GetRedirectDelay() time.Duration  { return c.RedirectDelay }
func (c *Config) GetResendCooldown() time.Duration { return c.ResendCooldown }
func (c *Config) GetSimulateFailures() bool        { return c.SimulateFailures }
func (c *Config) GetRateLimit() float64            { return c.RateLimit }
func (c *Config) GetLogFormat() string             { return c.LogFormat }
func (c *Config) GetLogLevel() string              { return c.LogLevel }
func (c *Config) GetLogFile() string               { return c.LogFile }
