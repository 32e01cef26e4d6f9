package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Default values used when the corresponding environment variable is unset.
// The mock gateway delays mirror the latency of the simulated network round
// trips: roughly 700ms for a sign-in and 600ms for a reset request.
const (
	DefaultAddr         = ":8080"
	DefaultBaseURL      = "http://localhost:8080"
	DefaultEnv          = "development"
	DefaultEmailSender  = "Vestibule <no-reply@vestibule.local>"
	DefaultSignInDelay  = 700 * time.Millisecond
	DefaultResetDelay   = 600 * time.Millisecond
	devSessionSecret    = "insecure-dev-session-secret-0000"
	defaultEmailBackend = "log"
)

// Provider exposes the application configuration to the rest of the code.
// Handlers and modules depend on this interface rather than on the concrete
// env-backed implementation, which keeps them trivial to test.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetAppEnv() string
	GetSessionSecret() string
	GetEmailProvider() string
	GetEmailSender() string
	GetSignInDelay() time.Duration
	GetResetDelay() time.Duration
}

// Config holds all configuration for the application, loaded once at startup.
type Config struct {
	AppAddr       string
	AppBaseURL    string
	AppEnv        string
	SessionSecret string
	EmailProvider string
	EmailSender   string
	SignInDelay   time.Duration
	ResetDelay    time.Duration
}

// New loads configuration from environment variables. Loading the .env file
// is the caller's job (the server does it before anything else); New only
// reads the process environment.
func New() *Config {
	cfg := &Config{
		AppAddr:       getEnv("APP_ADDR", DefaultAddr),
		AppBaseURL:    getEnv("APP_BASE_URL", DefaultBaseURL),
		AppEnv:        getEnv("APP_ENV", DefaultEnv),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		EmailProvider: getEnv("EMAIL_PROVIDER", defaultEmailBackend),
		EmailSender:   getEnv("EMAIL_SENDER", DefaultEmailSender),
		SignInDelay:   getDurationMS("AUTH_SIGNIN_DELAY_MS", DefaultSignInDelay),
		ResetDelay:    getDurationMS("AUTH_RESET_DELAY_MS", DefaultResetDelay),
	}

	if cfg.SessionSecret == "" {
		// The session store only carries one-shot flash messages, so a
		// missing secret is not fatal for a demo app, but it must never
		// happen outside development.
		slog.Warn("SESSION_SECRET is not set, using the insecure development default")
		cfg.SessionSecret = devSessionSecret
	}

	return cfg
}

func (c *Config) GetAppAddr() string            { return c.AppAddr }
func (c *Config) GetAppBaseURL() string         { return c.AppBaseURL }
func (c *Config) GetAppEnv() string             { return c.AppEnv }
func (c *Config) GetSessionSecret() string      { return c.SessionSecret }
func (c *Config) GetEmailProvider() string      { return c.EmailProvider }
func (c *Config) GetEmailSender() string        { return c.EmailSender }
func (c *Config) GetSignInDelay() time.Duration { return c.SignInDelay }
func (c *Config) GetResetDelay() time.Duration  { return c.ResetDelay }

// getEnv reads key from the environment, falling back to def when unset.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getDurationMS reads key as an integer number of milliseconds. Malformed or
// negative values fall back to def rather than aborting startup.
func getDurationMS(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		slog.Warn("Ignoring invalid duration value", "key", key, "value", v)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
