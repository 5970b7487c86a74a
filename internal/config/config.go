package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddr    = ":8080"
	defaultLogFormat     = "text"
	defaultLogLevel      = "debug"
	defaultRateLimit     = 120
	defaultStylesheetURL = "https://cdn.tailwindcss.com"
)

// Provider is the read-only view of the configuration that the rest of the
// application depends on.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetLogFormat() string
	GetLogLevel() string
	GetLogFile() string
	GetRateLimitPerMinute() int
	GetStylesheetURL() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr         string
	AppBaseURL         string
	LogFormat          string
	LogLevel           string
	LogFile            string
	RateLimitPerMinute int
	StylesheetURL      string
}

// New loads configuration from a .env file (if present) and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() *Config {
	return &Config{
		ServerAddr:         envOr("SERVER_ADDR", defaultServerAddr),
		AppBaseURL:         strings.TrimRight(os.Getenv("APP_BASE_URL"), "/"),
		LogFormat:          envOr("LOG_FORMAT", defaultLogFormat),
		LogLevel:           envOr("LOG_LEVEL", defaultLogLevel),
		LogFile:            os.Getenv("LOG_FILE"),
		RateLimitPerMinute: envInt("RATE_LIMIT_PER_MINUTE", defaultRateLimit),
		StylesheetURL:      envOr("STYLESHEET_URL", defaultStylesheetURL),
	}
}

func (c *Config) GetServerAddr() string      { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string      { return c.AppBaseURL }
func (c *Config) GetLogFormat() string       { return c.LogFormat }
func (c *Config) GetLogLevel() string        { return c.LogLevel }
func (c *Config) GetLogFile() string         { return c.LogFile }
func (c *Config) GetRateLimitPerMinute() int { return c.RateLimitPerMinute }
func (c *Config) GetStylesheetURL() string   { return c.StylesheetURL }

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return n
}
