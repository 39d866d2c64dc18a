package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. It is public knowledge,
// so any deployment that keeps it accepts tokens anyone can forge.
const DefaultJWTSecret = "your-secret-key"

const (
	TokenValidity   = 7 * 24 * time.Hour
	NewsCacheTTL    = 10 * time.Minute
	UpstreamTimeout = 10 * time.Second
)

var ErrDefaultSecretInProduction = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration

	NewsAPIKey     string
	NewsAPIBaseURL string
	NewsTimeout    time.Duration
	NewsCacheTTL   time.Duration

	// LogFormat is "text" (default) or "json".
	LogFormat string
	// LogLevel is debug, info (default), warn or error.
	LogLevel string

	// CORSAllowedOrigins is set via CORS_ALLOWED_ORIGINS (comma-separated).
	CORSAllowedOrigins []string
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "5000"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/newsroom?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTExpiry:   TokenValidity,

		NewsAPIKey:     os.Getenv("NEWSAPI_KEY"),
		NewsAPIBaseURL: getEnv("NEWSAPI_BASE_URL", "https://newsapi.org/v2"),
		NewsTimeout:    UpstreamTimeout,
		NewsCacheTTL:   NewsCacheTTL,

		LogFormat: getEnv("LOG_FORMAT", "text"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),

		CORSAllowedOrigins: parseCORSOrigins(getEnv("CORS_ALLOWED_ORIGINS",
			"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5500,http://127.0.0.1:5500")),
	}
}

// Validate rejects configurations that must not be served.
func (c Config) Validate() error {
	if c.Env == "production" && c.JWTSecret == DefaultJWTSecret {
		return ErrDefaultSecretInProduction
	}
	return nil
}

// UsesDefaultSecret reports whether tokens are signed with the built-in placeholder.
func (c Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// SlogLevel parses LogLevel, falling back to info for unknown values.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// parseCORSOrigins splits a comma-separated list of origins and trims spaces. Empty strings are omitted.
func parseCORSOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
