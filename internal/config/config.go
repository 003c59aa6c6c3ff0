// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultDatabaseURL points at a SQLite file in the working directory,
// created on first use.
const DefaultDatabaseURL = "sqlite:sushi.db?mode=rwc"

// Config holds all configuration values for the API server and the migrate tool.
// Values are populated by Load from environment variables.
type Config struct {
	// Host is the interface the HTTP server binds to. Defaults to "0.0.0.0".
	Host string

	// Port is the TCP port the HTTP server listens on. Defaults to "8000".
	Port string

	// DatabaseURL is either "sqlite:<path>[?query]" or a postgres:// URL.
	// Defaults to DefaultDatabaseURL.
	DatabaseURL string

	// RunMigrations applies pending migrations before the server accepts traffic.
	RunMigrations bool

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]. Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StaticDir is served under /api/static/. Defaults to "static".
	StaticDir string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// Pool holds connection pool settings.
	Pool PoolConfig
}

// PoolConfig holds database/sql pool limits and the connect timeout.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectTimeout  time.Duration
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Load reads an optional .env file from the working directory, then builds a
// Config from environment variables. Variables already set in the process
// environment win over .env entries.
// All invalid values are reported together in the returned error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	p := parser{}

	cfg := Config{
		Host:          getEnv("HOST", "0.0.0.0"),
		Port:          getEnv("PORT", "8000"),
		DatabaseURL:   getEnv("DATABASE_URL", DefaultDatabaseURL),
		RunMigrations: p.bool("RUN_MIGRATIONS", true),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "*")),
		StaticDir:     getEnv("STATIC_DIR", "static"),
		MaxBodyBytes:  p.int64("MAX_BODY_BYTES", 1<<20),
		Pool: PoolConfig{
			MaxOpenConns:    int(p.int64("DB_MAX_OPEN_CONNS", 10)),
			MaxIdleConns:    int(p.int64("DB_MAX_IDLE_CONNS", 5)),
			ConnMaxLifetime: p.duration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: p.duration("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
			ConnectTimeout:  p.duration("DB_CONNECT_TIMEOUT", 5*time.Second),
		},
	}

	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		p.invalid = append(p.invalid, "PORT")
	}
	if !supportedDatabaseURL(cfg.DatabaseURL) {
		p.invalid = append(p.invalid, "DATABASE_URL")
	}

	if len(p.invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(p.invalid, ", "))
	}
	return cfg, nil
}

func supportedDatabaseURL(u string) bool {
	for _, prefix := range []string{"sqlite:", "postgres://", "postgresql://"} {
		if strings.HasPrefix(u, prefix) {
			return true
		}
	}
	return false
}

// parser collects the names of variables whose values fail to parse.
type parser struct {
	invalid []string
}

func (p *parser) bool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return b
}

func (p *parser) int64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return n
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return d
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
