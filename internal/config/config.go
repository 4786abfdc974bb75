// Package config handles configuration for the blog server: defaults,
// environment overlay, and command-line flags, applied in that order.
package config

import (
	"errors"
	"flag"
	"os"
	"time"
)

// ErrNoSecret indicates that no token signing secret is configured.
// This is fatal at startup: tokens cannot be issued or verified.
var ErrNoSecret = errors.New("config: SECRET_KEY is not set")

// Config holds runtime settings for the blog server.
type Config struct {
	Addr         string        // HTTP bind address
	DatabasePath string        // SQLite database file, ":memory:" for tests
	SecretKey    string        // HMAC secret for session tokens
	LogLevel     string        // debug, info, warn, error
	StoreTimeout time.Duration // upper bound for a single request's store work
	AuthRate     int           // login/signup requests allowed per window per IP
	AuthWindow   time.Duration // rate limit window
}

// loadDefaults populates Config with development defaults.
// SecretKey has no default on purpose.
func (c *Config) loadDefaults() {
	c.Addr = ":8080"
	c.DatabasePath = "blog.db"
	c.LogLevel = "info"
	c.StoreTimeout = 5 * time.Second
	c.AuthRate = 10
	c.AuthWindow = time.Minute
}

// loadEnv overlays values from the environment.
func (c *Config) loadEnv() {
	if v, ok := os.LookupEnv("ADDR"); ok {
		c.Addr = v
	}
	if v, ok := os.LookupEnv("PORT"); ok {
		c.Addr = ":" + v
	}
	if v, ok := os.LookupEnv("DATABASE_PATH"); ok {
		c.DatabasePath = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		c.SecretKey = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("STORE_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			c.StoreTimeout = d
		}
	}
}

// parseFlags overlays values from command-line flags.
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("blog-server", flag.ContinueOnError)

	fs.StringVar(&c.Addr, "a", c.Addr, "address and port to run server")
	fs.StringVar(&c.DatabasePath, "d", c.DatabasePath, "path to SQLite database file")
	fs.StringVar(&c.SecretKey, "s", c.SecretKey, "token signing secret")
	fs.StringVar(&c.LogLevel, "l", c.LogLevel, "log level (debug, info, warn, error)")
	fs.DurationVar(&c.StoreTimeout, "t", c.StoreTimeout, "per-request store timeout")

	return fs.Parse(args)
}

// Load builds a Config from defaults, environment and flags.
// Returns ErrNoSecret when no signing secret is configured.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.loadDefaults()
	cfg.loadEnv()
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}

	if cfg.SecretKey == "" {
		return nil, ErrNoSecret
	}

	return cfg, nil
}
