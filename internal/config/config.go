// Package config reads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config holds everything the server needs at startup
type Config struct {
	Port int

	// Remote API
	APIURL     string
	APITimeout time.Duration

	// Per-client storage
	StorageType string
	RedisURL    string

	// SessionSecret seeds the client cookie signing and encryption keys
	SessionSecret string
	// SecureCookies marks cookies Secure (set when served over HTTPS)
	SecureCookies bool

	// LoginRatePerMinute limits login attempts per client IP; 0 disables
	LoginRatePerMinute int
	// TrustForwarded keys the login limit on X-Forwarded-For. Only set
	// behind a proxy that overwrites the header.
	TrustForwarded bool

	StaticDir string
}

// DevSessionSecret is the development cookie secret. It is public, so
// cookies signed with it can be forged.
const DevSessionSecret = "dev-only-insecure-secret"

// Default returns the development configuration
func Default() Config {
	return Config{
		Port:               8080,
		APIURL:             "http://localhost:8000",
		APITimeout:         10 * time.Second,
		StorageType:        StorageMemory,
		SessionSecret:      DevSessionSecret,
		LoginRatePerMinute: 10,
	}
}

// Load reads the environment, after loading a .env file when one exists
func Load() (Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT: %w", err)
		}
		if port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("PORT must be between 1 and 65535, got %d", port)
		}
		cfg.Port = port
	}

	if v := getenv("PASSA_API_URL"); v != "" {
		cfg.APIURL = v
	}

	if v := getenv("PASSA_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PASSA_API_TIMEOUT: %w", err)
		}
		cfg.APITimeout = d
	}

	if v := getenv("STORAGE_TYPE"); v != "" {
		cfg.StorageType = v
	}
	switch cfg.StorageType {
	case StorageMemory:
	case StorageRedis:
		cfg.RedisURL = getenv("REDIS_URL")
		if cfg.RedisURL == "" {
			return Config{}, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_TYPE %q: must be 'memory' or 'redis'", cfg.StorageType)
	}

	if v := getenv("SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}

	if v := getenv("SECURE_COOKIES"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SECURE_COOKIES: %w", err)
		}
		cfg.SecureCookies = secure
	}
	if cfg.SecureCookies && cfg.UsesDevSecret() {
		return Config{}, errors.New("SESSION_SECRET required when SECURE_COOKIES=true")
	}

	if v := getenv("LOGIN_RATE_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid LOGIN_RATE_PER_MINUTE %q", v)
		}
		cfg.LoginRatePerMinute = n
	}

	if v := getenv("TRUST_FORWARDED"); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TRUST_FORWARDED: %w", err)
		}
		cfg.TrustForwarded = trust
	}

	cfg.StaticDir = getenv("STATIC_DIR")

	return cfg, nil
}

// Addr returns the listen address
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// UsesDevSecret reports whether cookies are signed with DevSessionSecret
func (c Config) UsesDevSecret() bool {
	return c.SessionSecret == DevSessionSecret
}
