package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
)

// Config holds all process configuration. It is constructed once at
// startup and passed by reference into the components that need it; no
// component reads the environment directly.
type Config struct {
	// Host and Port define the listen address
	Host string
	Port int

	// StorageType selects the credential store backend ("file", "memory"
	// or "redis")
	StorageType string
	// UsersFile is the JSON user table path for the file backend
	UsersFile string
	// RedisURL is the connection URL for the redis backend
	RedisURL string

	// TokenSecret is the session token signing key
	TokenSecret string
	// TokenTTL is the session lifetime
	TokenTTL time.Duration

	// StaticDir is the directory holding the page markup and assets
	StaticDir string
	// SecureCookies marks session cookies Secure (set when serving over TLS
	// or behind a TLS-terminating proxy)
	SecureCookies bool
}

// Load builds a Config from the environment, applying defaults for unset
// values. TOKEN_SECRET has no default and must be provided.
func Load() (*Config, error) {
	cfg := &Config{
		Host:          os.Getenv("HOST"),
		Port:          8080,
		StorageType:   getEnvOrDefault("STORAGE_TYPE", StorageTypeFile),
		UsersFile:     getEnvOrDefault("USERS_FILE", "users.json"),
		RedisURL:      os.Getenv("REDIS_URL"),
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		TokenTTL:      time.Hour,
		StaticDir:     getEnvOrDefault("STATIC_DIR", "web/static"),
		SecureCookies: os.Getenv("SECURE_COOKIES") == "true",
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = p
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
