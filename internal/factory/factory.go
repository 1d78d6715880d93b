package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/PriyankaYambem/cloud-manager/internal/config"
	"github.com/PriyankaYambem/cloud-manager/internal/dependencies/clock"
	"github.com/PriyankaYambem/cloud-manager/internal/services/auth"
	"github.com/PriyankaYambem/cloud-manager/internal/services/files"
	"github.com/PriyankaYambem/cloud-manager/internal/services/token"
	"github.com/PriyankaYambem/cloud-manager/internal/storage"
	filestorage "github.com/PriyankaYambem/cloud-manager/internal/storage/file"
	"github.com/PriyankaYambem/cloud-manager/internal/storage/memory"
	redisstorage "github.com/PriyankaYambem/cloud-manager/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.UserStore

	// External dependencies
	Clock clock.Clock

	// Services
	TokenService *token.Service
	AuthService  *auth.Service
	FilesService *files.Service
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("file", "memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// UsersFile is the JSON table path (required if StorageType is "file")
	UsersFile string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config

	// TokenSecret is the session signing key
	TokenSecret []byte
	// TokenTTL is the session lifetime (optional; defaults to token.DefaultTTL)
	TokenTTL time.Duration

	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if len(cfg.TokenSecret) == 0 {
		return nil, errors.New("TokenSecret is required")
	}

	// Create storage based on type
	var store storage.UserStore
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeFile:
		if cfg.UsersFile == "" {
			return nil, errors.New("UsersFile required when StorageType is file")
		}
		store = filestorage.New(cfg.UsersFile)
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'file', 'memory' or 'redis'")
	}

	clk := clock.New()
	return newWithDependencies(store, clk, cfg), nil
}

// newWithDependencies wires services from explicit dependencies
func newWithDependencies(store storage.UserStore, clk clock.Clock, cfg Config) *App {
	tokenService := token.New(token.Config{
		Secret: cfg.TokenSecret,
		TTL:    cfg.TokenTTL,
	}, clk)

	return &App{
		Store:        store,
		Clock:        clk,
		TokenService: tokenService,
		AuthService:  auth.New(store, tokenService, clk),
		FilesService: files.New(),
	}
}
