package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/chronosync/chronosync/internal/coordinator"
	"github.com/chronosync/chronosync/internal/dependencies/clock"
	"github.com/chronosync/chronosync/internal/dependencies/random"
	"github.com/chronosync/chronosync/internal/services/auth"
	"github.com/chronosync/chronosync/internal/storage"
	"github.com/chronosync/chronosync/internal/storage/memory"
	redisstorage "github.com/chronosync/chronosync/internal/storage/redis"
	"github.com/chronosync/chronosync/internal/ws"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage

	Clock  clock.Clock
	Random random.Random

	AuthService *auth.Service
	Coordinator *coordinator.Coordinator
	GameSocket  *ws.Handler
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the credential store backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	authService := auth.New(store, clk, logger)
	coord := coordinator.New(clk, rnd, logger)
	gameSocket := ws.NewHandler(coord, logger)

	return &App{
		Storage:     store,
		Clock:       clk,
		Random:      rnd,
		AuthService: authService,
		Coordinator: coord,
		GameSocket:  gameSocket,
	}
}
