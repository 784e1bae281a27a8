package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chronosync/chronosync/internal/model"
	"github.com/chronosync/chronosync/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Credentials never expire; only coordinator state is process-lifetime.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveCredential(ctx context.Context, cred *model.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, credentialKey(cred.Username), data, 0).Err()
}

func (s *Storage) GetCredential(ctx context.Context, username string) (*model.Credential, error) {
	data, err := s.client.Get(ctx, credentialKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCredentialNotFound
		}
		return nil, err
	}

	var cred model.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (s *Storage) DeleteCredential(ctx context.Context, username string) error {
	return s.client.Del(ctx, credentialKey(username)).Err()
}
