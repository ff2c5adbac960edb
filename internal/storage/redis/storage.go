package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/passa-a-bola/passa-web/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Each client is one hash; field names are the item keys.
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

func (s *Storage) GetItems(ctx context.Context, clientID string, keys ...string) (map[string]string, error) {
	result := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	values, err := s.client.HMGet(ctx, clientKey(clientID), keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, value := range values {
		// HMGET reports missing fields as nil
		if str, ok := value.(string); ok {
			result[keys[i]] = str
		}
	}
	return result, nil
}

func (s *Storage) SetItems(ctx context.Context, clientID string, items map[string]string) error {
	if len(items) == 0 {
		return nil
	}

	key := clientKey(clientID)
	fields := make([]any, 0, len(items)*2)
	for k, v := range items {
		fields = append(fields, k, v)
	}

	// MULTI/EXEC so both the write and the TTL refresh land together
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fields...)
		if s.cfg.ClientTTL > 0 {
			pipe.Expire(ctx, key, s.cfg.ClientTTL)
		}
		return nil
	})
	return err
}

func (s *Storage) RemoveItems(ctx context.Context, clientID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	// HDEL with several fields is a single atomic command; Redis drops the
	// hash once its last field is gone
	return s.client.HDel(ctx, clientKey(clientID), keys...).Err()
}
