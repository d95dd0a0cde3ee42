package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/courtside/nba-backend/internal/infrastructure/config"
	"github.com/courtside/nba-backend/internal/infrastructure/logger"
	"github.com/courtside/nba-backend/internal/ports"
)

const keyPrefix = "courtside:dataset:"

// NewClient creates a Redis client from configuration
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
}

// DocumentReader is a read-through Redis cache in front of another
// DocumentReader. Cache failures never fail a read.
type DocumentReader struct {
	next   ports.DocumentReader
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

var _ ports.DocumentReader = (*DocumentReader)(nil)

// NewDocumentReader wraps next with a cache whose entries live for ttl
func NewDocumentReader(next ports.DocumentReader, client *redis.Client, ttl time.Duration, log *logger.Logger) *DocumentReader {
	return &DocumentReader{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: log.WithComponent("dataset_cache"),
	}
}

// Read returns the cached document, loading and caching it on a miss
func (r *DocumentReader) Read(ctx context.Context, name string) (json.RawMessage, error) {
	key := keyPrefix + name

	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return json.RawMessage(data), nil
	case errors.Is(err, redis.Nil):
	default:
		r.logger.Warnw("Dataset cache read failed", "dataset", name, "error", err)
	}

	doc, err := r.next.Read(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, key, []byte(doc), r.ttl).Err(); err != nil {
		r.logger.Warnw("Dataset cache write failed", "dataset", name, "error", err)
	}

	return doc, nil
}

// Ping checks the Redis connection
func (r *DocumentReader) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return r.client.Ping(ctx).Err()
}
