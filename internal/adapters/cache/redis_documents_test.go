package cache

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/nba-backend/internal/domain/entities"
	"github.com/courtside/nba-backend/internal/infrastructure/logger"
)

type stubReader struct {
	docs  map[string]string
	reads int
}

func (s *stubReader) Read(ctx context.Context, name string) (json.RawMessage, error) {
	s.reads++
	doc, ok := s.docs[name]
	if !ok {
		return nil, entities.NewStorageError(name, "read", os.ErrNotExist)
	}
	return json.RawMessage(doc), nil
}

func TestReadFallsBackWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	next := &stubReader{docs: map[string]string{"stadiums": `[{"name":"TD Garden"}]`}}
	reader := NewDocumentReader(next, client, time.Minute, logger.NewNop())

	doc, err := reader.Read(context.Background(), "stadiums")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"TD Garden"}]`, string(doc))
	assert.Equal(t, 1, next.reads)

	_, err = reader.Read(context.Background(), "nba-games")
	assert.ErrorIs(t, err, entities.ErrStorage)

	assert.Error(t, reader.Ping(context.Background()))
}

func TestReadThroughCache(t *testing.T) {
	addr := os.Getenv("COURTSIDE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("COURTSIDE_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	next := &stubReader{docs: map[string]string{"stadiums": `[{"name":"TD Garden"}]`}}
	reader := NewDocumentReader(next, client, time.Minute, logger.NewNop())
	require.NoError(t, client.Del(ctx, keyPrefix+"stadiums").Err())
	t.Cleanup(func() { _ = client.Del(ctx, keyPrefix+"stadiums").Err() })

	for i := 0; i < 3; i++ {
		doc, err := reader.Read(ctx, "stadiums")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"name":"TD Garden"}]`, string(doc))
	}
	assert.Equal(t, 1, next.reads)

	require.NoError(t, client.Del(ctx, keyPrefix+"stadiums").Err())
	_, err := reader.Read(ctx, "stadiums")
	require.NoError(t, err)
	assert.Equal(t, 2, next.reads)
}
