package infrastructure

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"blog-v0/internal/plusone/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ domain.Repository = (*RedisRepository)(nil)

func TestRedisRepository(t *testing.T) {
	addr := os.Getenv("BLOG_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("BLOG_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client, err := NewRedisClient(ctx, addr)
	require.NoError(t, err)
	defer client.Close()

	slug := fmt.Sprintf("test-%d", time.Now().UnixNano())
	t.Cleanup(func() { client.Del(context.Background(), redisKeyPrefix+slug) })

	repo := NewRedisRepository(client)

	count, err := repo.CountBySlug(ctx, slug)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Insert(ctx, slug, time.Now()))
	require.NoError(t, repo.Insert(ctx, slug, time.Now()))

	count, err = repo.CountBySlug(ctx, slug)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := NewRedisClient(ctx, "127.0.0.1:1")
	assert.Error(t, err)
}
