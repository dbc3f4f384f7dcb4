package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "plusone:"

// RedisRepository keeps one counter per slug under plusone:<slug>. Unlike the
// SQL store it does not hold post_likes rows: each Insert is a single INCR and
// the like's timestamp is discarded, so only the count survives.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

// NewRedisClient connects to addr and verifies the connection
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func (r *RedisRepository) CountBySlug(ctx context.Context, slug string) (int64, error) {
	count, err := r.client.Get(ctx, redisKeyPrefix+slug).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("count likes for %q: %w", slug, err)
	}
	return count, nil
}

func (r *RedisRepository) Insert(ctx context.Context, slug string, _ time.Time) error {
	if err := r.client.Incr(ctx, redisKeyPrefix+slug).Err(); err != nil {
		return fmt.Errorf("insert like for %q: %w", slug, err)
	}
	return nil
}
