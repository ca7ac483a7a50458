package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// listingTTL bounds staleness for cached public listings; moderation actions
// invalidate eagerly, the TTL is the backstop.
const listingTTL = time.Minute

const listingKeySet = "channels:list:keys"

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client
func NewRedisClient(addr, password string, db int) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// ListingKey derives the cache key for one public channel listing
func ListingKey(search, tag string) string {
	return fmt.Sprintf("channels:list:s=%s|t=%s", search, tag)
}

// GetChannelList returns a cached listing payload, or ok=false on a miss
func (r *RedisClient) GetChannelList(search, tag string) ([]byte, bool, error) {
	data, err := r.client.Get(r.ctx, ListingKey(search, tag)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// SetChannelList caches a listing payload and records its key so that
// InvalidateChannelLists can find it
func (r *RedisClient) SetChannelList(search, tag string, payload []byte) error {
	key := ListingKey(search, tag)

	pipe := r.client.TxPipeline()
	pipe.Set(r.ctx, key, payload, listingTTL)
	pipe.SAdd(r.ctx, listingKeySet, key)
	pipe.Expire(r.ctx, listingKeySet, listingTTL)
	_, err := pipe.Exec(r.ctx)
	return err
}

// InvalidateChannelLists drops every cached listing. Called after any
// moderation action or deletion that could change public results.
func (r *RedisClient) InvalidateChannelLists() error {
	keys, err := r.client.SMembers(r.ctx, listingKeySet).Result()
	if err != nil {
		return err
	}

	keys = append(keys, listingKeySet)
	return r.client.Del(r.ctx, keys...).Err()
}
