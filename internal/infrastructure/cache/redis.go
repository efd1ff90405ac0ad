package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// NewRedisClient creates a Redis client and verifies connectivity
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")

	return client, nil
}

// ResultCache stores serialized analytics results keyed by meeting ID.
// It prefers Redis and falls back to the in-process MemoryStore when
// Redis is disabled or unreachable.
type ResultCache struct {
	redis  *redis.Client
	memory *MemoryStore
	ttl    time.Duration
}

// NewResultCache creates a ResultCache. redisClient may be nil, in which
// case all operations go through the memory store.
func NewResultCache(redisClient *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{
		redis:  redisClient,
		memory: NewMemoryStore(),
		ttl:    ttl,
	}
}

func (c *ResultCache) key(meetingID string) string {
	return "analytics:meeting:" + meetingID
}

// Get returns the cached analytics JSON for a meeting, if present
func (c *ResultCache) Get(ctx context.Context, meetingID string) (string, bool) {
	key := c.key(meetingID)

	if c.redis != nil {
		value, err := c.redis.Get(ctx, key).Result()
		if err == nil {
			return value, true
		}
		if err != redis.Nil {
			// Redis unreachable; fall through to the memory store
			log.Printf("⚠️ Redis get failed for %s: %v", key, err)
		}
	}

	return c.memory.Get(key)
}

// Set stores the analytics JSON for a meeting
func (c *ResultCache) Set(ctx context.Context, meetingID string, value string) {
	key := c.key(meetingID)

	if c.redis != nil {
		if err := c.redis.Set(ctx, key, value, c.ttl).Err(); err != nil {
			log.Printf("⚠️ Redis set failed for %s: %v", key, err)
		}
	}

	c.memory.Set(key, value, c.ttl)
}

// Invalidate removes the cached analytics for a meeting
func (c *ResultCache) Invalidate(ctx context.Context, meetingID string) {
	key := c.key(meetingID)

	if c.redis != nil {
		if err := c.redis.Del(ctx, key).Err(); err != nil {
			log.Printf("⚠️ Redis del failed for %s: %v", key, err)
		}
	}

	c.memory.Delete(key)
}
