package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/config"
)

// LikeCountTTL is refreshed on every read and write of a counter.
const LikeCountTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// KeyForLikeCount generates Redis key for a user's like count
func (c *RedisCache) KeyForLikeCount(userID uint64) string {
	return fmt.Sprintf("likes:count:%d", userID)
}

func (c *RedisCache) SetLikeCount(ctx context.Context, userID uint64, count int64) error {
	return c.Client.Set(ctx, c.KeyForLikeCount(userID), count, LikeCountTTL).Err()
}

// GetLikeCount reports ok=false on a cache miss.
func (c *RedisCache) GetLikeCount(ctx context.Context, userID uint64) (count int64, ok bool, err error) {
	key := c.KeyForLikeCount(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil // corrupt entry counts as a miss
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, LikeCountTTL).Err()
	return n, true, nil
}

// DeleteLikeCount drops a cached counter so the next read rebuilds it.
func (c *RedisCache) DeleteLikeCount(ctx context.Context, userID uint64) error {
	return c.Client.Del(ctx, c.KeyForLikeCount(userID)).Err()
}

// LikeCountSource counts likers in the store of record.
type LikeCountSource interface {
	CountLikers(ctx context.Context, recipientID uint64) (int64, error)
}

// RefreshLikeCounts rewrites the counters of userIDs from src. When a count
// cannot be read the key is dropped instead, so a stale value is never served.
func (c *RedisCache) RefreshLikeCounts(ctx context.Context, src LikeCountSource, userIDs ...uint64) error {
	var errs []error
	for _, id := range userIDs {
		n, err := src.CountLikers(ctx, id)
		if err != nil {
			errs = append(errs, fmt.Errorf("count likers of %d: %w", id, err))
			if err := c.DeleteLikeCount(ctx, id); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if err := c.SetLikeCount(ctx, id, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Publish encodes payload as JSON and publishes it on channel.
func (c *RedisCache) Publish(ctx context.Context, channel string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", channel, err)
	}
	return c.Client.Publish(ctx, channel, b).Err()
}

// Subscribe opens a subscription; the caller closes it.
func (c *RedisCache) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return c.Client.Subscribe(ctx, channel)
}
