package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/finestevents/backend/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds the blocked-dates list so the calendar widget poll does
// not hit postgres on every page load.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) GetBlockedDates(ctx context.Context) ([]string, error) {
	data, err := c.client.Get(ctx, blockedDatesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var dates []string
	if err := json.Unmarshal(data, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (c *RedisCache) SetBlockedDates(ctx context.Context, dates []string) error {
	payload, err := json.Marshal(dates)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, blockedDatesKey(), payload, c.ttl).Err()
}

func (c *RedisCache) InvalidateBlockedDates(ctx context.Context) error {
	return c.client.Del(ctx, blockedDatesKey()).Err()
}

func blockedDatesKey() string {
	return "cache:blocked-dates"
}
