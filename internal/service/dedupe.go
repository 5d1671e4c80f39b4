package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const dedupePrefix = "webhook:seen:"

type redisDeduper struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisDeduper claims keys with SETNX. When redis is unreachable every
// claim succeeds and duplicates fall through to the idempotent writes.
func NewRedisDeduper(client *redis.Client, ttl time.Duration, logger *zap.Logger) Deduper {
	return &redisDeduper{client: client, ttl: ttl, logger: logger}
}

func (d *redisDeduper) Claim(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return true, nil
	}

	ok, err := d.client.SetNX(ctx, dedupePrefix+key, time.Now().Unix(), d.ttl).Result()
	if err != nil {
		d.logger.Warn("Webhook dedupe unavailable, processing anyway",
			zap.String("key", key),
			zap.Error(err))
		return true, err
	}
	return ok, nil
}
