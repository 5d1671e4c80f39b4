package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/service"
)

func TestRedisDeduper_FailsOpen(t *testing.T) {
	// Nothing listens on this port.
	client := redis.NewClient(&redis.Options{Addr: "localhost:9999"})
	defer client.Close()

	d := service.NewRedisDeduper(client, time.Minute, zap.NewNop())

	ok, err := d.Claim(context.Background(), "sms:SM1")
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestRedisDeduper_EmptyKey(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:9999"})
	defer client.Close()

	ok, err := service.NewRedisDeduper(client, time.Minute, zap.NewNop()).Claim(context.Background(), "")
	assert.True(t, ok)
	assert.NoError(t, err)
}

func TestRedisDeduper_ClaimsOnce(t *testing.T) {
	client := startRedis(t)
	d := service.NewRedisDeduper(client, time.Minute, zap.NewNop())
	ctx := context.Background()

	ok, err := d.Claim(ctx, "rec:RE123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Claim(ctx, "rec:RE123")
	require.NoError(t, err)
	assert.False(t, ok, "a replayed callback must not be claimed twice")

	ok, err = d.Claim(ctx, "rec:RE456")
	require.NoError(t, err)
	assert.True(t, ok)

	ttl, err := client.TTL(ctx, "webhook:seen:rec:RE123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}
