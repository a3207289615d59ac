package adapter

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/logger"
)

func TestNewRedisRateLimiter_Disabled(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.Redis
		limit  int
		window time.Duration
	}{
		{"no address", config.Redis{}, 5, time.Hour},
		{"no limit", config.Redis{Address: "localhost:6379"}, 0, time.Hour},
		{"no window", config.Redis{Address: "localhost:6379"}, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter, err := NewRedisRateLimiter(context.Background(), tt.cfg, tt.limit, tt.window, logger.Nop())
			assert.Nil(t, limiter)
			assert.ErrorIs(t, err, ErrRateLimiterDisabled)
		})
	}
}

// unreachableAddr returns an address nothing listens on.
func unreachableAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestNewRedisRateLimiter_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisRateLimiter(ctx, config.Redis{Address: unreachableAddr(t)}, 5, time.Hour, logger.Nop())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimiterDisabled)
}

func TestRedisRateLimiter_AllowReportsConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: unreachableAddr(t), MaxRetries: -1})
	limiter := newRedisRateLimiter(client, 3, time.Minute, logger.Nop())
	defer limiter.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	allowed, err := limiter.Allow(ctx, "203.0.113.7")
	assert.False(t, allowed)
	assert.Error(t, err)
}
