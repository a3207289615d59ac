package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/logger"
)

// ErrRateLimiterDisabled is returned by NewRedisRateLimiter when no Redis
// address or no limit is configured.
var ErrRateLimiterDisabled = errors.New("rate limiter disabled")

const rateLimitKeyPrefix = "intake:submissions:"

// redisRateLimiter is a fixed window counter. Each window gets its own key
// so the counter never has to be reset explicitly.
type redisRateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time

	logger *logger.Logger
}

// NewRedisRateLimiter connects to Redis and verifies the connection with a
// ping.
func NewRedisRateLimiter(ctx context.Context, cfg config.Redis, limit int, window time.Duration, logger *logger.Logger) (RateLimiter, error) {
	if cfg.Address == "" || limit <= 0 || window <= 0 {
		return nil, ErrRateLimiterDisabled
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error connecting to redis at %s: %w", cfg.Address, err)
	}

	logger.Info().
		Str("address", cfg.Address).
		Int("limit", limit).
		Dur("window", window).
		Msg("submission rate limiter connected")

	return newRedisRateLimiter(client, limit, window, logger), nil
}

func newRedisRateLimiter(client *redis.Client, limit int, window time.Duration, logger *logger.Logger) *redisRateLimiter {
	return &redisRateLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
		logger: logger,
	}
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.now().UnixNano() / int64(l.window)
	redisKey := rateLimitKeyPrefix + key + ":" + strconv.FormatInt(bucket, 10)

	var hits *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		hits = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("error counting hit for %s: %w", key, err)
	}

	return hits.Val() <= l.limit, nil
}

func (l *redisRateLimiter) Close() error {
	return l.client.Close()
}
