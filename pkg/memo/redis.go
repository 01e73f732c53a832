package memo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrInvalidRedisURL is returned when the connection URL cannot be parsed.
	ErrInvalidRedisURL = errors.New("memo: invalid redis connection URL")

	// ErrRedisNotReady is returned when the server does not answer a ping
	// within the configured retry budget.
	ErrRedisNotReady = errors.New("memo: redis is not ready")
)

// RedisConfig configures the shared-cache connection. Load it with the
// config package or any env parser honoring these tags.
type RedisConfig struct {
	ConnectionURL  string        `env:"MEMO_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"MEMO_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"MEMO_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"MEMO_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	KeyPrefix      string        `env:"MEMO_REDIS_KEY_PREFIX" envDefault:"memo:"`
}

// Connect establishes a Redis connection for a shared verdict cache,
// retrying per the config before giving up.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	var lastErr error
	for i := 0; i < max(cfg.RetryAttempts, 1); i++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		} else {
			lastErr = err
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, errors.Join(ErrRedisNotReady, lastErr)
}

// RedisCache stores verdicts in Redis so many application instances share
// one memoization, e.g. for uniqueness checks behind a load balancer.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache wraps an existing client. The prefix namespaces this
// cache's keys within the database.
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) Get(ctx context.Context, key string) (Verdict, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Verdict{}, false, nil
	}
	if err != nil {
		return Verdict{}, false, fmt.Errorf("memo: redis get: %w", err)
	}

	var verdict Verdict
	if err := json.Unmarshal(data, &verdict); err != nil {
		// A corrupt entry is a miss, not a failure; it will be rewritten.
		return Verdict{}, false, nil
	}
	return verdict, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, verdict Verdict, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("memo: encode verdict: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("memo: redis set: %w", err)
	}
	return nil
}
