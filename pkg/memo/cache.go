package memo

import (
	"context"
	"time"
)

// Verdict is a memoized custom-rule judgment.
type Verdict struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// Cache stores verdicts under string keys with a per-entry TTL. Implementations
// must be safe for concurrent use. A Get error means the cache itself is
// unavailable; callers treat that as a miss.
type Cache interface {
	Get(ctx context.Context, key string) (Verdict, bool, error)
	Set(ctx context.Context, key string, verdict Verdict, ttl time.Duration) error
}
