package memo

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldchain/fieldchain/pkg/chain"
)

// KeyFunc derives the cache key for a value under judgment. The default
// keys on resolved path and value, which suits per-field lookups like
// uniqueness checks.
type KeyFunc func(value any, fctx *chain.Context) string

func defaultKey(value any, fctx *chain.Context) string {
	return fmt.Sprintf("%s=%v", fctx.Path, value)
}

// Custom wraps a custom rule with verdict memoization. Cache hits skip fn
// entirely; deliberate verdicts (pass, or rejection via chain.Fail) are
// stored for ttl. Infrastructure errors from fn are passed through
// uncached, and cache failures degrade to calling fn directly.
func Custom(cache Cache, ttl time.Duration, fn chain.CustomFunc) chain.CustomFunc {
	return CustomWithKey(cache, ttl, defaultKey, fn)
}

// CustomWithKey is Custom with a caller-supplied key derivation.
func CustomWithKey(cache Cache, ttl time.Duration, key KeyFunc, fn chain.CustomFunc) chain.CustomFunc {
	return func(ctx context.Context, value any, fctx *chain.Context) error {
		k := key(value, fctx)

		if verdict, ok, err := cache.Get(ctx, k); err == nil && ok {
			if verdict.OK {
				return nil
			}
			return chain.Fail(verdict.Message)
		}

		err := fn(ctx, value, fctx)
		switch {
		case err == nil:
			_ = cache.Set(ctx, k, Verdict{OK: true}, ttl)
			return nil
		default:
			if message, deliberate := chain.FailMessage(err); deliberate {
				_ = cache.Set(ctx, k, Verdict{Message: message}, ttl)
			}
			return err
		}
	}
}
