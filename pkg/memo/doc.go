// Package memo provides an explicit, injectable cache for expensive custom
// rules such as uniqueness checks against a datastore.
//
// The engine owns no global cache; callers construct a Cache (in-memory TTL
// cache or the Redis-backed adapter), own its lifecycle, and wrap individual
// custom rules with Custom. Only deliberate verdicts are memoized - a rule
// that errors for infrastructure reasons is never cached, so a flaky
// dependency cannot pin a stale answer.
//
// # Usage
//
//	cache := memo.NewTTLCache(1024)
//	emailTaken := memo.Custom(cache, time.Minute, func(ctx context.Context, v any, fc *chain.Context) error {
//		exists, err := store.EmailExists(ctx, v.(string))
//		if err != nil {
//			return err
//		}
//		if exists {
//			return chain.Fail("email already registered")
//		}
//		return nil
//	})
//
//	c := chain.NewBuilder("email").Custom(emailTaken).MustBuild()
package memo
