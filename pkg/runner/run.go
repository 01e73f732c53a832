package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldchain/fieldchain/pkg/async"
	"github.com/fieldchain/fieldchain/pkg/chain"
	"github.com/fieldchain/fieldchain/pkg/fieldpath"
)

// Run evaluates every chain against doc and returns the aggregated report.
// Sanitizer mutations are committed into doc in place after all chains
// finish. Chains run concurrently; pass a context with a deadline to bound
// the run, in which case expiry yields ErrRunTimeout and no report.
func Run(ctx context.Context, doc map[string]any, chains []chain.Chain, opts ...Option) (*Report, error) {
	cfg := newConfig(opts)

	base := chain.Context{Locale: cfg.locale, Meta: cfg.meta}

	futures := make([]*async.Future[[]chain.Result], len(chains))
	for i, c := range chains {
		c := c
		futures[i] = async.Go(ctx, func(ctx context.Context) ([]chain.Result, error) {
			return c.Evaluate(ctx, doc, base), nil
		})
	}

	perChain, err := async.WaitAll(ctx, futures...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrRunTimeout
		}
		return nil, err
	}
	// Evaluation also stops early between rules when the context dies after
	// WaitAll has already collected; re-check so a partially evaluated chain
	// set never becomes a report.
	if ctx.Err() != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrRunTimeout
		}
		return nil, ctx.Err()
	}

	if err := commit(doc, chains, perChain, cfg); err != nil {
		return nil, err
	}

	var outcomes []chain.Outcome
	for _, results := range perChain {
		for _, res := range results {
			for _, out := range res.Outcomes {
				if out.Fault && cfg.logger != nil {
					cfg.logger.Warn("custom rule fault treated as validation failure",
						"path", out.Path, "rule", out.Rule)
				}
				outcomes = append(outcomes, out)
			}
		}
	}
	return newReport(outcomes), nil
}

// commit writes sanitized working values back into the document, chain by
// chain in declaration order so overlapping targets resolve to the last
// declared chain.
func commit(doc map[string]any, chains []chain.Chain, perChain [][]chain.Result, cfg config) error {
	for i, results := range perChain {
		for _, res := range results {
			if !res.Dirty {
				continue
			}
			if cfg.commit == CommitDiscardOnFailure && len(res.Outcomes) > 0 {
				continue
			}
			if err := fieldpath.Set(doc, res.Located.Path, res.Value); err != nil {
				return fmt.Errorf("committing sanitized value for chain %d at %q: %w",
					i, res.Located.Path.String(), err)
			}
		}
	}
	return nil
}
