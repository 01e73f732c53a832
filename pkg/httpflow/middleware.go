package httpflow

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/text/language"

	"github.com/fieldchain/fieldchain/pkg/chain"
	"github.com/fieldchain/fieldchain/pkg/runner"
)

type ctxKey int

const (
	reportKey ctxKey = iota
	documentsKey
)

// sourceOrder fixes the order per-source runs execute and merge in, so a
// report covering several sources is deterministic.
var sourceOrder = []string{SourceBody, SourceQuery, SourceParams, SourceHeaders}

// Option configures the Validate middleware.
type Option func(*config)

type config struct {
	supported []language.Tag
	timeout   time.Duration
	runOpts   []runner.Option
	logger    *slog.Logger
}

// WithSupportedLocales sets the locale tags requests are negotiated
// against. The first tag is the fallback for requests that match nothing.
func WithSupportedLocales(tags ...language.Tag) Option {
	return func(c *config) { c.supported = tags }
}

// WithTimeout bounds the whole validation pass for one request. Expiry is
// answered with 503 rather than a partial report.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithRunOptions forwards options such as runner.WithCommitPolicy or
// runner.WithMeta to every per-source run.
func WithRunOptions(opts ...runner.Option) Option {
	return func(c *config) { c.runOpts = append(c.runOpts, opts...) }
}

// WithLogger sets the logger for request-level validation errors. It is
// also forwarded to the runner for custom-rule fault logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Validate returns middleware that runs the chains against each request.
// Chains are grouped by their source selectors (body when unrestricted),
// each group runs against its source document, and the merged report plus
// the sanitized documents are stored on the request context for the next
// handler. Validation failures do not short-circuit: the handler decides
// what a non-empty report means.
func Validate(chains []chain.Chain, opts ...Option) func(http.Handler) http.Handler {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	grouped := groupBySource(chains)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			docs, err := FromRequest(r)
			if err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}

			ctx := r.Context()
			if cfg.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
				defer cancel()
			}

			runOpts := make([]runner.Option, 0, len(cfg.runOpts)+2)
			runOpts = append(runOpts, cfg.runOpts...)
			runOpts = append(runOpts, runner.WithLocale(NegotiateLocale(r, cfg.supported)))
			if cfg.logger != nil {
				runOpts = append(runOpts, runner.WithLogger(cfg.logger))
			}

			reports := make([]*runner.Report, 0, len(grouped))
			for _, src := range sourceOrder {
				group := grouped[src]
				if len(group) == 0 {
					continue
				}
				report, err := runner.Run(ctx, docs[src], group, runOpts...)
				if err != nil {
					status := http.StatusInternalServerError
					if errors.Is(err, runner.ErrRunTimeout) {
						status = http.StatusServiceUnavailable
					}
					if cfg.logger != nil {
						cfg.logger.ErrorContext(r.Context(), "request validation aborted",
							"source", src, "error", err)
					}
					http.Error(w, http.StatusText(status), status)
					return
				}
				reports = append(reports, report)
			}

			reqCtx := context.WithValue(r.Context(), reportKey, runner.Merge(reports...))
			reqCtx = context.WithValue(reqCtx, documentsKey, docs)
			next.ServeHTTP(w, r.WithContext(reqCtx))
		})
	}
}

// GetReport returns the validation report stored by Validate, or nil when
// the request did not pass through it. A nil report reads as empty.
func GetReport(r *http.Request) *runner.Report {
	report, _ := r.Context().Value(reportKey).(*runner.Report)
	return report
}

// GetDocuments returns the source documents stored by Validate, carrying
// any sanitized values. Nil when the request did not pass through it.
func GetDocuments(r *http.Request) Documents {
	docs, _ := r.Context().Value(documentsKey).(Documents)
	return docs
}

// groupBySource buckets chains under each source they target, preserving
// declaration order inside a bucket. Selectors outside the known sources
// are dropped: there is no document they could resolve against.
func groupBySource(chains []chain.Chain) map[string][]chain.Chain {
	grouped := make(map[string][]chain.Chain)
	for _, c := range chains {
		sources := c.Sources()
		if len(sources) == 0 {
			sources = []string{SourceBody}
		}
		for _, src := range sources {
			switch src {
			case SourceBody, SourceQuery, SourceParams, SourceHeaders:
				grouped[src] = append(grouped[src], c)
			}
		}
	}
	return grouped
}
