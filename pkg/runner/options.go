package runner

import (
	"log/slog"

	"golang.org/x/text/language"
)

// CommitPolicy controls whether sanitized values reach the document when
// their field also failed validation.
type CommitPolicy int

const (
	// CommitEager commits every sanitizer that ran before a failure point,
	// even when the field ultimately failed. Sanitize eagerly, validate
	// independently. This is the default.
	CommitEager CommitPolicy = iota

	// CommitDiscardOnFailure withholds a field's sanitization when any rule
	// on that field failed.
	CommitDiscardOnFailure
)

// Option configures a run.
type Option func(*config)

type config struct {
	commit CommitPolicy
	locale language.Tag
	meta   map[string]any
	logger *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCommitPolicy overrides the default eager commit policy.
func WithCommitPolicy(p CommitPolicy) Option {
	return func(c *config) { c.commit = p }
}

// WithLocale sets the locale custom rules and message functions see in
// their context.
func WithLocale(tag language.Tag) Option {
	return func(c *config) { c.locale = tag }
}

// WithMeta attaches caller metadata to the validation context.
func WithMeta(meta map[string]any) Option {
	return func(c *config) { c.meta = meta }
}

// WithLogger sets the logger used to report custom-rule faults. Without one
// faults are only visible as outcomes in the report.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}
