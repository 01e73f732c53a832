package runner

import (
	"fmt"
	"strings"

	"github.com/fieldchain/fieldchain/pkg/chain"
)

// Report is the aggregate of all outcomes from one run. It is immutable
// once Run returns and safe for concurrent reads.
type Report struct {
	outcomes []chain.Outcome
}

func newReport(outcomes []chain.Outcome) *Report {
	return &Report{outcomes: outcomes}
}

// Merge combines reports into one, preserving argument order then each
// report's own outcome order. Useful when one request validates several
// source documents (body, query, headers) in separate runs.
func Merge(reports ...*Report) *Report {
	var outcomes []chain.Outcome
	for _, r := range reports {
		if r != nil {
			outcomes = append(outcomes, r.outcomes...)
		}
	}
	return newReport(outcomes)
}

// IsEmpty reports whether the run produced no failures.
func (r *Report) IsEmpty() bool {
	return r == nil || len(r.outcomes) == 0
}

// Len returns the number of recorded outcomes.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.outcomes)
}

// List returns the flat outcome list in deterministic order: chain
// declaration order, then located-value order, then rule order.
func (r *Report) List() []chain.Outcome {
	if r == nil {
		return nil
	}
	out := make([]chain.Outcome, len(r.outcomes))
	copy(out, r.outcomes)
	return out
}

// ByPath groups failure messages by resolved path, preserving outcome
// order within each path. Duplicate messages are preserved: two distinct
// rule failures never merge.
func (r *Report) ByPath() map[string][]string {
	if r == nil {
		return map[string][]string{}
	}
	grouped := make(map[string][]string)
	for _, out := range r.outcomes {
		grouped[out.Path] = append(grouped[out.Path], out.Message)
	}
	return grouped
}

// Has reports whether any outcome was recorded for the given path.
func (r *Report) Has(path string) bool {
	if r == nil {
		return false
	}
	for _, out := range r.outcomes {
		if out.Path == path {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for the given path, in order.
func (r *Report) Get(path string) []string {
	if r == nil {
		return nil
	}
	var messages []string
	for _, out := range r.outcomes {
		if out.Path == path {
			messages = append(messages, out.Message)
		}
	}
	return messages
}

// Fields returns the distinct failing paths in first-failure order.
func (r *Report) Fields() []string {
	if r == nil {
		return nil
	}
	var fields []string
	seen := make(map[string]bool)
	for _, out := range r.outcomes {
		if !seen[out.Path] {
			fields = append(fields, out.Path)
			seen[out.Path] = true
		}
	}
	return fields
}

// Error renders the report as a single error string, so a non-empty report
// can travel through error-returning call sites. Failures remain data: Run
// itself never returns a report as its error.
func (r *Report) Error() string {
	if r.IsEmpty() {
		return "validation failed"
	}
	parts := make([]string, 0, len(r.outcomes))
	for _, out := range r.outcomes {
		parts = append(parts, fmt.Sprintf("%s: %s", out.Path, out.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
