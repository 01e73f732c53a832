// Package runner executes validation chains against a document and
// aggregates their outcomes into an immutable report.
//
// # Architecture
//
// Each chain evaluates independently on its own goroutine; chains never see
// each other's outcomes. Sanitized values are committed back into the
// document only after every chain has finished, on the caller's goroutine,
// so concurrent chains always judge the document as it was supplied and
// commits cannot race. When two chains sanitize the same path the later
// chain in declaration order wins; targeting disjoint paths is the caller's
// responsibility.
//
// The report's ordering is deterministic regardless of scheduling: outcomes
// sort by chain declaration order, then located-value order within a chain,
// then rule order within a located value.
//
// # Error Handling
//
// Per-field failures are data in the report, never error returns. Run
// returns a non-nil error only for fatal conditions: ErrRunTimeout when the
// context deadline expired mid-run (the report is withheld entirely, never
// partially populated) or the context's own error on cancellation.
package runner
