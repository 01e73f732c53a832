// Package chain implements ordered validation-and-sanitization chains bound
// to a single field path.
//
// A chain owns a sequence of rules evaluated in declaration order against
// every value its path resolves to. Sanitizer rules transform the working
// value, validator and custom rules judge it, and control rules steer
// evaluation: Bail stops the chain after a failure, Not inverts the next
// judgment, If gates the rest of the chain on a predicate over the whole
// document, and the optional modifier skips absent values entirely.
//
// # Architecture
//
// Chains are built with a fluent Builder and frozen by Build; a built Chain
// is immutable and safe for concurrent evaluation against many documents.
// Evaluation never panics on misbehaving custom rules: panics and unexpected
// errors are normalized into failing outcomes (fail closed), while a
// deliberate rejection is signalled with Fail.
//
// # Usage
//
//	c, err := chain.NewBuilder("email").
//		Add(rules.Required(), rules.IsEmail()).
//		Bail().
//		Custom(func(ctx context.Context, v any, fc *chain.Context) error {
//			if taken(v) {
//				return chain.Fail("email already registered")
//			}
//			return nil
//		}).
//		Build()
//
// Evaluation of one chain produces per-located-value results; running many
// chains and aggregating their outcomes into a report is the runner
// package's job.
package chain
