// Package sanitize provides the built-in sanitizer rule constructors used in
// chains and schemas (trim, case folding, HTML escaping, numeric coercion,
// defaults), plus generic Apply/Compose helpers for building standalone
// transformation pipelines outside the chain engine.
//
// Sanitizers never fail: a value the transform does not apply to passes
// through unchanged. Committing sanitized values back into the document is
// the executor's job.
package sanitize
