// Package rules provides the built-in validator rule constructors used in
// chains and schemas: presence, length, numeric range, format (email, URL,
// UUID), regex pattern, and membership checks.
//
// Every constructor returns a chain.Rule carrying a human-readable default
// message plus translation-key metadata, so callers can render localized
// messages from the aggregated report without this package owning a message
// catalog. Rules judge the dynamically typed values found in decoded
// documents; a value of the wrong underlying type simply fails the check.
package rules
