// Package fieldpath implements dotted field paths with array indices and
// wildcard segments, and resolves them against structured document trees
// (maps, slices, scalars) such as a decoded JSON request body.
//
// A path like "items.*.price" expands to one located value per element of
// the "items" array. Resolution is strictly read-only; committing sanitized
// values back into a document goes through Set with a concrete path.
//
// Paths addressing a missing key still yield a single located entry marked
// absent, so presence checks can report the full user-facing path. Wildcards
// over non-array nodes match nothing.
package fieldpath
