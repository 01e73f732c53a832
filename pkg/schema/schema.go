package schema

import "sort"

// Spec is one entry's rule specification: rule name → parameters. A value of
// true (or an empty map) applies the rule with defaults; a map supplies
// named parameters; a bare scalar is shorthand for {"value": scalar}.
type Spec map[string]any

// Entry pairs a field path with its rule specification.
type Entry struct {
	Path string
	Spec Spec
}

// Schema is an ordered sequence of entries. Entry order determines chain
// execution order after compilation.
type Schema struct {
	entries []Entry
}

// New returns an empty schema to populate with Field calls.
func New() *Schema {
	return &Schema{}
}

// Field appends an entry. Declaring the same path twice appends a second
// independent chain for it.
func (s *Schema) Field(path string, spec Spec) *Schema {
	s.entries = append(s.entries, Entry{Path: path, Spec: spec})
	return s
}

// FromMap builds a schema from a plain map. Go map iteration is randomized,
// so entries are ordered by sorted path for deterministic compilation; use
// New().Field(...) or ParseYAML when declaration order matters.
func FromMap(m map[string]Spec) *Schema {
	paths := make([]string, 0, len(m))
	for path := range m {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	s := New()
	for _, path := range paths {
		s.Field(path, m[path])
	}
	return s
}

// Entries returns a copy of the schema's ordered entries.
func (s *Schema) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Schema) Len() int { return len(s.entries) }
