package chain

import "golang.org/x/text/language"

// Context carries per-invocation data into custom rules, predicates, and
// message functions: the full document for sibling-field comparisons, the
// resolved path of the value under judgment, the caller's locale, and any
// caller-supplied metadata.
//
// The document is shared with the executor; rules must treat it as
// read-only. Sanitized values are committed by the executor, never by rules.
type Context struct {
	Doc    map[string]any
	Path   string
	Locale language.Tag
	Meta   map[string]any
}

// MetaValue returns a metadata entry, or nil when unset.
func (c *Context) MetaValue(key string) any {
	if c == nil || c.Meta == nil {
		return nil
	}
	return c.Meta[key]
}
