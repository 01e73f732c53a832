package fieldpath

// Located pairs a fully concrete path (wildcards expanded) with the value
// currently stored at that path. Missing marks a path whose key or index does
// not exist in the document; Value is nil in that case.
type Located struct {
	Path    Path
	Value   any
	Missing bool
}

// Resolve walks the document and returns every concrete location the path
// addresses. The traversal is read-only.
//
// A missing key or out-of-range index on a fully concrete remainder yields a
// single entry marked Missing carrying the complete requested path, so
// presence rules can still report it. A wildcard applied to anything other
// than an array matches nothing, and a missing node with a wildcard further
// down the path likewise produces no entries since no concrete path can be
// named for it.
func Resolve(doc any, path Path) []Located {
	return resolve(doc, path, make(Path, 0, len(path)))
}

func resolve(node any, rest Path, prefix Path) []Located {
	if len(rest) == 0 {
		return []Located{{Path: prefix.Clone(), Value: node}}
	}

	seg, tail := rest[0], rest[1:]

	if seg.Wildcard {
		arr, ok := node.([]any)
		if !ok {
			return nil
		}
		var out []Located
		for i, elem := range arr {
			out = append(out, resolve(elem, tail, append(prefix, IndexSegment(i)))...)
		}
		return out
	}

	child, ok := descend(node, seg)
	if !ok {
		if tail.HasWildcard() {
			return nil
		}
		full := append(prefix.Clone(), rest...)
		return []Located{{Path: full, Missing: true}}
	}
	return resolve(child, tail, append(prefix, seg))
}

// descend steps one segment down from node. Index segments fall back to a
// string-keyed lookup when the node is a map, so "a.0" addresses both
// array element zero and a literal "0" key.
func descend(node any, seg Segment) (any, bool) {
	if seg.IsIndex {
		if arr, ok := node.([]any); ok {
			if seg.Index < 0 || seg.Index >= len(arr) {
				return nil, false
			}
			return arr[seg.Index], true
		}
	}
	m, ok := node.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := m[seg.String()]
	return v, ok
}
