package fieldpath

import "fmt"

// Set writes value at the given concrete path, creating intermediate maps for
// missing key segments. Array elements can be overwritten but arrays are
// never grown; a wildcard segment or an out-of-range index is an error.
func Set(doc map[string]any, path Path, value any) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrUnsettablePath)
	}
	if path.HasWildcard() {
		return fmt.Errorf("%w: wildcard in %q", ErrUnsettablePath, path.String())
	}

	var node any = doc
	for i, seg := range path[:len(path)-1] {
		child, err := stepForWrite(node, seg, path[:i+1])
		if err != nil {
			return err
		}
		node = child
	}

	last := path[len(path)-1]
	switch container := node.(type) {
	case map[string]any:
		container[last.String()] = value
	case []any:
		if !last.IsIndex || last.Index < 0 || last.Index >= len(container) {
			return fmt.Errorf("%w: index %s out of range in %q", ErrUnsettablePath, last, path.String())
		}
		container[last.Index] = value
	default:
		return fmt.Errorf("%w: %q does not address a container", ErrUnsettablePath, path.String())
	}
	return nil
}

func stepForWrite(node any, seg Segment, sofar Path) (any, error) {
	switch container := node.(type) {
	case map[string]any:
		key := seg.String()
		child, ok := container[key]
		if !ok || child == nil {
			// Only maps are created on demand; a missing array cannot be
			// conjured with the right length.
			created := make(map[string]any)
			container[key] = created
			return created, nil
		}
		return child, nil
	case []any:
		if !seg.IsIndex || seg.Index < 0 || seg.Index >= len(container) {
			return nil, fmt.Errorf("%w: index %s out of range at %q", ErrUnsettablePath, seg, sofar.String())
		}
		return container[seg.Index], nil
	default:
		return nil, fmt.Errorf("%w: scalar at %q", ErrUnsettablePath, sofar.String())
	}
}
