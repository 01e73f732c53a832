package fieldpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one component of a field path: an object key, an array index,
// or a wildcard matching every element of an array.
type Segment struct {
	Key      string // object key (ignored when IsIndex or Wildcard is set)
	Index    int    // array index
	IsIndex  bool   // disambiguates Index=0 from an unset index
	Wildcard bool
}

// KeySegment returns a literal key segment.
func KeySegment(key string) Segment { return Segment{Key: key} }

// IndexSegment returns an array index segment.
func IndexSegment(i int) Segment { return Segment{Index: i, IsIndex: true} }

// WildcardSegment returns a segment matching every element of an array.
func WildcardSegment() Segment { return Segment{Wildcard: true} }

func (s Segment) String() string {
	switch {
	case s.Wildcard:
		return "*"
	case s.IsIndex:
		return strconv.Itoa(s.Index)
	default:
		return s.Key
	}
}

// Path is an ordered sequence of segments addressing a value in a document.
type Path []Segment

// Parse converts a dotted path string into a Path. Segments are separated by
// dots; a segment of bare digits is an array index, "*" is a wildcard, and
// anything else is a literal object key.
//
//	Parse("user.emails.0")   -> [user emails 0]
//	Parse("items.*.price")   -> [items * price]
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, ErrEmptyPath
	}

	parts := strings.Split(s, ".")
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		switch {
		case part == "":
			return nil, fmt.Errorf("%w: empty segment in %q", ErrMalformedPath, s)
		case part == "*":
			path = append(path, WildcardSegment())
		case strings.Contains(part, "*"):
			return nil, fmt.Errorf("%w: wildcard must be a whole segment in %q", ErrMalformedPath, s)
		default:
			if idx, err := strconv.Atoi(part); err == nil && idx >= 0 {
				path = append(path, IndexSegment(idx))
			} else {
				path = append(path, KeySegment(part))
			}
		}
	}
	return path, nil
}

// MustParse is like Parse but panics on error. Intended for statically known
// paths in package-level chain declarations.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the path back into dotted notation.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.String()
	}
	return strings.Join(parts, ".")
}

// HasWildcard reports whether any segment of the path is a wildcard.
func (p Path) HasWildcard() bool {
	for _, seg := range p {
		if seg.Wildcard {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}
