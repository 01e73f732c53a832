package fieldpath

import "errors"

var (
	// ErrEmptyPath is returned when parsing an empty path string.
	ErrEmptyPath = errors.New("fieldpath: empty path")

	// ErrMalformedPath is returned when a path string contains an empty or
	// invalid segment, e.g. "a..b" or "a.*b".
	ErrMalformedPath = errors.New("fieldpath: malformed path")

	// ErrUnsettablePath is returned by Set when the target path cannot be
	// written, e.g. a wildcard segment or an out-of-range array index.
	ErrUnsettablePath = errors.New("fieldpath: path is not settable")
)
