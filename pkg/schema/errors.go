package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRule is wrapped when a schema references a rule name absent
	// from the registry.
	ErrUnknownRule = errors.New("schema: unknown rule")

	// ErrBadParams is wrapped when rule parameters fail type checking.
	ErrBadParams = errors.New("schema: invalid rule parameters")

	// ErrBadSchema is wrapped when the schema document itself is malformed
	// (e.g. a YAML entry that is not a mapping).
	ErrBadSchema = errors.New("schema: malformed schema")
)

// CompilationError reports why a schema entry could not be compiled. It
// wraps one of the sentinel errors above or a fieldpath parse error.
type CompilationError struct {
	Path string // schema entry path, empty for document-level problems
	Rule string // offending rule name, empty for path problems
	Err  error
}

func (e *CompilationError) Error() string {
	switch {
	case e.Path == "":
		return fmt.Sprintf("schema compilation failed: %v", e.Err)
	case e.Rule == "":
		return fmt.Sprintf("schema compilation failed at %q: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("schema compilation failed at %q, rule %q: %v", e.Path, e.Rule, e.Err)
	}
}

func (e *CompilationError) Unwrap() error { return e.Err }
