package runner

import "errors"

var (
	// ErrRunTimeout is returned when the run's deadline expired before every
	// chain finished. Chains still in flight are abandoned and no report is
	// produced.
	ErrRunTimeout = errors.New("runner: validation run exceeded its deadline")
)
