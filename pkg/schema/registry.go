package schema

import (
	"fmt"
	"sort"

	"github.com/fieldchain/fieldchain/pkg/chain"
)

// Canonical application order classes. Within a class, rules apply in
// alphabetical name order so the unordered Spec map compiles
// deterministically.
const (
	PrecedenceDefault   = 0  // value defaults, before anything judges the value
	PrecedenceSanitizer = 10 // transforms ("sanitize eagerly")
	PrecedencePresence  = 20 // required / notEmpty
	PrecedenceType      = 30 // isInt, isBool, isArray, ...
	PrecedenceCheck     = 40 // everything else
)

// Factory builds a rule from schema parameters. Factories validate their
// parameters and return an error (wrapped into a CompilationError by the
// compiler) when they are missing or mistyped.
type Factory func(params map[string]any) (chain.Rule, error)

type registration struct {
	factory    Factory
	precedence int
}

// Registry resolves schema rule names to rule factories. The zero value is
// unusable; start from NewRegistry (built-ins included) or NewEmptyRegistry.
// Registries are intended to be configured once at startup and are not
// safe for concurrent mutation.
type Registry struct {
	factories map[string]registration
}

// NewEmptyRegistry returns a registry with no rules registered.
func NewEmptyRegistry() *Registry {
	return &Registry{factories: make(map[string]registration)}
}

// NewRegistry returns a registry preloaded with the built-in rules from the
// rules and sanitize packages.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	registerBuiltins(r)
	return r
}

// Register adds or replaces a rule factory under the given name and
// canonical precedence class.
func (r *Registry) Register(name string, precedence int, factory Factory) {
	r.factories[name] = registration{factory: factory, precedence: precedence}
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	reg, ok := r.factories[name]
	if !ok {
		return nil, false
	}
	return reg.factory, true
}

// Names returns all registered rule names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// orderNames sorts schema rule names into canonical application order:
// precedence class first, then name.
func (r *Registry) orderNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := r.factories[out[i]].precedence, r.factories[out[j]].precedence
		if pi != pj {
			return pi < pj
		}
		return out[i] < out[j]
	})
	return out
}

// Parameter extraction helpers shared by built-in factories.

func intParam(params map[string]any, key string) (int, bool, error) {
	raw, ok := params[key]
	if !ok {
		return 0, false, nil
	}
	switch n := raw.(type) {
	case int:
		return n, true, nil
	case int64:
		return int(n), true, nil
	case float64:
		if n != float64(int(n)) {
			return 0, false, fmt.Errorf("%w: %q must be an integer, got %v", ErrBadParams, key, raw)
		}
		return int(n), true, nil
	default:
		return 0, false, fmt.Errorf("%w: %q must be numeric, got %T", ErrBadParams, key, raw)
	}
}

func floatParam(params map[string]any, key string) (float64, bool, error) {
	raw, ok := params[key]
	if !ok {
		return 0, false, nil
	}
	switch n := raw.(type) {
	case int:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	case float64:
		return n, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %q must be numeric, got %T", ErrBadParams, key, raw)
	}
}

func stringParam(params map[string]any, key string) (string, bool, error) {
	raw, ok := params[key]
	if !ok {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: %q must be a string, got %T", ErrBadParams, key, raw)
	}
	return s, true, nil
}

func listParam(params map[string]any, key string) ([]any, bool, error) {
	raw, ok := params[key]
	if !ok {
		return nil, false, nil
	}
	l, ok := raw.([]any)
	if !ok {
		return nil, false, fmt.Errorf("%w: %q must be a list, got %T", ErrBadParams, key, raw)
	}
	return l, true, nil
}
