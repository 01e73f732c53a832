package schema

import (
	"fmt"

	"github.com/fieldchain/fieldchain/pkg/chain"
)

// Modifier keys handled by the compiler itself rather than by rule
// factories.
const (
	modOptional = "optional"
	modBail     = "bail"
	modSources  = "in"
)

// Compile translates the schema into chains using the built-in registry.
// On any error the returned chain slice is nil - a schema never compiles
// partially.
func Compile(s *Schema) ([]chain.Chain, error) {
	return CompileWith(NewRegistry(), s)
}

// CompileWith is Compile with a caller-configured registry.
func CompileWith(reg *Registry, s *Schema) ([]chain.Chain, error) {
	chains := make([]chain.Chain, 0, s.Len())
	for _, entry := range s.Entries() {
		c, err := compileEntry(reg, entry)
		if err != nil {
			return nil, err
		}
		chains = append(chains, c)
	}
	return chains, nil
}

func compileEntry(reg *Registry, entry Entry) (chain.Chain, error) {
	b := chain.NewBuilder(entry.Path)

	var ruleNames []string
	for name, raw := range entry.Spec {
		switch name {
		case modOptional:
			if err := applyOptional(b, raw); err != nil {
				return chain.Chain{}, &CompilationError{Path: entry.Path, Rule: name, Err: err}
			}
		case modBail:
			if enabled, ok := raw.(bool); !ok {
				return chain.Chain{}, &CompilationError{Path: entry.Path, Rule: name,
					Err: fmt.Errorf("%w: bail must be a boolean", ErrBadParams)}
			} else if enabled {
				b.StopOnFirstError()
			}
		case modSources:
			sources, err := sourceList(raw)
			if err != nil {
				return chain.Chain{}, &CompilationError{Path: entry.Path, Rule: name, Err: err}
			}
			b.FromSources(sources...)
		default:
			ruleNames = append(ruleNames, name)
		}
	}

	for _, name := range reg.orderNames(ruleNames) {
		factory, ok := reg.Lookup(name)
		if !ok {
			return chain.Chain{}, &CompilationError{Path: entry.Path, Rule: name, Err: ErrUnknownRule}
		}

		params, message, err := ruleParams(entry.Spec[name])
		if err != nil {
			return chain.Chain{}, &CompilationError{Path: entry.Path, Rule: name, Err: err}
		}

		rule, err := factory(params)
		if err != nil {
			return chain.Chain{}, &CompilationError{Path: entry.Path, Rule: name, Err: err}
		}
		if message != "" {
			rule.Message = message
			rule.MessageFunc = nil
		}
		b.Add(rule)
	}

	built, err := b.Build()
	if err != nil {
		return chain.Chain{}, &CompilationError{Path: entry.Path, Err: err}
	}
	return built, nil
}

// ruleParams normalizes the schema forms of a rule value: true and empty
// maps mean defaults, a map supplies parameters, and any other scalar is
// shorthand for {"value": scalar}. The reserved "message" parameter
// overrides the rule's failure message.
func ruleParams(raw any) (map[string]any, string, error) {
	switch v := raw.(type) {
	case bool:
		if !v {
			return nil, "", fmt.Errorf("%w: rule value must not be false, omit the rule instead", ErrBadParams)
		}
		return map[string]any{}, "", nil
	case map[string]any:
		params := make(map[string]any, len(v))
		message := ""
		for key, val := range v {
			if key == "message" {
				s, ok := val.(string)
				if !ok {
					return nil, "", fmt.Errorf("%w: message must be a string", ErrBadParams)
				}
				message = s
				continue
			}
			params[key] = val
		}
		return params, message, nil
	case nil:
		return map[string]any{}, "", nil
	default:
		return map[string]any{"value": v}, "", nil
	}
}

func applyOptional(b *chain.Builder, raw any) error {
	switch v := raw.(type) {
	case bool:
		if v {
			b.Optional()
		}
		return nil
	case map[string]any:
		policy, ok, err := stringParam(v, "policy")
		if err != nil {
			return err
		}
		if !ok {
			b.Optional()
			return nil
		}
		switch policy {
		case "strict":
			b.OptionalWith(chain.EmptyStrict)
		case "nullable":
			b.OptionalWith(chain.EmptyNullable)
		case "falsy":
			b.OptionalWith(chain.EmptyFalsy)
		default:
			return fmt.Errorf("%w: unknown optional policy %q", ErrBadParams, policy)
		}
		return nil
	default:
		return fmt.Errorf("%w: optional must be a boolean or a policy object", ErrBadParams)
	}
}

func sourceList(raw any) ([]string, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: in must be a list of source names", ErrBadParams)
	}
	sources := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: in entries must be strings, got %T", ErrBadParams, item)
		}
		sources = append(sources, s)
	}
	return sources, nil
}
