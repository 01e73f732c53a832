package chain

import (
	"fmt"

	"github.com/fieldchain/fieldchain/pkg/fieldpath"
)

// Chain is an immutable ordered rule sequence bound to one field path.
// Build one with NewBuilder; a built chain is safe for concurrent use.
type Chain struct {
	path        fieldpath.Path
	rules       []Rule
	optional    bool
	emptiness   Emptiness
	stopOnFirst bool
	sources     []string
}

// Path returns the field path the chain is bound to.
func (c Chain) Path() fieldpath.Path { return c.path }

// Rules returns a copy of the chain's rule sequence.
func (c Chain) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Sources returns the location selectors restricting which source document
// the chain resolves against (e.g. "body", "query"). Empty means any.
func (c Chain) Sources() []string {
	out := make([]string, len(c.sources))
	copy(out, c.sources)
	return out
}

// IsOptional reports whether the chain skips not-provided values.
func (c Chain) IsOptional() bool { return c.optional }

// Builder assembles a Chain fluently. Methods append in call order; the
// order is the evaluation order. Builders are not safe for concurrent use.
type Builder struct {
	chain Chain
	err   error
}

// NewBuilder starts a chain for the given dotted path. Path parse errors are
// deferred to Build.
func NewBuilder(path string) *Builder {
	b := &Builder{}
	p, err := fieldpath.Parse(path)
	if err != nil {
		b.err = err
		return b
	}
	b.chain.path = p
	return b
}

// FromPath starts a chain from an already parsed path.
func FromPath(path fieldpath.Path) *Builder {
	return &Builder{chain: Chain{path: path.Clone()}}
}

// Optional skips the whole chain for values that are absent or null.
func (b *Builder) Optional() *Builder {
	return b.OptionalWith(EmptyNullable)
}

// OptionalWith skips the whole chain for values empty under the given
// policy.
func (b *Builder) OptionalWith(policy Emptiness) *Builder {
	b.chain.optional = true
	b.chain.emptiness = policy
	return b
}

// StopOnFirstError makes every failure terminal for its located value, as if
// Bail followed every rule.
func (b *Builder) StopOnFirstError() *Builder {
	b.chain.stopOnFirst = true
	return b
}

// FromSources restricts which source documents the chain applies to. The
// names are metadata interpreted by the executor's caller (e.g. the HTTP
// layer maps "body", "query", "params", "headers").
func (b *Builder) FromSources(sources ...string) *Builder {
	b.chain.sources = append(b.chain.sources, sources...)
	return b
}

// Add appends prebuilt rules, e.g. from the rules and sanitize packages.
func (b *Builder) Add(rules ...Rule) *Builder {
	b.chain.rules = append(b.chain.rules, rules...)
	return b
}

// Validate appends a named validator with a static failure message.
func (b *Builder) Validate(name string, check CheckFunc, message string) *Builder {
	return b.Add(Validator(name, check, message))
}

// Sanitize appends a named sanitizer.
func (b *Builder) Sanitize(name string, transform TransformFunc) *Builder {
	return b.Add(Sanitizer(name, transform))
}

// Custom appends a caller-supplied judgment rule.
func (b *Builder) Custom(fn CustomFunc) *Builder {
	return b.Add(CustomRule("custom", fn))
}

// CustomNamed appends a custom rule under a specific name for reporting.
func (b *Builder) CustomNamed(name string, fn CustomFunc) *Builder {
	return b.Add(CustomRule(name, fn))
}

// Bail stops the chain for a located value once any prior rule has failed.
func (b *Builder) Bail() *Builder {
	return b.Add(Rule{Kind: KindBail, Name: "bail"})
}

// Not inverts the pass/fail sense of the next validator or custom rule.
func (b *Builder) Not() *Builder {
	return b.Add(Rule{Kind: KindNot, Name: "not"})
}

// If gates the remainder of the chain on a predicate over the full document.
// When the predicate is false the rest of the chain is skipped without
// recording an outcome.
func (b *Builder) If(pred PredicateFunc) *Builder {
	return b.Add(Rule{Kind: KindIf, Name: "if", When: pred})
}

// Message overrides the failure message of the most recently added rule.
func (b *Builder) Message(message string) *Builder {
	if i := len(b.chain.rules) - 1; i >= 0 {
		b.chain.rules[i].Message = message
		b.chain.rules[i].MessageFunc = nil
	}
	return b
}

// MessageFn overrides the failure message of the most recently added rule
// with one computed from the attempted value and context.
func (b *Builder) MessageFn(fn MessageFunc) *Builder {
	if i := len(b.chain.rules) - 1; i >= 0 {
		b.chain.rules[i].MessageFunc = fn
	}
	return b
}

// Build freezes the builder into an immutable Chain.
func (b *Builder) Build() (Chain, error) {
	if b.err != nil {
		return Chain{}, b.err
	}
	for _, r := range b.chain.rules {
		if err := checkRule(r); err != nil {
			return Chain{}, err
		}
	}
	c := b.chain
	c.rules = make([]Rule, len(b.chain.rules))
	copy(c.rules, b.chain.rules)
	return c, nil
}

// MustBuild is like Build but panics on error. Intended for statically
// declared chains.
func (b *Builder) MustBuild() Chain {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

func checkRule(r Rule) error {
	switch r.Kind {
	case KindValidator:
		if r.Check == nil {
			return fmt.Errorf("chain: validator rule %q has no check func", r.Name)
		}
	case KindSanitizer:
		if r.Transform == nil {
			return fmt.Errorf("chain: sanitizer rule %q has no transform func", r.Name)
		}
	case KindCustom:
		if r.Custom == nil {
			return fmt.Errorf("chain: custom rule %q has no func", r.Name)
		}
	case KindIf:
		if r.When == nil {
			return fmt.Errorf("chain: if rule has no predicate")
		}
	}
	return nil
}
