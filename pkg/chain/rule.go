package chain

import (
	"context"
	"errors"
)

// Kind discriminates the rule variants a chain can hold.
type Kind int

const (
	// KindValidator judges the working value, pass/fail.
	KindValidator Kind = iota
	// KindSanitizer transforms the working value and always succeeds.
	KindSanitizer
	// KindCustom is a caller-supplied judgment that may block on I/O.
	KindCustom
	// KindBail stops the chain once a prior rule has failed.
	KindBail
	// KindNot inverts the pass/fail sense of the next judgment.
	KindNot
	// KindIf gates the remainder of the chain on a document predicate.
	KindIf
)

func (k Kind) String() string {
	switch k {
	case KindValidator:
		return "validator"
	case KindSanitizer:
		return "sanitizer"
	case KindCustom:
		return "custom"
	case KindBail:
		return "bail"
	case KindNot:
		return "not"
	case KindIf:
		return "if"
	default:
		return "unknown"
	}
}

// CheckFunc judges a working value. Returning true means the value passes.
type CheckFunc func(value any, fctx *Context) bool

// TransformFunc produces the sanitized replacement for a working value.
type TransformFunc func(value any) any

// CustomFunc is a caller-supplied judgment. Returning nil passes. Returning
// an error created by Fail rejects the value with that message; any other
// error (or panic) is treated as an infrastructure fault and converted to a
// generic failure. The context carries run cancellation and deadline.
type CustomFunc func(ctx context.Context, value any, fctx *Context) error

// PredicateFunc gates chain evaluation; it may inspect sibling fields
// through the full document.
type PredicateFunc func(doc map[string]any, fctx *Context) bool

// MessageFunc computes a failure message from the attempted value.
type MessageFunc func(value any, fctx *Context) string

// Rule is a single step in a chain. Exactly one of the kind-specific
// function fields is set, matching Kind.
type Rule struct {
	Kind Kind
	Name string

	Check     CheckFunc
	Transform TransformFunc
	Custom    CustomFunc
	When      PredicateFunc

	Message     string
	MessageFunc MessageFunc

	// Translation metadata rides along with outcomes so callers can render
	// localized messages without the engine owning a catalog.
	TranslationKey    string
	TranslationValues map[string]any
}

// failError is the deliberate rejection signal for custom rules.
type failError struct {
	message string
}

func (e *failError) Error() string { return e.message }

// Fail builds the error a custom rule returns to reject a value with a
// specific message. Any other non-nil error from a custom rule is treated as
// an infrastructure fault, not a judgment.
func Fail(message string) error {
	return &failError{message: message}
}

// FailMessage extracts the message from a deliberate rejection. The second
// return is false when err is not a Fail error.
func FailMessage(err error) (string, bool) {
	var fe *failError
	if errors.As(err, &fe) {
		return fe.message, true
	}
	return "", false
}

// Validator builds a validator rule with a static message.
func Validator(name string, check CheckFunc, message string) Rule {
	return Rule{Kind: KindValidator, Name: name, Check: check, Message: message}
}

// Sanitizer builds a sanitizer rule.
func Sanitizer(name string, transform TransformFunc) Rule {
	return Rule{Kind: KindSanitizer, Name: name, Transform: transform}
}

// CustomRule builds a custom judgment rule.
func CustomRule(name string, fn CustomFunc) Rule {
	return Rule{Kind: KindCustom, Name: name, Custom: fn}
}
