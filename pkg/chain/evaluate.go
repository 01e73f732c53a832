package chain

import (
	"context"

	"github.com/fieldchain/fieldchain/pkg/fieldpath"
)

// faultMessage is reported when a custom rule raised an infrastructure
// error rather than a deliberate rejection. Failing closed here keeps an
// unreachable dependency from silently letting invalid input through.
const faultMessage = "validation could not be completed"

// Outcome records one rule failure for one located value.
type Outcome struct {
	Path    string
	Value   any // working value at the failure point, post-sanitization
	Rule    string
	Kind    Kind
	Message string

	// Fault marks a custom rule that errored for reasons other than the
	// value being invalid (e.g. its datastore was unreachable).
	Fault bool

	TranslationKey    string
	TranslationValues map[string]any
}

// Result is the evaluation of one chain against one located value.
type Result struct {
	Located  fieldpath.Located
	Value    any  // final working value after sanitizers
	Dirty    bool // a sanitizer changed the working value
	Skipped  bool // optional modifier or If guard short-circuited the chain
	Outcomes []Outcome
}

// Evaluate runs the chain against every value its path resolves to in doc.
// Rules run strictly in declaration order per located value. The base
// context supplies locale and metadata; its Doc and Path fields are filled
// in per located value. Evaluation stops early when ctx is done; the caller
// is expected to discard partial results in that case.
//
// Evaluate does not write sanitized values back into the document; the
// executor commits Result.Value for dirty results.
func (c Chain) Evaluate(ctx context.Context, doc map[string]any, base Context) []Result {
	located := fieldpath.Resolve(doc, c.path)
	results := make([]Result, 0, len(located))
	for _, lv := range located {
		if ctx.Err() != nil {
			break
		}
		results = append(results, c.evaluateOne(ctx, doc, base, lv))
	}
	return results
}

func (c Chain) evaluateOne(ctx context.Context, doc map[string]any, base Context, lv fieldpath.Located) Result {
	res := Result{Located: lv, Value: lv.Value}

	if c.optional && isEmpty(lv.Value, lv.Missing, c.emptiness) {
		res.Skipped = true
		return res
	}

	fctx := base
	fctx.Doc = doc
	fctx.Path = lv.Path.String()

	var (
		failed bool
		negate bool
	)
	for _, rule := range c.rules {
		if ctx.Err() != nil {
			return res
		}

		switch rule.Kind {
		case KindBail:
			if failed {
				return res
			}

		case KindNot:
			negate = true

		case KindIf:
			if !rule.When(doc, &fctx) {
				res.Skipped = true
				return res
			}

		case KindSanitizer:
			res.Value = rule.Transform(res.Value)
			res.Dirty = true

		case KindValidator:
			ok := rule.Check(res.Value, &fctx)
			if negate {
				ok = !ok
				negate = false
			}
			if !ok {
				res.Outcomes = append(res.Outcomes, c.outcome(rule, res.Value, &fctx, "", false))
				failed = true
				if c.stopOnFirst {
					return res
				}
			}

		case KindCustom:
			err := invokeCustom(ctx, rule, res.Value, &fctx)
			ok := err == nil
			if negate {
				ok = !ok
				negate = false
			}
			if !ok {
				message, fault := "", false
				if err != nil {
					if m, deliberate := FailMessage(err); deliberate {
						message = m
					} else {
						message, fault = faultMessage, true
					}
				}
				res.Outcomes = append(res.Outcomes, c.outcome(rule, res.Value, &fctx, message, fault))
				failed = true
				if c.stopOnFirst {
					return res
				}
			}
		}
	}
	return res
}

// invokeCustom shields the chain from panicking custom rules; a panic is an
// infrastructure fault like any other unexpected error.
func invokeCustom(ctx context.Context, rule Rule, value any, fctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{cause: r}
		}
	}()
	return rule.Custom(ctx, value, fctx)
}

type panicError struct {
	cause any
}

func (e *panicError) Error() string { return "custom rule panicked" }

func (c Chain) outcome(rule Rule, value any, fctx *Context, message string, fault bool) Outcome {
	switch {
	case fault:
		message = faultMessage
	case message != "":
		// Deliberate rejection message from Fail wins as-is.
	case rule.MessageFunc != nil:
		message = rule.MessageFunc(value, fctx)
	case rule.Message != "":
		message = rule.Message
	default:
		message = "is invalid"
	}

	return Outcome{
		Path:              fctx.Path,
		Value:             value,
		Rule:              rule.Name,
		Kind:              rule.Kind,
		Message:           message,
		Fault:             fault,
		TranslationKey:    rule.TranslationKey,
		TranslationValues: rule.TranslationValues,
	}
}
