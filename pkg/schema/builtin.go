package schema

import (
	"fmt"
	"regexp"

	"github.com/fieldchain/fieldchain/pkg/chain"
	"github.com/fieldchain/fieldchain/pkg/rules"
	"github.com/fieldchain/fieldchain/pkg/sanitize"
)

// fixed adapts a parameterless rule constructor into a Factory.
func fixed(build func() chain.Rule) Factory {
	return func(map[string]any) (chain.Rule, error) {
		return build(), nil
	}
}

func registerBuiltins(r *Registry) {
	// Defaults run before anything else sees the value.
	r.Register("default", PrecedenceDefault, func(params map[string]any) (chain.Rule, error) {
		fallback, ok := params["value"]
		if !ok {
			return chain.Rule{}, fmt.Errorf("%w: default requires a value", ErrBadParams)
		}
		return sanitize.Default(fallback), nil
	})

	// Sanitizers.
	r.Register("trim", PrecedenceSanitizer, fixed(sanitize.Trim))
	r.Register("toLower", PrecedenceSanitizer, fixed(sanitize.ToLower))
	r.Register("toUpper", PrecedenceSanitizer, fixed(sanitize.ToUpper))
	r.Register("escape", PrecedenceSanitizer, fixed(sanitize.Escape))
	r.Register("collapseWhitespace", PrecedenceSanitizer, fixed(sanitize.CollapseWhitespace))
	r.Register("normalizeEmail", PrecedenceSanitizer, fixed(sanitize.NormalizeEmail))
	r.Register("toInt", PrecedenceSanitizer, fixed(sanitize.ToInt))
	r.Register("toFloat", PrecedenceSanitizer, fixed(sanitize.ToFloat))
	r.Register("toBool", PrecedenceSanitizer, fixed(sanitize.ToBool))

	// Presence.
	r.Register("required", PrecedencePresence, fixed(rules.Required))
	r.Register("notEmpty", PrecedencePresence, fixed(rules.NotEmpty))

	// Type checks.
	r.Register("isInt", PrecedenceType, fixed(rules.IsInt))
	r.Register("isNumeric", PrecedenceType, fixed(rules.IsNumeric))
	r.Register("isBool", PrecedenceType, fixed(rules.IsBool))
	r.Register("isArray", PrecedenceType, fixed(rules.IsArray))

	// Value checks.
	r.Register("isEmail", PrecedenceCheck, fixed(rules.IsEmail))
	r.Register("isURL", PrecedenceCheck, fixed(rules.IsURL))
	r.Register("isUUID", PrecedenceCheck, fixed(rules.IsUUID))

	r.Register("isLength", PrecedenceCheck, func(params map[string]any) (chain.Rule, error) {
		min, _, err := intParam(params, "min")
		if err != nil {
			return chain.Rule{}, err
		}
		max, hasMax, err := intParam(params, "max")
		if err != nil {
			return chain.Rule{}, err
		}
		if min < 0 || (hasMax && max < 0) {
			return chain.Rule{}, fmt.Errorf("%w: isLength bounds must not be negative", ErrBadParams)
		}
		if hasMax && max != 0 && min > max {
			return chain.Rule{}, fmt.Errorf("%w: isLength min %d > max %d", ErrBadParams, min, max)
		}
		return rules.IsLength(min, max), nil
	})

	r.Register("min", PrecedenceCheck, func(params map[string]any) (chain.Rule, error) {
		min, ok, err := floatParam(params, "value")
		if err != nil {
			return chain.Rule{}, err
		}
		if !ok {
			return chain.Rule{}, fmt.Errorf("%w: min requires a numeric value", ErrBadParams)
		}
		return rules.Min(min), nil
	})

	r.Register("max", PrecedenceCheck, func(params map[string]any) (chain.Rule, error) {
		max, ok, err := floatParam(params, "value")
		if err != nil {
			return chain.Rule{}, err
		}
		if !ok {
			return chain.Rule{}, fmt.Errorf("%w: max requires a numeric value", ErrBadParams)
		}
		return rules.Max(max), nil
	})

	r.Register("between", PrecedenceCheck, func(params map[string]any) (chain.Rule, error) {
		min, hasMin, err := floatParam(params, "min")
		if err != nil {
			return chain.Rule{}, err
		}
		max, hasMax, err := floatParam(params, "max")
		if err != nil {
			return chain.Rule{}, err
		}
		if !hasMin || !hasMax {
			return chain.Rule{}, fmt.Errorf("%w: between requires min and max", ErrBadParams)
		}
		if min > max {
			return chain.Rule{}, fmt.Errorf("%w: between min %v > max %v", ErrBadParams, min, max)
		}
		return rules.Between(min, max), nil
	})

	r.Register("matches", PrecedenceCheck, func(params map[string]any) (chain.Rule, error) {
		pattern, ok, err := stringParam(params, "pattern")
		if err != nil {
			return chain.Rule{}, err
		}
		if !ok {
			return chain.Rule{}, fmt.Errorf("%w: matches requires a pattern", ErrBadParams)
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return chain.Rule{}, fmt.Errorf("%w: matches pattern %q: %v", ErrBadParams, pattern, err)
		}
		description, has, err := stringParam(params, "description")
		if err != nil {
			return chain.Rule{}, err
		}
		if !has {
			description = "the required"
		}
		return rules.Matches(pattern, description), nil
	})

	r.Register("isIn", PrecedenceCheck, func(params map[string]any) (chain.Rule, error) {
		values, ok, err := listParam(params, "values")
		if err != nil {
			return chain.Rule{}, err
		}
		if !ok || len(values) == 0 {
			return chain.Rule{}, fmt.Errorf("%w: isIn requires a non-empty values list", ErrBadParams)
		}
		return rules.In(values...), nil
	})

	r.Register("contains", PrecedenceCheck, func(params map[string]any) (chain.Rule, error) {
		substr, ok, err := stringParam(params, "value")
		if err != nil {
			return chain.Rule{}, err
		}
		if !ok {
			return chain.Rule{}, fmt.Errorf("%w: contains requires a value", ErrBadParams)
		}
		return rules.Contains(substr), nil
	})

	r.Register("arrayLength", PrecedenceCheck, func(params map[string]any) (chain.Rule, error) {
		min, _, err := intParam(params, "min")
		if err != nil {
			return chain.Rule{}, err
		}
		max, hasMax, err := intParam(params, "max")
		if err != nil {
			return chain.Rule{}, err
		}
		if hasMax && max != 0 && min > max {
			return chain.Rule{}, fmt.Errorf("%w: arrayLength min %d > max %d", ErrBadParams, min, max)
		}
		return rules.ArrayLength(min, max), nil
	})
}
