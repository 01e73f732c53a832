package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldchain/fieldchain/pkg/chain"
	"github.com/fieldchain/fieldchain/pkg/rules"
)

func check(t *testing.T, r chain.Rule, value any) bool {
	t.Helper()
	require.Equal(t, chain.KindValidator, r.Kind)
	return r.Check(value, &chain.Context{})
}

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.True(t, check(t, rules.Required(), "x"))
	assert.True(t, check(t, rules.Required(), 0))
	assert.True(t, check(t, rules.Required(), false))
	assert.False(t, check(t, rules.Required(), nil))
	assert.False(t, check(t, rules.Required(), ""))
	assert.False(t, check(t, rules.Required(), "   "))
}

func TestLengthRules(t *testing.T) {
	t.Parallel()

	assert.True(t, check(t, rules.MinLen(3), "abc"))
	assert.False(t, check(t, rules.MinLen(3), "ab"))
	assert.False(t, check(t, rules.MinLen(1), 42), "non-string fails")

	assert.True(t, check(t, rules.MaxLen(3), "abc"))
	assert.False(t, check(t, rules.MaxLen(3), "abcd"))

	assert.True(t, check(t, rules.IsLength(2, 4), "abc"))
	assert.False(t, check(t, rules.IsLength(2, 4), "a"))
	assert.False(t, check(t, rules.IsLength(2, 4), "abcde"))
	assert.True(t, check(t, rules.IsLength(2, 0), "a very long string"), "zero max is unbounded")
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	assert.True(t, check(t, rules.IsInt(), 42))
	assert.True(t, check(t, rules.IsInt(), float64(42)), "JSON numbers decode as float64")
	assert.True(t, check(t, rules.IsInt(), "42"))
	assert.False(t, check(t, rules.IsInt(), 4.2))
	assert.False(t, check(t, rules.IsInt(), "4.2"))
	assert.False(t, check(t, rules.IsInt(), "abc"))

	assert.True(t, check(t, rules.Min(18), 18))
	assert.False(t, check(t, rules.Min(18), 17.5))
	assert.True(t, check(t, rules.Max(100), float64(100)))
	assert.False(t, check(t, rules.Max(100), 101))
	assert.True(t, check(t, rules.Between(1, 10), 5))
	assert.False(t, check(t, rules.Between(1, 10), 0))
	assert.False(t, check(t, rules.Between(1, 10), "not a number"))

	assert.True(t, check(t, rules.IsBool(), true))
	assert.False(t, check(t, rules.IsBool(), "true"))
}

func TestFormatRules(t *testing.T) {
	t.Parallel()

	t.Run("email", func(t *testing.T) {
		assert.True(t, check(t, rules.IsEmail(), "user@example.com"))
		assert.False(t, check(t, rules.IsEmail(), "not-an-email"))
		assert.False(t, check(t, rules.IsEmail(), "user@localhost"), "domain needs a dot")
		assert.False(t, check(t, rules.IsEmail(), ""))
		assert.False(t, check(t, rules.IsEmail(), 42))
	})

	t.Run("url", func(t *testing.T) {
		assert.True(t, check(t, rules.IsURL(), "https://example.com/path"))
		assert.False(t, check(t, rules.IsURL(), "example.com"), "scheme required")
		assert.False(t, check(t, rules.IsURL(), ""))
	})

	t.Run("uuid", func(t *testing.T) {
		assert.True(t, check(t, rules.IsUUID(), "6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
		assert.False(t, check(t, rules.IsUUID(), "6ba7b810-9dad-11d1-80b4"))
		assert.False(t, check(t, rules.IsUUID(), "zba7b810-9dad-11d1-80b4-00c04fd430c8"))
	})
}

func TestPatternRules(t *testing.T) {
	t.Parallel()

	slug := rules.Matches(`^[a-z0-9-]+$`, "slug")
	assert.True(t, check(t, slug, "my-post-1"))
	assert.False(t, check(t, slug, "My Post"))

	assert.True(t, check(t, rules.NotMatches(`\d`, "digit-free"), "abc"))
	assert.False(t, check(t, rules.NotMatches(`\d`, "digit-free"), "a1c"))
}

func TestChoiceRules(t *testing.T) {
	t.Parallel()

	role := rules.In("admin", "member", "guest")
	assert.True(t, check(t, role, "member"))
	assert.False(t, check(t, role, "root"))

	assert.True(t, check(t, rules.NotIn("root"), "admin"))
	assert.False(t, check(t, rules.NotIn("root"), "root"))

	assert.True(t, check(t, rules.IsArray(), []any{1}))
	assert.False(t, check(t, rules.IsArray(), "1"))
	assert.True(t, check(t, rules.ArrayLength(1, 2), []any{1, 2}))
	assert.False(t, check(t, rules.ArrayLength(1, 2), []any{1, 2, 3}))
}

func TestRulesInsideChain(t *testing.T) {
	t.Parallel()

	c := chain.NewBuilder("email").
		Add(rules.Required()).
		Bail().
		Add(rules.IsEmail()).
		MustBuild()

	results := c.Evaluate(context.Background(), map[string]any{"email": "nope"}, chain.Context{})
	require.Len(t, results, 1)
	require.Len(t, results[0].Outcomes, 1)
	out := results[0].Outcomes[0]
	assert.Equal(t, "isEmail", out.Rule)
	assert.Equal(t, "validation.email", out.TranslationKey)
}
