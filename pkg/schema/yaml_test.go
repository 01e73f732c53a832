package schema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldchain/fieldchain/pkg/chain"
	"github.com/fieldchain/fieldchain/pkg/schema"
)

const signupSchema = `
email:
  required: true
  normalizeEmail: true
  isEmail: true
password:
  bail: true
  notEmpty: true
  isLength:
    min: 8
age:
  optional: true
  isInt: true
items.*.price:
  isNumeric: true
  min: 0
`

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("preserves declaration order", func(t *testing.T) {
		s, err := schema.ParseYAML([]byte(signupSchema))
		require.NoError(t, err)
		entries := s.Entries()
		require.Len(t, entries, 4)
		assert.Equal(t, "email", entries[0].Path)
		assert.Equal(t, "password", entries[1].Path)
		assert.Equal(t, "age", entries[2].Path)
		assert.Equal(t, "items.*.price", entries[3].Path)
	})

	t.Run("compiles and validates end to end", func(t *testing.T) {
		chains, err := schema.CompileYAML([]byte(signupSchema))
		require.NoError(t, err)
		require.Len(t, chains, 4)

		doc := map[string]any{
			"email":    "  User@Example.COM ",
			"password": "hunter2",
			"items":    []any{map[string]any{"price": 3}},
		}

		var outcomes []chain.Outcome
		for _, c := range chains {
			for _, res := range c.Evaluate(context.Background(), doc, chain.Context{}) {
				outcomes = append(outcomes, res.Outcomes...)
			}
		}
		// Email normalizes then passes; password is too short; absent age
		// is optional; the single item price is fine.
		require.Len(t, outcomes, 1)
		assert.Equal(t, "password", outcomes[0].Path)
		assert.Equal(t, "isLength", outcomes[0].Rule)
	})

	t.Run("rejects non-mapping document", func(t *testing.T) {
		_, err := schema.ParseYAML([]byte("- just\n- a\n- list\n"))
		assert.ErrorIs(t, err, schema.ErrBadSchema)
	})

	t.Run("rejects scalar entry", func(t *testing.T) {
		_, err := schema.ParseYAML([]byte("email: yes\n"))
		var cerr *schema.CompilationError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "email", cerr.Path)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		_, err := schema.ParseYAML([]byte("a: [unclosed"))
		assert.ErrorIs(t, err, schema.ErrBadSchema)
	})
}
