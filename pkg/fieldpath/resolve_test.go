package fieldpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldchain/fieldchain/pkg/fieldpath"
)

func doc() map[string]any {
	return map[string]any{
		"name": "alice",
		"address": map[string]any{
			"city": "Lisbon",
			"zip":  "1000-001",
		},
		"items": []any{
			map[string]any{"price": -1},
			map[string]any{"price": 5},
		},
		"tags": []any{"go", "web"},
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("resolves top-level key", func(t *testing.T) {
		located := fieldpath.Resolve(doc(), fieldpath.MustParse("name"))
		require.Len(t, located, 1)
		assert.Equal(t, "alice", located[0].Value)
		assert.False(t, located[0].Missing)
	})

	t.Run("resolves nested key", func(t *testing.T) {
		located := fieldpath.Resolve(doc(), fieldpath.MustParse("address.city"))
		require.Len(t, located, 1)
		assert.Equal(t, "Lisbon", located[0].Value)
		assert.Equal(t, "address.city", located[0].Path.String())
	})

	t.Run("resolves array index", func(t *testing.T) {
		located := fieldpath.Resolve(doc(), fieldpath.MustParse("tags.1"))
		require.Len(t, located, 1)
		assert.Equal(t, "web", located[0].Value)
	})

	t.Run("expands wildcard over array", func(t *testing.T) {
		located := fieldpath.Resolve(doc(), fieldpath.MustParse("items.*.price"))
		require.Len(t, located, 2)
		assert.Equal(t, "items.0.price", located[0].Path.String())
		assert.Equal(t, -1, located[0].Value)
		assert.Equal(t, "items.1.price", located[1].Path.String())
		assert.Equal(t, 5, located[1].Value)
	})

	t.Run("missing key yields absent entry with full path", func(t *testing.T) {
		located := fieldpath.Resolve(doc(), fieldpath.MustParse("address.country"))
		require.Len(t, located, 1)
		assert.True(t, located[0].Missing)
		assert.Nil(t, located[0].Value)
		assert.Equal(t, "address.country", located[0].Path.String())
	})

	t.Run("missing deep key yields absent entry", func(t *testing.T) {
		located := fieldpath.Resolve(map[string]any{}, fieldpath.MustParse("a.b.c"))
		require.Len(t, located, 1)
		assert.True(t, located[0].Missing)
		assert.Equal(t, "a.b.c", located[0].Path.String())
	})

	t.Run("wildcard over non-array matches nothing", func(t *testing.T) {
		located := fieldpath.Resolve(doc(), fieldpath.MustParse("address.*.x"))
		assert.Empty(t, located)
	})

	t.Run("missing node before wildcard matches nothing", func(t *testing.T) {
		located := fieldpath.Resolve(map[string]any{}, fieldpath.MustParse("items.*.price"))
		assert.Empty(t, located)
	})

	t.Run("out-of-range index is absent", func(t *testing.T) {
		located := fieldpath.Resolve(doc(), fieldpath.MustParse("tags.5"))
		require.Len(t, located, 1)
		assert.True(t, located[0].Missing)
	})

	t.Run("index falls back to string key on maps", func(t *testing.T) {
		d := map[string]any{"versions": map[string]any{"0": "v0"}}
		located := fieldpath.Resolve(d, fieldpath.MustParse("versions.0"))
		require.Len(t, located, 1)
		assert.Equal(t, "v0", located[0].Value)
	})

	t.Run("does not mutate the document", func(t *testing.T) {
		d := doc()
		fieldpath.Resolve(d, fieldpath.MustParse("a.b.c"))
		fieldpath.Resolve(d, fieldpath.MustParse("items.*.price"))
		assert.Equal(t, doc(), d)
	})
}

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("overwrites existing value", func(t *testing.T) {
		d := doc()
		require.NoError(t, fieldpath.Set(d, fieldpath.MustParse("name"), "bob"))
		assert.Equal(t, "bob", d["name"])
	})

	t.Run("writes into array element", func(t *testing.T) {
		d := doc()
		require.NoError(t, fieldpath.Set(d, fieldpath.MustParse("items.0.price"), 10))
		located := fieldpath.Resolve(d, fieldpath.MustParse("items.0.price"))
		require.Len(t, located, 1)
		assert.Equal(t, 10, located[0].Value)
	})

	t.Run("creates intermediate maps", func(t *testing.T) {
		d := map[string]any{}
		require.NoError(t, fieldpath.Set(d, fieldpath.MustParse("a.b.c"), 1))
		located := fieldpath.Resolve(d, fieldpath.MustParse("a.b.c"))
		require.Len(t, located, 1)
		assert.Equal(t, 1, located[0].Value)
	})

	t.Run("rejects wildcard path", func(t *testing.T) {
		err := fieldpath.Set(doc(), fieldpath.MustParse("items.*.price"), 0)
		assert.ErrorIs(t, err, fieldpath.ErrUnsettablePath)
	})

	t.Run("rejects out-of-range index", func(t *testing.T) {
		err := fieldpath.Set(doc(), fieldpath.MustParse("tags.9"), "x")
		assert.ErrorIs(t, err, fieldpath.ErrUnsettablePath)
	})

	t.Run("rejects writing through a scalar", func(t *testing.T) {
		err := fieldpath.Set(doc(), fieldpath.MustParse("name.first"), "x")
		assert.ErrorIs(t, err, fieldpath.ErrUnsettablePath)
	})
}
