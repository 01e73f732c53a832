package runner_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldchain/fieldchain/pkg/chain"
	"github.com/fieldchain/fieldchain/pkg/rules"
	"github.com/fieldchain/fieldchain/pkg/runner"
	"github.com/fieldchain/fieldchain/pkg/sanitize"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no chains yields empty report and untouched document", func(t *testing.T) {
		doc := map[string]any{"name": "alice"}
		report, err := runner.Run(context.Background(), doc, nil)
		require.NoError(t, err)
		assert.True(t, report.IsEmpty())
		assert.Equal(t, map[string]any{"name": "alice"}, doc)
	})

	t.Run("aggregates outcomes across chains in declaration order", func(t *testing.T) {
		chains := []chain.Chain{
			chain.NewBuilder("email").Add(rules.IsEmail()).MustBuild(),
			chain.NewBuilder("age").Add(rules.IsInt()).MustBuild(),
		}
		doc := map[string]any{"email": "nope", "age": "abc"}
		report, err := runner.Run(context.Background(), doc, chains)
		require.NoError(t, err)
		require.Equal(t, 2, report.Len())
		list := report.List()
		assert.Equal(t, "email", list[0].Path)
		assert.Equal(t, "age", list[1].Path)
	})

	t.Run("eager commit applies sanitization even on failure", func(t *testing.T) {
		c := chain.NewBuilder("nick").
			Add(sanitize.Trim(), rules.MinLen(3)).
			MustBuild()
		doc := map[string]any{"nick": "  ab  "}
		report, err := runner.Run(context.Background(), doc, []chain.Chain{c})
		require.NoError(t, err)
		require.Equal(t, 1, report.Len())
		assert.Equal(t, "ab", doc["nick"], "trim committed despite the length failure")
	})

	t.Run("discard policy withholds sanitization on failure", func(t *testing.T) {
		c := chain.NewBuilder("nick").
			Add(sanitize.Trim(), rules.MinLen(3)).
			MustBuild()
		doc := map[string]any{"nick": "  ab  "}
		_, err := runner.Run(context.Background(), doc, []chain.Chain{c},
			runner.WithCommitPolicy(runner.CommitDiscardOnFailure))
		require.NoError(t, err)
		assert.Equal(t, "  ab  ", doc["nick"])
	})

	t.Run("discard policy still commits passing fields", func(t *testing.T) {
		c := chain.NewBuilder("nick").
			Add(sanitize.Trim(), rules.MinLen(3)).
			MustBuild()
		doc := map[string]any{"nick": "  abcd  "}
		report, err := runner.Run(context.Background(), doc, []chain.Chain{c},
			runner.WithCommitPolicy(runner.CommitDiscardOnFailure))
		require.NoError(t, err)
		assert.True(t, report.IsEmpty())
		assert.Equal(t, "abcd", doc["nick"])
	})

	t.Run("wildcard sanitization commits per element", func(t *testing.T) {
		c := chain.NewBuilder("tags.*").
			Add(sanitize.Trim(), sanitize.ToLower()).
			MustBuild()
		doc := map[string]any{"tags": []any{" Go ", " WEB"}}
		_, err := runner.Run(context.Background(), doc, []chain.Chain{c})
		require.NoError(t, err)
		assert.Equal(t, []any{"go", "web"}, doc["tags"])
	})

	t.Run("later chain wins overlapping commits", func(t *testing.T) {
		chains := []chain.Chain{
			chain.NewBuilder("name").Add(sanitize.ToUpper()).MustBuild(),
			chain.NewBuilder("name").Add(sanitize.ToLower()).MustBuild(),
		}
		doc := map[string]any{"name": "Alice"}
		_, err := runner.Run(context.Background(), doc, chains)
		require.NoError(t, err)
		assert.Equal(t, "alice", doc["name"])
	})

	t.Run("chains do not observe each other's sanitization", func(t *testing.T) {
		chains := []chain.Chain{
			chain.NewBuilder("name").Add(sanitize.Trim()).MustBuild(),
			// Judges the original padded value, not the trimmed one.
			chain.NewBuilder("name").Add(rules.MinLen(7)).MustBuild(),
		}
		doc := map[string]any{"name": " alice "}
		report, err := runner.Run(context.Background(), doc, chains)
		require.NoError(t, err)
		assert.True(t, report.IsEmpty())
		assert.Equal(t, "alice", doc["name"])
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		build := func() []chain.Chain {
			return []chain.Chain{
				chain.NewBuilder("a").Add(rules.NotEmpty()).MustBuild(),
				chain.NewBuilder("b").Add(rules.NotEmpty(), rules.MinLen(2)).MustBuild(),
				chain.NewBuilder("c").Add(rules.IsInt()).MustBuild(),
			}
		}
		doc := func() map[string]any {
			return map[string]any{"a": "", "b": "", "c": "x"}
		}

		first, err := runner.Run(context.Background(), doc(), build())
		require.NoError(t, err)
		second, err := runner.Run(context.Background(), doc(), build())
		require.NoError(t, err)
		assert.Equal(t, first.List(), second.List())
	})
}

func TestRunDeadline(t *testing.T) {
	t.Parallel()

	t.Run("expired deadline fails wholesale", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		slow := chain.NewBuilder("email").
			Custom(func(ctx context.Context, _ any, _ *chain.Context) error {
				select {
				case <-release:
				case <-ctx.Done():
				}
				return nil
			}).
			MustBuild()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		report, err := runner.Run(ctx, map[string]any{"email": "a@b.c"}, []chain.Chain{slow})
		assert.ErrorIs(t, err, runner.ErrRunTimeout)
		assert.Nil(t, report)
	})

	t.Run("cancellation surfaces the context error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := chain.NewBuilder("name").Add(rules.NotEmpty()).MustBuild()
		report, err := runner.Run(ctx, map[string]any{"name": ""}, []chain.Chain{c})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, report)
	})

	t.Run("timed-out run commits nothing", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		c := chain.NewBuilder("nick").
			Add(sanitize.Trim()).
			Custom(func(ctx context.Context, _ any, _ *chain.Context) error {
				select {
				case <-release:
				case <-ctx.Done():
				}
				return nil
			}).
			MustBuild()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		doc := map[string]any{"nick": "  ab  "}
		_, err := runner.Run(ctx, doc, []chain.Chain{c})
		assert.ErrorIs(t, err, runner.ErrRunTimeout)
		assert.Equal(t, "  ab  ", doc["nick"])
	})
}

func TestReport(t *testing.T) {
	t.Parallel()

	chains := []chain.Chain{
		chain.NewBuilder("email").Add(rules.Required(), rules.IsEmail()).MustBuild(),
		chain.NewBuilder("age").Add(rules.IsInt()).MustBuild(),
	}
	doc := map[string]any{"email": "", "age": "x"}
	report, err := runner.Run(context.Background(), doc, chains)
	require.NoError(t, err)

	t.Run("accessors", func(t *testing.T) {
		assert.False(t, report.IsEmpty())
		assert.Equal(t, 3, report.Len())
		assert.True(t, report.Has("email"))
		assert.False(t, report.Has("name"))
		assert.Len(t, report.Get("email"), 2)
		assert.Equal(t, []string{"email", "age"}, report.Fields())
	})

	t.Run("grouping preserves per-path order", func(t *testing.T) {
		grouped := report.ByPath()
		require.Len(t, grouped, 2)
		assert.Equal(t, []string{"field is required", "must be a valid email address"}, grouped["email"])
	})

	t.Run("renders as error", func(t *testing.T) {
		assert.Contains(t, report.Error(), "email: field is required")
	})

	t.Run("nil report is empty", func(t *testing.T) {
		var nilReport *runner.Report
		assert.True(t, nilReport.IsEmpty())
		assert.Empty(t, nilReport.Fields())
	})
}
