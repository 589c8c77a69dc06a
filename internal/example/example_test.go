package example

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/specialistvlad/gospec/internal/hook"
	"github.com/specialistvlad/gospec/internal/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects the names of the blocks it hands out, in call order.
type recorder struct {
	calls []string
}

func (r *recorder) block(name string) hook.Block {
	return func(context.Context) error {
		r.calls = append(r.calls, name)
		return nil
	}
}

func (r *recorder) hook(kind hook.Kind, name string) *hook.Hook {
	return hook.New(kind, r.block(name), "")
}

func mustPlan(t *testing.T, examples ...*Example) *Plan {
	t.Helper()
	p, err := NewPlan(examples)
	require.NoError(t, err)
	return p
}

func runAll(t *testing.T, p *Plan) {
	t.Helper()
	for _, e := range p.Examples() {
		require.NoError(t, e.Run(context.Background()))
	}
}

func TestNew_Ignored(t *testing.T) {
	rec := &recorder{}
	e := New(Config{
		ContainerDescriptions: []string{"Root"},
		Description:           "skipped",
		BeforeAll:             []*hook.Hook{rec.hook(hook.BeforeAll, "ba")},
		BeforeEach:            []*hook.Hook{rec.hook(hook.BeforeEach, "be")},
		Body:                  rec.block("body"),
		ExpectedFailure:       errors.New("x"),
		Timeout:               time.Second,
		Ignored:               true,
	})
	mustPlan(t, e)

	require.NoError(t, e.Run(context.Background()))
	assert.True(t, e.ShouldBeIgnored())
	assert.Empty(t, rec.calls)
	assert.Empty(t, e.BeforeAllHooks())
	assert.Empty(t, e.BeforeEachHooks())
	assert.False(t, e.IsExpectedToFail())
	assert.False(t, e.ShouldFailOnTimeout())
	assert.Equal(t, []string{"Root", "skipped"}, e.Path())
}

func TestRun_Order(t *testing.T) {
	rec := &recorder{}
	e := New(Config{
		Description:     "x",
		VarInitializers: []*hook.Hook{rec.hook(hook.Let, "let")},
		BeforeAll:       []*hook.Hook{rec.hook(hook.BeforeAll, "ba-outer"), rec.hook(hook.BeforeAll, "ba-inner")},
		BeforeEach:      []*hook.Hook{rec.hook(hook.BeforeEach, "be-outer"), rec.hook(hook.BeforeEach, "be-inner")},
		AfterEach:       []*hook.Hook{rec.hook(hook.AfterEach, "ae-inner"), rec.hook(hook.AfterEach, "ae-outer")},
		AfterAll:        []*hook.Hook{rec.hook(hook.AfterAll, "aa-inner"), rec.hook(hook.AfterAll, "aa-outer")},
		Body:            rec.block("body"),
	})
	mustPlan(t, e)

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, []string{
		"let", "ba-outer", "ba-inner", "be-outer", "be-inner", "body",
		"ae-inner", "ae-outer", "aa-inner", "aa-outer",
	}, rec.calls)
}

func TestRun_ErrorAbortsSequence(t *testing.T) {
	rec := &recorder{}
	boom := errors.New("boom")
	e := New(Config{
		Description: "x",
		BeforeEach:  []*hook.Hook{rec.hook(hook.BeforeEach, "be")},
		Body: func(context.Context) error {
			rec.calls = append(rec.calls, "body")
			return boom
		},
		AfterEach: []*hook.Hook{rec.hook(hook.AfterEach, "ae")},
	})
	mustPlan(t, e)

	err := e.Run(context.Background())
	assert.Same(t, boom, err, "errors propagate unmodified")
	assert.Equal(t, []string{"be", "body"}, rec.calls)
}

func TestRun_PanicPropagates(t *testing.T) {
	e := New(Config{Description: "x", Body: func(context.Context) error { panic("kaboom") }})
	mustPlan(t, e)
	assert.PanicsWithValue(t, "kaboom", func() { _ = e.Run(context.Background()) })
}

func TestRun_OneTimeHooksOncePerContiguousRun(t *testing.T) {
	rec := &recorder{}
	outerBA := rec.hook(hook.BeforeAll, "outer-ba")
	outerAA := rec.hook(hook.AfterAll, "outer-aa")
	innerBA := rec.hook(hook.BeforeAll, "inner-ba")
	innerAA := rec.hook(hook.AfterAll, "inner-aa")

	p := mustPlan(t,
		New(Config{Description: "p", Rank: rank.Of(0, 0), BeforeAll: []*hook.Hook{outerBA}, AfterAll: []*hook.Hook{outerAA}, Body: rec.block("p")}),
		New(Config{Description: "q", Rank: rank.Of(0, 1), BeforeAll: []*hook.Hook{outerBA}, AfterAll: []*hook.Hook{outerAA}, Body: rec.block("q")}),
		New(Config{
			Description: "r", Rank: rank.Of(0, 2, 0),
			BeforeAll: []*hook.Hook{outerBA, innerBA},
			AfterAll:  []*hook.Hook{innerAA, outerAA},
			Body:      rec.block("r"),
		}),
		New(Config{
			Description: "s", Rank: rank.Of(0, 2, 1),
			BeforeAll: []*hook.Hook{outerBA, innerBA},
			AfterAll:  []*hook.Hook{innerAA, outerAA},
			Body:      rec.block("s"),
		}),
	)

	runAll(t, p)
	assert.Equal(t, []string{
		"outer-ba", "p", "q", "inner-ba", "r", "s", "inner-aa", "outer-aa",
	}, rec.calls)
}

func TestRun_IgnoredExampleSplitsRun(t *testing.T) {
	rec := &recorder{}
	ba := rec.hook(hook.BeforeAll, "ba")
	aa := rec.hook(hook.AfterAll, "aa")

	p := mustPlan(t,
		New(Config{Description: "a", Rank: rank.Of(0), BeforeAll: []*hook.Hook{ba}, AfterAll: []*hook.Hook{aa}, Body: rec.block("a")}),
		New(Config{Description: "b", Rank: rank.Of(1), BeforeAll: []*hook.Hook{ba}, AfterAll: []*hook.Hook{aa}, Ignored: true}),
		New(Config{Description: "c", Rank: rank.Of(2), BeforeAll: []*hook.Hook{ba}, AfterAll: []*hook.Hook{aa}, Body: rec.block("c")}),
	)

	runAll(t, p)
	assert.Equal(t, []string{"ba", "a", "aa", "ba", "c", "aa"}, rec.calls)
}

func TestRun_SameBlockDifferentHooks(t *testing.T) {
	rec := &recorder{}
	shared := rec.block("setup")

	p := mustPlan(t,
		New(Config{Description: "a", Rank: rank.Of(0), BeforeAll: []*hook.Hook{hook.New(hook.BeforeAll, shared, "")}}),
		New(Config{Description: "b", Rank: rank.Of(1), BeforeAll: []*hook.Hook{hook.New(hook.BeforeAll, shared, "")}}),
	)

	runAll(t, p)
	assert.Equal(t, []string{"setup", "setup"}, rec.calls, "hooks are shared by declaration, not by block")
}
