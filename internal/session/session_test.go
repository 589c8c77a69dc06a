package session

import (
	"context"
	"testing"

	"github.com/specialistvlad/gospec/internal/builder"
	"github.com/specialistvlad/gospec/internal/focus"
	"github.com/specialistvlad/gospec/internal/hook"
	"github.com/specialistvlad/gospec/internal/specerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCurrent_OutsideSession(t *testing.T) {
	_, err := Current(context.Background(), "it")

	var illegal *specerr.IllegalContextError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, "'it' should not be invoked from outside a spec definition", err.Error())
}

func TestBegin_CurrentAndEnd(t *testing.T) {
	ctx, s, err := Begin(context.Background(), "Calculator")
	require.NoError(t, err)
	assert.Equal(t, "Calculator", s.Name())
	assert.NotEmpty(t, s.ID().String())

	got, err := Current(ctx, "describe")
	require.NoError(t, err)
	assert.Same(t, s, got)

	s.End()
	s.End()

	_, err = Current(ctx, "describe")
	var illegal *specerr.IllegalContextError
	assert.ErrorAs(t, err, &illegal)

	_, err = s.Build(ctx)
	assert.ErrorAs(t, err, &illegal)
}

func TestBegin_Reentrant(t *testing.T) {
	ctx, s, err := Begin(context.Background(), "outer")
	require.NoError(t, err)
	defer s.End()

	_, _, err = Begin(ctx, "inner")
	var illegal *specerr.IllegalContextError
	assert.ErrorAs(t, err, &illegal)
}

func TestBegin_AfterPreviousSessionEnded(t *testing.T) {
	ctx, s, err := Begin(context.Background(), "first")
	require.NoError(t, err)
	s.End()

	_, second, err := Begin(ctx, "second")
	require.NoError(t, err)
	defer second.End()
	assert.NotEqual(t, s.ID(), second.ID())
}

func TestProtocolHelpers(t *testing.T) {
	ctx, s, err := Begin(context.Background(), "root")
	require.NoError(t, err)
	defer s.End()

	Group(ctx, "describe", "root", focus.Default, func(ctx context.Context) {
		Hook(ctx, "beforeEach", hook.BeforeEach, nil, "be")
		Let(ctx, "let", nil, "let")
		Example(ctx, "it", builder.ExampleConfig{Description: "x"}, nil)
	})

	plan, err := s.Build(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, plan.Len())
	e := plan.At(0)
	assert.Equal(t, []string{"root", "x"}, e.Path())
	assert.Len(t, e.BeforeEachHooks(), 1)
	assert.Len(t, e.VarInitializers(), 1)
}

func TestProtocolHelpers_PanicWithErrors(t *testing.T) {
	t.Run("outside session", func(t *testing.T) {
		assert.PanicsWithError(t,
			"'it' should not be invoked from outside a spec definition",
			func() {
				Example(context.Background(), "it", builder.ExampleConfig{Description: "x"}, nil)
			})
	})

	t.Run("duplicate sibling", func(t *testing.T) {
		ctx, s, err := Begin(context.Background(), "dup")
		require.NoError(t, err)
		defer s.End()

		assert.PanicsWithError(t, "'x' block already defined in 'root'", func() {
			Group(ctx, "describe", "root", focus.Default, func(ctx context.Context) {
				Example(ctx, "it", builder.ExampleConfig{Description: "x"}, nil)
				Example(ctx, "it", builder.ExampleConfig{Description: "x"}, nil)
			})
		})
	})
}

func TestSessions_AreIndependentAcrossContexts(t *testing.T) {
	ctxA, a, err := Begin(context.Background(), "A")
	require.NoError(t, err)
	defer a.End()
	ctxB, b, err := Begin(context.Background(), "B")
	require.NoError(t, err)
	defer b.End()

	Group(ctxA, "describe", "A", focus.Default, func(ctx context.Context) {
		Example(ctx, "it", builder.ExampleConfig{Description: "a"}, nil)
	})
	Group(ctxB, "describe", "B", focus.Default, func(ctx context.Context) {
		Example(ctx, "it", builder.ExampleConfig{Description: "b"}, nil)
	})

	planA, err := a.Build(ctxA)
	require.NoError(t, err)
	planB, err := b.Build(ctxB)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "a"}, planA.At(0).Path())
	assert.Equal(t, []string{"B", "b"}, planB.At(0).Path())
}
