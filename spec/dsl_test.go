package spec

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errExpected = errors.New("expected")

func noop(context.Context) error { return nil }

func sampleSpec(ctx context.Context) {
	It(ctx, "block 1", noop)
	It(ctx, "block 2", noop, Expect(errExpected))
	Context(ctx, "context 1", func(ctx context.Context) {
		It(ctx, "block 1", noop, Timeout(time.Second))
		Describe(ctx, "describe 1", func(ctx context.Context) {
			It(ctx, "block 1", noop)
		})
	})
}

func examplePaths(plan *Plan) [][]string {
	var out [][]string
	for _, e := range plan.Examples() {
		out = append(out, e.Path())
	}
	return out
}

func TestCompile_EmptySpec(t *testing.T) {
	plan, err := Compile(context.Background(), "Empty", func(context.Context) {})
	require.NoError(t, err)
	assert.Equal(t, 0, plan.Len())
}

func TestCompile_ComposesDescriptionsFromContainers(t *testing.T) {
	plan, err := Compile(context.Background(), "Sample", sampleSpec)
	require.NoError(t, err)

	want := [][]string{
		{"Sample", "block 1"},
		{"Sample", "block 2"},
		{"Sample", "context 1", "block 1"},
		{"Sample", "context 1", "describe 1", "block 1"},
	}
	if diff := cmp.Diff(want, examplePaths(plan)); diff != "" {
		t.Errorf("example paths mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_CarriesExpectations(t *testing.T) {
	plan, err := Compile(context.Background(), "Sample", sampleSpec)
	require.NoError(t, err)

	assert.False(t, plan.At(0).IsExpectedToFail())
	assert.True(t, plan.At(1).IsExpectedToFail())
	assert.ErrorIs(t, plan.At(1).ExpectedFailure(), errExpected)
	assert.True(t, plan.At(2).ShouldFailOnTimeout())
	assert.Equal(t, time.Second, plan.At(2).Timeout())
}

func TestCompile_FailsWhenScriptPanics(t *testing.T) {
	_, err := Compile(context.Background(), "Broken", func(context.Context) {
		panic(errors.New("cannot evaluate"))
	})

	var initErr *SpecInitializationFailedError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "Broken", initErr.Spec)
}

func TestDSL_OutsideCompilation(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		call string
		fn   func()
	}{
		{"describe", func() { Describe(ctx, "d", nil) }},
		{"fdescribe", func() { FDescribe(ctx, "d", nil) }},
		{"xdescribe", func() { XDescribe(ctx, "d", nil) }},
		{"context", func() { Context(ctx, "c", nil) }},
		{"fcontext", func() { FContext(ctx, "c", nil) }},
		{"xcontext", func() { XContext(ctx, "c", nil) }},
		{"beforeAll", func() { BeforeAll(ctx, noop) }},
		{"beforeEach", func() { BeforeEach(ctx, noop) }},
		{"afterEach", func() { AfterEach(ctx, noop) }},
		{"afterAll", func() { AfterAll(ctx, noop) }},
		{"it", func() { It(ctx, "i", noop) }},
		{"fit", func() { FIt(ctx, "i", noop) }},
		{"xit", func() { XIt(ctx, "i", noop) }},
		{"let", func() { Let(ctx, &Var[int]{}, nil) }},
	}
	for _, tc := range tests {
		t.Run(tc.call, func(t *testing.T) {
			assert.PanicsWithError(t,
				fmt.Sprintf("'%s' should not be invoked from outside a spec definition", tc.call),
				tc.fn)
		})
	}
}

func TestCompile_DoesNotAllowReplacingBlocks(t *testing.T) {
	tests := []struct {
		name   string
		script Script
	}{
		{"describe", func(ctx context.Context) {
			Describe(ctx, "dup", nil)
			Describe(ctx, "dup", nil)
		}},
		{"context", func(ctx context.Context) {
			Context(ctx, "dup", nil)
			Context(ctx, "dup", nil)
		}},
		{"it", func(ctx context.Context) {
			It(ctx, "dup", noop)
			FIt(ctx, "dup", noop)
		}},
		{"it with expectation", func(ctx context.Context) {
			It(ctx, "dup", noop, Expect(errExpected))
			It(ctx, "dup", noop, Expect(errExpected))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(context.Background(), "Sample", tc.script)
			var dup *BlockAlreadyDefinedError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, "dup", dup.Description)
		})
	}
}

func TestCompile_ForgetsLastSpec(t *testing.T) {
	t.Run("after success", func(t *testing.T) {
		var captured context.Context
		_, err := Compile(context.Background(), "Sample", func(ctx context.Context) {
			captured = ctx
			sampleSpec(ctx)
		})
		require.NoError(t, err)
		assert.Panics(t, func() { Describe(captured, "late", nil) })
	})

	t.Run("after failure", func(t *testing.T) {
		var captured context.Context
		_, err := Compile(context.Background(), "Broken", func(ctx context.Context) {
			captured = ctx
			panic("broken")
		})
		require.Error(t, err)
		assert.Panics(t, func() { It(captured, "late", noop) })

		plan, err := Compile(context.Background(), "Sample", sampleSpec)
		require.NoError(t, err)
		assert.Equal(t, 4, plan.Len())
	})
}

func TestCompile_ConcurrentCompilations(t *testing.T) {
	const workers = 10

	var wg sync.WaitGroup
	got := make([][][]string, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			plan, err := Compile(context.Background(), "Sample", sampleSpec)
			if err == nil {
				got[i] = examplePaths(plan)
			}
		}()
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.NotNil(t, got[i])
		assert.Equal(t, got[0], got[i])
	}
}

func TestCompile_FocusAndIgnore(t *testing.T) {
	plan, err := Compile(context.Background(), "Focus", func(ctx context.Context) {
		It(ctx, "plain", noop)
		XIt(ctx, "ignored", noop)
		FContext(ctx, "focused", func(ctx context.Context) {
			It(ctx, "inside", noop)
			XIt(ctx, "ignored inside", noop)
		})
		FIt(ctx, "focused example", noop)
	})
	require.NoError(t, err)

	ignored := make(map[string]bool)
	for _, e := range plan.Examples() {
		ignored[e.Description()] = e.ShouldBeIgnored()
	}
	assert.Equal(t, map[string]bool{
		"plain":           true,
		"ignored":         true,
		"inside":          false,
		"ignored inside":  false,
		"focused example": false,
	}, ignored)
}

func TestCompileAll(t *testing.T) {
	plans, err := CompileAll(context.Background(), []Unit{
		{Name: "Sample", Script: sampleSpec},
		{Name: "Empty", Script: func(context.Context) {}},
	}, WithSeed(3))
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, 4, plans[0].Len())
	assert.Equal(t, 0, plans[1].Len())
}

func TestCompile_TopLevelDeclarationsBelongToRoot(t *testing.T) {
	var calls []string
	plan, err := Compile(context.Background(), "Root", func(ctx context.Context) {
		BeforeEach(ctx, func(context.Context) error {
			calls = append(calls, "A")
			return nil
		})
		It(ctx, "x", func(context.Context) error {
			calls = append(calls, "B")
			return nil
		})
	})
	require.NoError(t, err)
	require.Equal(t, 1, plan.Len())

	x := plan.At(0)
	assert.Equal(t, []string{"Root"}, x.ContainerDescriptions())
	require.NoError(t, x.Run(context.Background()))
	assert.Equal(t, []string{"A", "B"}, calls)
}

func TestCompile_RootMarker(t *testing.T) {
	plan, err := Compile(context.Background(), "Sample", sampleSpec, WithRootMarker(Ignored))
	require.NoError(t, err)
	assert.Equal(t, plan.Len(), plan.Ignored())

	plans, err := CompileAll(context.Background(), []Unit{
		{Name: "Sample", Script: sampleSpec, Marker: Ignored},
		{Name: "Focused", Script: func(ctx context.Context) { It(ctx, "only", noop) }, Marker: Focused},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, plans[0].Ignored())
	assert.Equal(t, 0, plans[1].Ignored())
}
