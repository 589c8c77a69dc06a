package example

import (
	"context"
	"slices"
	"time"

	"github.com/specialistvlad/gospec/internal/hook"
	"github.com/specialistvlad/gospec/internal/rank"
)

// Config carries everything the builder captured for one example.
type Config struct {
	ContainerDescriptions []string
	Description           string
	VarInitializers       []*hook.Hook
	BeforeAll             []*hook.Hook
	BeforeEach            []*hook.Hook
	AfterEach             []*hook.Hook
	AfterAll              []*hook.Hook
	Body                  hook.Block
	ExpectedFailure       error
	Timeout               time.Duration
	Rank                  rank.Rank
	Ignored               bool
}

// Example is a compiled example, ready to be executed.
type Example struct {
	containerDescriptions []string
	description           string
	varInitializers       []*hook.Hook
	beforeAll             []*hook.Hook
	beforeEach            []*hook.Hook
	afterEach             []*hook.Hook
	afterAll              []*hook.Hook
	body                  hook.Block
	expectedFailure       error
	timeout               time.Duration
	rank                  rank.Rank
	ignored               bool

	plan  *Plan
	index int
}

// New builds an example. An ignored example keeps its place and its
// description but drops its body, hooks and expectations.
func New(cfg Config) *Example {
	e := &Example{
		containerDescriptions: slices.Clone(cfg.ContainerDescriptions),
		description:           cfg.Description,
		rank:                  cfg.Rank,
		index:                 -1,
	}
	if cfg.Ignored {
		e.ignored = true
		e.body = hook.Noop
		return e
	}

	e.varInitializers = slices.Clone(cfg.VarInitializers)
	e.beforeAll = slices.Clone(cfg.BeforeAll)
	e.beforeEach = slices.Clone(cfg.BeforeEach)
	e.afterEach = slices.Clone(cfg.AfterEach)
	e.afterAll = slices.Clone(cfg.AfterAll)
	e.body = cfg.Body
	if e.body == nil {
		e.body = hook.Noop
	}
	e.expectedFailure = cfg.ExpectedFailure
	e.timeout = cfg.Timeout
	return e
}

// Description is the example's own description.
func (e *Example) Description() string { return e.description }

// ContainerDescriptions lists the descriptions of all enclosing groups, the
// root first.
func (e *Example) ContainerDescriptions() []string {
	return slices.Clone(e.containerDescriptions)
}

// Path is the container descriptions followed by the example description.
func (e *Example) Path() []string {
	return append(e.ContainerDescriptions(), e.description)
}

// Rank is the ordering key the example was declared with.
func (e *Example) Rank() rank.Rank { return e.rank }

// ShouldBeIgnored reports whether the example must be reported as ignored
// instead of being run.
func (e *Example) ShouldBeIgnored() bool { return e.ignored }

// ExpectedFailure is the error the example is expected to fail with, or nil.
// Runners match it with errors.Is.
func (e *Example) ExpectedFailure() error { return e.expectedFailure }

// IsExpectedToFail reports whether an expected failure was declared.
func (e *Example) IsExpectedToFail() bool { return e.expectedFailure != nil }

// Timeout is the time the example is allowed to take, zero when unbounded.
func (e *Example) Timeout() time.Duration { return e.timeout }

// ShouldFailOnTimeout reports whether a timeout was declared.
func (e *Example) ShouldFailOnTimeout() bool { return e.timeout > 0 }

// VarInitializers returns the fixture initializers, outer scope first.
func (e *Example) VarInitializers() []*hook.Hook { return slices.Clone(e.varInitializers) }

// BeforeAllHooks returns the before-all hooks, outermost group first.
func (e *Example) BeforeAllHooks() []*hook.Hook { return slices.Clone(e.beforeAll) }

// BeforeEachHooks returns the before-each hooks, outermost group first.
func (e *Example) BeforeEachHooks() []*hook.Hook { return slices.Clone(e.beforeEach) }

// AfterEachHooks returns the after-each hooks, innermost group first.
func (e *Example) AfterEachHooks() []*hook.Hook { return slices.Clone(e.afterEach) }

// AfterAllHooks returns the after-all hooks, innermost group first.
func (e *Example) AfterAllHooks() []*hook.Hook { return slices.Clone(e.afterAll) }

// Index is the example's position in its plan, -1 before it is planned.
func (e *Example) Index() int { return e.index }

// Previous returns the example right before this one in plan order.
func (e *Example) Previous() *Example {
	if e.plan == nil || e.index <= 0 {
		return nil
	}
	return e.plan.examples[e.index-1]
}

// Next returns the example right after this one in plan order.
func (e *Example) Next() *Example {
	if e.plan == nil || e.index < 0 || e.index+1 >= len(e.plan.examples) {
		return nil
	}
	return e.plan.examples[e.index+1]
}

// Run executes the example and its hooks. The first error aborts the
// sequence and is returned unchanged; panics are not recovered.
func (e *Example) Run(ctx context.Context) error {
	if e.ignored {
		return nil
	}
	if err := hook.RunAll(ctx, e.varInitializers); err != nil {
		return err
	}
	if err := e.runBeforeAllHooks(ctx); err != nil {
		return err
	}
	if err := hook.RunAll(ctx, e.beforeEach); err != nil {
		return err
	}
	if err := e.body(ctx); err != nil {
		return err
	}
	if err := hook.RunAll(ctx, e.afterEach); err != nil {
		return err
	}
	return e.runAfterAllHooks(ctx)
}

func (e *Example) runBeforeAllHooks(ctx context.Context) error {
	prev := e.Previous()
	if prev == nil {
		return hook.RunAll(ctx, e.beforeAll)
	}
	for _, h := range e.beforeAll {
		if slices.Contains(prev.beforeAll, h) {
			continue
		}
		if err := h.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (e *Example) runAfterAllHooks(ctx context.Context) error {
	next := e.Next()
	if next == nil {
		return hook.RunAll(ctx, e.afterAll)
	}
	for _, h := range e.afterAll {
		if slices.Contains(next.afterAll, h) {
			continue
		}
		if err := h.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}
