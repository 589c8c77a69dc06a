package spec

import (
	"context"
	"time"

	"github.com/specialistvlad/gospec/internal/builder"
	"github.com/specialistvlad/gospec/internal/focus"
	"github.com/specialistvlad/gospec/internal/hook"
	"github.com/specialistvlad/gospec/internal/session"
)

// Block is the body of an example or a hook. A non-nil error fails the
// example.
type Block = hook.Block

// Body declares the contents of a group.
type Body = func(ctx context.Context)

// Describe declares a group.
func Describe(ctx context.Context, description string, body Body) {
	session.Group(ctx, "describe", description, focus.Default, body)
}

// FDescribe declares a focused group.
func FDescribe(ctx context.Context, description string, body Body) {
	session.Group(ctx, "fdescribe", description, focus.Focused, body)
}

// XDescribe declares an ignored group.
func XDescribe(ctx context.Context, description string, body Body) {
	session.Group(ctx, "xdescribe", description, focus.Ignored, body)
}

// Context is an alias of Describe that reads better for groups describing a
// situation.
func Context(ctx context.Context, description string, body Body) {
	session.Group(ctx, "context", description, focus.Default, body)
}

// FContext declares a focused group.
func FContext(ctx context.Context, description string, body Body) {
	session.Group(ctx, "fcontext", description, focus.Focused, body)
}

// XContext declares an ignored group.
func XContext(ctx context.Context, description string, body Body) {
	session.Group(ctx, "xcontext", description, focus.Ignored, body)
}

// BeforeAll runs block once before the examples of the enclosing group.
func BeforeAll(ctx context.Context, block Block) {
	session.Hook(ctx, "beforeAll", hook.BeforeAll, block, hook.Caller(1))
}

// BeforeEach runs block before every example of the enclosing group.
func BeforeEach(ctx context.Context, block Block) {
	session.Hook(ctx, "beforeEach", hook.BeforeEach, block, hook.Caller(1))
}

// AfterEach runs block after every example of the enclosing group.
func AfterEach(ctx context.Context, block Block) {
	session.Hook(ctx, "afterEach", hook.AfterEach, block, hook.Caller(1))
}

// AfterAll runs block once after the examples of the enclosing group.
func AfterAll(ctx context.Context, block Block) {
	session.Hook(ctx, "afterAll", hook.AfterAll, block, hook.Caller(1))
}

// ExampleOption adds an expectation to an example.
type ExampleOption func(*builder.ExampleConfig)

// Expect declares that the example must fail with an error matching target
// under errors.Is.
func Expect(target error) ExampleOption {
	return func(cfg *builder.ExampleConfig) {
		cfg.ExpectedFailure = target
	}
}

// Timeout bounds how long the example may take.
func Timeout(d time.Duration) ExampleOption {
	return func(cfg *builder.ExampleConfig) {
		cfg.Timeout = d
	}
}

// It declares an example.
func It(ctx context.Context, description string, body Block, opts ...ExampleOption) {
	declareExample(ctx, "it", description, focus.Default, body, opts)
}

// FIt declares a focused example.
func FIt(ctx context.Context, description string, body Block, opts ...ExampleOption) {
	declareExample(ctx, "fit", description, focus.Focused, body, opts)
}

// XIt declares an ignored example.
func XIt(ctx context.Context, description string, body Block, opts ...ExampleOption) {
	declareExample(ctx, "xit", description, focus.Ignored, body, opts)
}

func declareExample(ctx context.Context, call, description string, marker focus.Marker, body Block, opts []ExampleOption) {
	cfg := builder.ExampleConfig{Description: description, Marker: marker}
	for _, opt := range opts {
		opt(&cfg)
	}
	session.Example(ctx, call, cfg, body)
}
