package spec

import (
	"context"

	"github.com/specialistvlad/gospec/internal/compiler"
	"github.com/specialistvlad/gospec/internal/example"
	"github.com/specialistvlad/gospec/internal/focus"
)

type (
	// Plan is a compiled spec: its examples in execution order.
	Plan = example.Plan
	// Example is one compiled example.
	Example = example.Example
	// Script declares a spec.
	Script = compiler.Script
	// Unit names a script for CompileAll.
	Unit = compiler.Unit
	// Option configures a compilation.
	Option = compiler.Option
	// Marker focuses or ignores a root group.
	Marker = focus.Marker
)

// Root group markers.
const (
	Focused = focus.Focused
	Ignored = focus.Ignored
)

// WithSeed shuffles sibling declarations deterministically. Zero keeps
// declaration order.
func WithSeed(seed uint64) Option {
	return compiler.WithSeed(seed)
}

// WithRootMarker focuses or ignores the whole spec.
func WithRootMarker(marker Marker) Option {
	return compiler.WithRootMarker(marker)
}

// Compile runs script inside a root group named name and returns the compiled plan.
func Compile(ctx context.Context, name string, script Script, opts ...Option) (*Plan, error) {
	return compiler.Compile(ctx, name, script, opts...)
}

// CompileAll compiles several scripts concurrently and returns their plans in
// input order.
func CompileAll(ctx context.Context, units []Unit, opts ...Option) ([]*Plan, error) {
	return compiler.CompileAll(ctx, units, opts...)
}
