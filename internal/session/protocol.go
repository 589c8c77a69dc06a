package session

import (
	"context"

	"github.com/specialistvlad/gospec/internal/builder"
	"github.com/specialistvlad/gospec/internal/focus"
	"github.com/specialistvlad/gospec/internal/hook"
)

// The helpers below are what the DSL and the spec-file translator call. They
// report failures by panicking with the error value; the compiler recovers
// it and returns it unchanged.

// Group declares a group and runs body to collect its contents.
func Group(ctx context.Context, call, description string, marker focus.Marker, body func(ctx context.Context)) {
	s := mustCurrent(ctx, call)
	must(s.builder.StartGroup(description, marker))
	if body != nil {
		body(ctx)
	}
	must(s.builder.EndGroup())
}

// Hook attaches a hook of the given kind to the current group.
func Hook(ctx context.Context, call string, kind hook.Kind, block hook.Block, site string) {
	s := mustCurrent(ctx, call)
	var err error
	switch kind {
	case hook.BeforeAll:
		err = s.builder.BeforeAll(block, site)
	case hook.BeforeEach:
		err = s.builder.BeforeEach(block, site)
	case hook.AfterEach:
		err = s.builder.AfterEach(block, site)
	case hook.AfterAll:
		err = s.builder.AfterAll(block, site)
	case hook.Let:
		err = s.builder.Let(block, site)
	}
	must(err)
}

// Let attaches a var initializer to the current group.
func Let(ctx context.Context, call string, block hook.Block, site string) {
	Hook(ctx, call, hook.Let, block, site)
}

// Example declares an example in the current group.
func Example(ctx context.Context, call string, cfg builder.ExampleConfig, body hook.Block) {
	s := mustCurrent(ctx, call)
	must(s.builder.Example(cfg, body))
}

func mustCurrent(ctx context.Context, call string) *Session {
	s, err := Current(ctx, call)
	must(err)
	return s
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
