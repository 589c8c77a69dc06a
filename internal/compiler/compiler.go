// Package compiler runs declaration scripts inside a fresh registration
// session and turns what they declare into example plans.
package compiler

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/gospec/internal/builder"
	"github.com/specialistvlad/gospec/internal/ctxlog"
	"github.com/specialistvlad/gospec/internal/example"
	"github.com/specialistvlad/gospec/internal/focus"
	"github.com/specialistvlad/gospec/internal/rank"
	"github.com/specialistvlad/gospec/internal/session"
	"github.com/specialistvlad/gospec/internal/specerr"
	"golang.org/x/sync/errgroup"
)

// Script is a declaration script. It declares groups, hooks and examples
// through the context it receives.
type Script func(ctx context.Context)

// Unit pairs a script with the name of the spec it declares.
type Unit struct {
	Name   string
	Script Script
	// Marker is the marker of the root group.
	Marker focus.Marker
}

type settings struct {
	order      rank.Order
	rootMarker focus.Marker
}

// Option configures a compilation.
type Option func(*settings)

// WithOrder sets the order examples are ranked in.
func WithOrder(order rank.Order) Option {
	return func(s *settings) {
		s.order = order
	}
}

// WithSeed shuffles siblings with the given seed. Zero keeps declaration
// order.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		if seed == 0 {
			s.order = rank.DefinedOrder()
			return
		}
		s.order = rank.RandomOrder(seed)
	}
}

// WithRootMarker focuses or ignores the root group.
func WithRootMarker(marker focus.Marker) Option {
	return func(s *settings) {
		s.rootMarker = marker
	}
}

// Compile runs script once inside a new session and returns the resulting
// plan. The script runs inside a root group named name, so hooks and
// examples can be declared at the top level. The session is always torn
// down before Compile returns.
//
// Declaration errors (duplicate siblings, declarations outside a session) are
// returned as they are. Anything else the script panics with, and a nil
// script, is reported as a *specerr.SpecInitializationFailedError.
func Compile(ctx context.Context, name string, script Script, opts ...Option) (plan *example.Plan, err error) {
	if script == nil {
		return nil, &specerr.SpecInitializationFailedError{Spec: name, Cause: errors.New("declaration script is nil")}
	}

	cfg := settings{order: rank.DefinedOrder()}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, s, err := session.Begin(ctx, name, builder.WithOrder(cfg.order))
	if err != nil {
		return nil, err
	}
	defer s.End()

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Compiling spec.", "order", cfg.order.String())

	b := s.Builder()
	if err := b.StartGroup(name, cfg.rootMarker); err != nil {
		return nil, err
	}
	if err := evaluate(ctx, name, script); err != nil {
		logger.Debug("Spec declaration failed.", "error", err)
		return nil, err
	}
	// Groups opened by goroutines the script left running.
	if open := b.Depth(); open != 1 {
		return nil, &specerr.UnbalancedGroupError{Op: "end of script", Open: open - 1}
	}
	if err := b.EndGroup(); err != nil {
		return nil, err
	}

	plan, err = s.Build(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("Spec compiled.", "examples", plan.Len())
	return plan, nil
}

// evaluate runs the script and converts a panic into an error.
func evaluate(ctx context.Context, name string, script Script) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if rerr, ok := r.(error); ok {
			if specerr.IsCompilerError(rerr) {
				err = rerr
				return
			}
			err = &specerr.SpecInitializationFailedError{Spec: name, Cause: rerr}
			return
		}
		err = &specerr.SpecInitializationFailedError{Spec: name, Cause: fmt.Errorf("panic: %v", r)}
	}()

	script(ctx)
	return nil
}

// CompileAll compiles every unit concurrently, each in its own session, and
// returns the plans in input order. The first failure cancels nothing that
// already runs but is the error returned.
func CompileAll(ctx context.Context, units []Unit, opts ...Option) ([]*example.Plan, error) {
	plans := make([]*example.Plan, len(units))

	g, gCtx := errgroup.WithContext(ctx)
	for i, u := range units {
		g.Go(func() error {
			unitOpts := append([]Option{WithRootMarker(u.Marker)}, opts...)
			plan, err := Compile(gCtx, u.Name, u.Script, unitOpts...)
			if err != nil {
				return fmt.Errorf("compiling '%s': %w", u.Name, err)
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}
