// Package session carries the registration context of a compilation through
// context.Context, so nested declaration calls reach the in-progress builder
// without it being passed around explicitly.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/specialistvlad/gospec/internal/builder"
	"github.com/specialistvlad/gospec/internal/ctxlog"
	"github.com/specialistvlad/gospec/internal/example"
	"github.com/specialistvlad/gospec/internal/specerr"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

var sessionKey = key{}

// Session is one compilation in progress.
type Session struct {
	id      uuid.UUID
	name    string
	builder *builder.Builder

	mu    sync.RWMutex
	ended bool
}

// Begin starts a session named after the spec being compiled and returns a
// context carrying it. It fails when ctx already carries an active session.
func Begin(ctx context.Context, name string, opts ...builder.Option) (context.Context, *Session, error) {
	if s, ok := ctx.Value(sessionKey).(*Session); ok && s.active() {
		return ctx, nil, &specerr.IllegalContextError{Call: "compile"}
	}

	s := &Session{
		id:      uuid.New(),
		name:    name,
		builder: builder.New(opts...),
	}
	logger := ctxlog.FromContext(ctx).With("session_id", s.id.String(), "spec", name)
	logger.Debug("Session started.")

	ctx = ctxlog.WithLogger(ctx, logger)
	return context.WithValue(ctx, sessionKey, s), s, nil
}

// Current returns the active session carried by ctx. call names the
// declaration being attempted and ends up in the error message.
func Current(ctx context.Context, call string) (*Session, error) {
	s, ok := ctx.Value(sessionKey).(*Session)
	if !ok || !s.active() {
		return nil, &specerr.IllegalContextError{Call: call}
	}
	return s, nil
}

// ID identifies the session in log records.
func (s *Session) ID() uuid.UUID { return s.id }

// Name is the name of the spec being compiled.
func (s *Session) Name() string { return s.name }

// Builder exposes the underlying builder.
func (s *Session) Builder() *builder.Builder { return s.builder }

// Build resolves everything declared so far into a plan.
func (s *Session) Build(ctx context.Context) (*example.Plan, error) {
	if !s.active() {
		return nil, &specerr.IllegalContextError{Call: "build"}
	}
	return s.builder.Build(ctx)
}

// End tears the session down. Contexts that carried it stop accepting
// declarations. Calling End more than once is harmless.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = true
}

func (s *Session) active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.ended
}
