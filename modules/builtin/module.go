// Package builtin registers the handlers every spec file can use without
// registering Go code of its own.
package builtin

import (
	"context"
	"errors"

	"github.com/specialistvlad/gospec/internal/handlers"
)

// ErrFailure is returned by the "fail" block and registered as the "failure"
// error target, so spec files can declare examples expected to fail.
var ErrFailure = errors.New("builtin failure")

// Module implements the handlers.Module interface for this package.
type Module struct{}

// Fail always fails with ErrFailure.
func Fail(context.Context) error {
	return ErrFailure
}

// Panic always panics.
func Panic(context.Context) error {
	panic("builtin panic")
}

// WaitForCancel blocks until the example context is done, which only happens
// when the example has a timeout.
func WaitForCancel(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

// Noop does nothing.
func Noop(context.Context) error {
	return nil
}

// Register registers the builtin handlers.
func (m *Module) Register(h *handlers.Handlers) {
	h.RegisterBlock("noop", Noop)
	h.RegisterBlock("fail", Fail)
	h.RegisterBlock("panic", Panic)
	h.RegisterBlock("wait_for_cancel", WaitForCancel)
	h.RegisterError("failure", ErrFailure)
}
