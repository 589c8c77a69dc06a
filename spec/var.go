package spec

import (
	"context"
	"sync"

	"github.com/specialistvlad/gospec/internal/hook"
	"github.com/specialistvlad/gospec/internal/session"
)

// Var is a slot shared between the hooks and the body of an example.
type Var[T any] struct {
	mu    sync.RWMutex
	value T
}

// Get returns the current value.
func (v *Var[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set replaces the current value and returns it.
func (v *Var[T]) Set(value T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = value
	return value
}

// Let resets v with init before every example of the enclosing group, ahead
// of any hook. Initializers of outer groups run first.
func Let[T any](ctx context.Context, v *Var[T], init func(ctx context.Context) (T, error)) {
	block := func(ctx context.Context) error {
		var zero T
		if init == nil {
			v.Set(zero)
			return nil
		}
		value, err := init(ctx)
		if err != nil {
			return err
		}
		v.Set(value)
		return nil
	}
	session.Let(ctx, "let", block, hook.Caller(1))
}
