// Package handlers maps the names used in spec files to Go code: blocks that
// run as example bodies or hooks, and error targets that examples may be
// expected to fail with.
package handlers

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/specialistvlad/gospec/internal/hook"
)

// Module is implemented by packages that contribute handlers.
type Module interface {
	Register(h *Handlers)
}

// Handlers holds all the registered handlers.
type Handlers struct {
	mu     sync.RWMutex
	blocks map[string]hook.Block
	errs   map[string]error
}

// New creates an empty registry.
func New() *Handlers {
	return &Handlers{
		blocks: make(map[string]hook.Block),
		errs:   make(map[string]error),
	}
}

// Use registers every module.
func (h *Handlers) Use(modules ...Module) *Handlers {
	for _, m := range modules {
		m.Register(h)
	}
	return h
}

// RegisterBlock registers a block under name. Registering a name twice is a
// programming error and panics.
func (h *Handlers) RegisterBlock(name string, block hook.Block) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.blocks[name]; exists {
		panic(fmt.Sprintf("block handler with name '%s' already registered", name))
	}
	if block == nil {
		panic(fmt.Sprintf("block handler '%s' is nil", name))
	}
	slog.Debug("Registering block handler.", "name", name)
	h.blocks[name] = block
}

// RegisterError registers an error target under name.
func (h *Handlers) RegisterError(name string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.errs[name]; exists {
		panic(fmt.Sprintf("error target with name '%s' already registered", name))
	}
	if err == nil {
		panic(fmt.Sprintf("error target '%s' is nil", name))
	}
	slog.Debug("Registering error target.", "name", name)
	h.errs[name] = err
}

// Block looks a block up by name.
func (h *Handlers) Block(name string) (hook.Block, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	block, ok := h.blocks[name]
	if !ok {
		return nil, &UnknownHandlerError{Kind: "block", Name: name}
	}
	return block, nil
}

// Error looks an error target up by name.
func (h *Handlers) Error(name string) (error, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	target, ok := h.errs[name]
	if !ok {
		return nil, &UnknownHandlerError{Kind: "error target", Name: name}
	}
	return target, nil
}

// BlockNames lists the registered block names in sorted order.
func (h *Handlers) BlockNames() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.blocks))
	for name := range h.blocks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// UnknownHandlerError is returned when a spec file names a handler nobody
// registered.
type UnknownHandlerError struct {
	Kind string
	Name string
}

func (e *UnknownHandlerError) Error() string {
	return fmt.Sprintf("unknown %s '%s'", e.Kind, e.Name)
}
