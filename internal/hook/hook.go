// Package hook wraps the blocks that run around examples.
package hook

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
)

// Block is a unit of side-effecting work: an example body, a hook or a var
// initializer.
type Block func(ctx context.Context) error

// Noop does nothing. Ignored examples run it in place of their body.
func Noop(context.Context) error { return nil }

// Kind tells where a hook runs relative to the examples in its scope.
type Kind int

const (
	BeforeAll Kind = iota
	BeforeEach
	AfterEach
	AfterAll
	// Let resets a fixture slot before every example in scope.
	Let
)

func (k Kind) String() string {
	switch k {
	case BeforeAll:
		return "before_all"
	case BeforeEach:
		return "before_each"
	case AfterEach:
		return "after_each"
	case AfterAll:
		return "after_all"
	case Let:
		return "let"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// OneTime reports whether hooks of this kind run once per contiguous run of
// examples rather than around every example.
func (k Kind) OneTime() bool {
	return k == BeforeAll || k == AfterAll
}

// Hook is one declared hook. Two examples share a hook when they hold the
// same *Hook; the block itself is never compared.
type Hook struct {
	kind  Kind
	block Block
	site  string
}

// New wraps a block declared at the given site.
func New(kind Kind, block Block, site string) *Hook {
	if block == nil {
		block = Noop
	}
	return &Hook{kind: kind, block: block, site: site}
}

// Kind returns the hook's kind.
func (h *Hook) Kind() Kind { return h.kind }

// OneTime reports whether the hook is a before-all or after-all hook.
func (h *Hook) OneTime() bool { return h.kind.OneTime() }

// Site is the declaration site, "file.go:42", or empty when unknown.
func (h *Hook) Site() string { return h.site }

// Run executes the wrapped block.
func (h *Hook) Run(ctx context.Context) error {
	return h.block(ctx)
}

func (h *Hook) String() string {
	if h.site == "" {
		return h.kind.String()
	}
	return h.kind.String() + "@" + h.site
}

// Caller returns the "file.go:line" of the caller skip frames above Caller's
// caller, in the form used for Hook sites.
func Caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// RunAll runs the hooks in order and stops at the first error.
func RunAll(ctx context.Context, hooks []*Hook) error {
	for _, h := range hooks {
		if err := h.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}
