// Package script turns spec trees loaded from files into declaration scripts.
// Every handler name is resolved before the script is returned, so a script
// never fails because of a missing handler while it is being compiled.
package script

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/gospec/internal/builder"
	"github.com/specialistvlad/gospec/internal/compiler"
	"github.com/specialistvlad/gospec/internal/config"
	"github.com/specialistvlad/gospec/internal/focus"
	"github.com/specialistvlad/gospec/internal/handlers"
	"github.com/specialistvlad/gospec/internal/hook"
	"github.com/specialistvlad/gospec/internal/session"
)

type resolvedHook struct {
	kind  hook.Kind
	block hook.Block
	site  string
}

type resolvedGroup struct {
	call     string
	desc     string
	marker   focus.Marker
	hooks    []resolvedHook
	children []any
}

type resolvedExample struct {
	cfg  builder.ExampleConfig
	body hook.Block
}

// FromGroup resolves the handlers a spec tree names and returns a script
// declaring the contents of the tree. The compiler opens the root group
// itself, named after the unit.
func FromGroup(group *config.Group, h *handlers.Handlers) (compiler.Script, error) {
	if group == nil {
		return nil, errors.New("spec group is nil")
	}
	root, err := resolveGroup(group, h)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) {
		declareContents(ctx, root)
	}, nil
}

// Units resolves every spec of model into compilation units.
func Units(model *config.Model, h *handlers.Handlers) ([]compiler.Unit, error) {
	units := make([]compiler.Unit, 0, len(model.Specs))
	for _, g := range model.Specs {
		s, err := FromGroup(g, h)
		if err != nil {
			return nil, fmt.Errorf("spec '%s' (%s): %w", g.Description, g.Source, err)
		}
		// Already validated by FromGroup.
		marker, _ := markerOf(g.Focus, g.Ignore)
		units = append(units, compiler.Unit{Name: g.Description, Script: s, Marker: marker})
	}
	return units, nil
}

func declareGroup(ctx context.Context, g *resolvedGroup) {
	session.Group(ctx, g.call, g.desc, g.marker, func(ctx context.Context) {
		declareContents(ctx, g)
	})
}

func declareContents(ctx context.Context, g *resolvedGroup) {
	for _, rh := range g.hooks {
		session.Hook(ctx, rh.kind.String(), rh.kind, rh.block, rh.site)
	}
	for _, child := range g.children {
		switch c := child.(type) {
		case *resolvedGroup:
			declareGroup(ctx, c)
		case *resolvedExample:
			session.Example(ctx, "it", c.cfg, c.body)
		}
	}
}

func resolveGroup(g *config.Group, h *handlers.Handlers) (*resolvedGroup, error) {
	marker, err := markerOf(g.Focus, g.Ignore)
	if err != nil {
		return nil, fmt.Errorf("%s: group '%s': %w", g.Source, g.Description, err)
	}

	rg := &resolvedGroup{
		call:   string(g.Kind),
		desc:   g.Description,
		marker: marker,
	}
	for _, list := range []struct {
		kind  hook.Kind
		names []string
	}{
		{hook.BeforeAll, g.BeforeAll},
		{hook.BeforeEach, g.BeforeEach},
		{hook.AfterEach, g.AfterEach},
		{hook.AfterAll, g.AfterAll},
	} {
		for _, name := range list.names {
			block, err := h.Block(name)
			if err != nil {
				return nil, fmt.Errorf("%s: %s of group '%s': %w", g.Source, list.kind, g.Description, err)
			}
			rg.hooks = append(rg.hooks, resolvedHook{kind: list.kind, block: block, site: g.Source})
		}
	}

	for _, child := range g.Children {
		switch c := child.(type) {
		case *config.Group:
			sub, err := resolveGroup(c, h)
			if err != nil {
				return nil, err
			}
			rg.children = append(rg.children, sub)
		case *config.Example:
			ex, err := resolveExample(c, h)
			if err != nil {
				return nil, err
			}
			rg.children = append(rg.children, ex)
		default:
			return nil, fmt.Errorf("%s: unsupported node %T", child.Location(), child)
		}
	}
	return rg, nil
}

func resolveExample(e *config.Example, h *handlers.Handlers) (*resolvedExample, error) {
	marker, err := markerOf(e.Focus, e.Ignore)
	if err != nil {
		return nil, fmt.Errorf("%s: example '%s': %w", e.Source, e.Description, err)
	}

	re := &resolvedExample{
		cfg: builder.ExampleConfig{
			Description: e.Description,
			Marker:      marker,
			Timeout:     e.Timeout,
		},
		body: hook.Noop,
	}
	if e.Run != "" {
		if re.body, err = h.Block(e.Run); err != nil {
			return nil, fmt.Errorf("%s: example '%s': %w", e.Source, e.Description, err)
		}
	}
	if e.ExpectError != "" {
		if re.cfg.ExpectedFailure, err = h.Error(e.ExpectError); err != nil {
			return nil, fmt.Errorf("%s: example '%s': %w", e.Source, e.Description, err)
		}
	}
	return re, nil
}

func markerOf(focused, ignored bool) (focus.Marker, error) {
	switch {
	case focused && ignored:
		return focus.Default, errors.New("cannot be both focused and ignored")
	case focused:
		return focus.Focused, nil
	case ignored:
		return focus.Ignored, nil
	default:
		return focus.Default, nil
	}
}
