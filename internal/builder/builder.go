package builder

import (
	"context"
	"slices"
	"sync"

	"github.com/specialistvlad/gospec/internal/ctxlog"
	"github.com/specialistvlad/gospec/internal/example"
	"github.com/specialistvlad/gospec/internal/focus"
	"github.com/specialistvlad/gospec/internal/hook"
	"github.com/specialistvlad/gospec/internal/rank"
	"github.com/specialistvlad/gospec/internal/specerr"
)

// Option configures a Builder.
type Option func(*Builder)

// WithOrder sets how sibling ranks are issued. The default keeps declaration
// order.
func WithOrder(order rank.Order) Option {
	return func(b *Builder) {
		b.ranks = rank.NewGenerator(order)
	}
}

// Builder collects one declaration tree. It is safe for concurrent use, but
// declarations made concurrently get ranks in arrival order.
type Builder struct {
	mu       sync.Mutex
	ranks    *rank.Generator
	frames   []*frame
	roots    []*GroupDeclaration
	topNames map[string]struct{}
	pending  []pendingExample
	// anyFocused is set as soon as a focused group or example is declared
	// anywhere in the tree.
	anyFocused bool
}

// New creates an empty builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		ranks:    rank.NewGenerator(rank.DefinedOrder()),
		topNames: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// StartGroup opens a group inside the current one.
func (b *Builder) StartGroup(description string, marker focus.Marker) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.claim(description); err != nil {
		return err
	}

	group := &GroupDeclaration{
		Description:     description,
		Marker:          marker,
		EffectiveMarker: marker,
	}
	var scope focus.Scope
	if parent := b.top(); parent != nil {
		group.EffectiveMarker = focus.Inherit(parent.group.EffectiveMarker, marker)
		scope = parent.scope
		parent.group.Children = append(parent.group.Children, group)
	} else {
		b.roots = append(b.roots, group)
	}
	group.Rank = b.ranks.PushLevel()

	if marker == focus.Focused {
		b.anyFocused = true
	}

	b.frames = append(b.frames, &frame{
		group: group,
		scope: scope.Enter(marker),
		names: make(map[string]struct{}),
	})
	return nil
}

// EndGroup closes the current group.
func (b *Builder) EndGroup() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.frames) == 0 {
		return &specerr.UnbalancedGroupError{Op: "end group", Open: 0}
	}
	b.frames = b.frames[:len(b.frames)-1]
	b.ranks.PopLevel()
	return nil
}

// BeforeAll adds a hook that runs once before the examples of the current group.
func (b *Builder) BeforeAll(block hook.Block, site string) error {
	return b.addHook(hook.BeforeAll, block, site)
}

// BeforeEach adds a hook that runs before every example of the current group.
func (b *Builder) BeforeEach(block hook.Block, site string) error {
	return b.addHook(hook.BeforeEach, block, site)
}

// AfterEach adds a hook that runs after every example of the current group.
func (b *Builder) AfterEach(block hook.Block, site string) error {
	return b.addHook(hook.AfterEach, block, site)
}

// AfterAll adds a hook that runs once after the examples of the current group.
func (b *Builder) AfterAll(block hook.Block, site string) error {
	return b.addHook(hook.AfterAll, block, site)
}

// Let adds a var initializer that runs first for every example of the
// current group.
func (b *Builder) Let(block hook.Block, site string) error {
	return b.addHook(hook.Let, block, site)
}

func (b *Builder) addHook(kind hook.Kind, block hook.Block, site string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	f := b.top()
	if f == nil {
		return &specerr.UnbalancedGroupError{Op: kind.String() + " outside a group", Open: 0}
	}

	h := hook.New(kind, block, site)
	g := f.group
	switch kind {
	case hook.BeforeAll:
		g.BeforeAll = append(g.BeforeAll, h)
	case hook.BeforeEach:
		g.BeforeEach = append(g.BeforeEach, h)
	case hook.AfterEach:
		g.AfterEach = append(g.AfterEach, h)
	case hook.AfterAll:
		g.AfterAll = append(g.AfterAll, h)
	case hook.Let:
		g.VarInitializers = append(g.VarInitializers, h)
	}
	return nil
}

// Example declares an example in the current group.
func (b *Builder) Example(cfg ExampleConfig, body hook.Block) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	f := b.top()
	if f == nil {
		return &specerr.UnbalancedGroupError{Op: "example outside a group", Open: 0}
	}
	if err := b.claim(cfg.Description); err != nil {
		return err
	}

	decl := &ExampleDeclaration{
		Description:     cfg.Description,
		Marker:          cfg.Marker,
		ExpectedFailure: cfg.ExpectedFailure,
		Timeout:         cfg.Timeout,
		Body:            body,
		Rank:            b.ranks.Generate(),
	}
	f.group.Children = append(f.group.Children, decl)

	if cfg.Marker == focus.Focused {
		b.anyFocused = true
	}

	b.pending = append(b.pending, pendingExample{
		decl:      decl,
		ancestors: b.ancestors(),
		scope:     f.scope,
	})
	return nil
}

// Tree returns the top-level groups declared so far.
func (b *Builder) Tree() []*GroupDeclaration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.roots)
}

// Depth is the number of open groups.
func (b *Builder) Depth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.frames)
}

// Build resolves the collected tree into an ordered plan. All groups must be
// closed.
func (b *Builder) Build(ctx context.Context) (*example.Plan, error) {
	logger := ctxlog.FromContext(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.frames) > 0 {
		return nil, &specerr.UnbalancedGroupError{Op: "build", Open: len(b.frames)}
	}

	resolver := focus.NewResolver(b.anyFocused)
	logger.Debug("Resolving examples.", "examples", len(b.pending), "focus_mode", resolver.FocusMode())

	examples := make([]*example.Example, 0, len(b.pending))
	for _, p := range b.pending {
		examples = append(examples, resolve(p, resolver))
	}

	plan, err := example.NewPlan(examples)
	if err != nil {
		return nil, err
	}
	logger.Debug("Plan built.", "examples", plan.Len(), "ignored", plan.Ignored())
	return plan, nil
}

// resolve applies the focus/ignore rule to one example and gathers its hooks.
func resolve(p pendingExample, resolver focus.Resolver) *example.Example {
	containers := make([]string, 0, len(p.ancestors))
	for _, g := range p.ancestors {
		containers = append(containers, g.Description)
	}

	cfg := example.Config{
		ContainerDescriptions: containers,
		Description:           p.decl.Description,
		Rank:                  p.decl.Rank,
		Ignored:               resolver.ShouldBeIgnored(p.decl.Marker, p.scope),
	}
	if cfg.Ignored {
		return example.New(cfg)
	}

	for _, g := range p.ancestors {
		cfg.VarInitializers = append(cfg.VarInitializers, g.VarInitializers...)
		cfg.BeforeAll = append(cfg.BeforeAll, g.BeforeAll...)
		cfg.BeforeEach = append(cfg.BeforeEach, g.BeforeEach...)
	}
	for i := len(p.ancestors) - 1; i >= 0; i-- {
		g := p.ancestors[i]
		cfg.AfterEach = append(cfg.AfterEach, g.AfterEach...)
		cfg.AfterAll = append(cfg.AfterAll, g.AfterAll...)
	}
	cfg.Body = p.decl.Body
	cfg.ExpectedFailure = p.decl.ExpectedFailure
	cfg.Timeout = p.decl.Timeout
	return example.New(cfg)
}

// claim reserves a description among the siblings of the current group.
// Must be called with lock held.
func (b *Builder) claim(description string) error {
	names := b.topNames
	if f := b.top(); f != nil {
		names = f.names
	}
	if _, exists := names[description]; exists {
		return &specerr.BlockAlreadyDefinedError{
			Container:   b.containerDescriptions(),
			Description: description,
		}
	}
	names[description] = struct{}{}
	return nil
}

// Must be called with lock held.
func (b *Builder) top() *frame {
	if len(b.frames) == 0 {
		return nil
	}
	return b.frames[len(b.frames)-1]
}

// Must be called with lock held.
func (b *Builder) ancestors() []*GroupDeclaration {
	groups := make([]*GroupDeclaration, 0, len(b.frames))
	for _, f := range b.frames {
		groups = append(groups, f.group)
	}
	return groups
}

// Must be called with lock held.
func (b *Builder) containerDescriptions() []string {
	descriptions := make([]string, 0, len(b.frames))
	for _, f := range b.frames {
		descriptions = append(descriptions, f.group.Description)
	}
	return descriptions
}
