package builder

import (
	"time"

	"github.com/specialistvlad/gospec/internal/focus"
	"github.com/specialistvlad/gospec/internal/hook"
	"github.com/specialistvlad/gospec/internal/rank"
)

// Declaration is a node of the declaration tree: a group or an example.
type Declaration interface {
	Name() string
	DeclaredMarker() focus.Marker
	DeclaredRank() rank.Rank
}

// GroupDeclaration is a declared group with its hooks and children.
type GroupDeclaration struct {
	Description string
	// Marker is the marker the group was declared with.
	Marker focus.Marker
	// EffectiveMarker is Marker unless an ancestor carries a non-default one.
	EffectiveMarker focus.Marker
	Rank            rank.Rank

	VarInitializers []*hook.Hook
	BeforeAll       []*hook.Hook
	BeforeEach      []*hook.Hook
	AfterEach       []*hook.Hook
	AfterAll        []*hook.Hook

	// Children holds groups and examples in declaration order.
	Children []Declaration
}

func (g *GroupDeclaration) Name() string                 { return g.Description }
func (g *GroupDeclaration) DeclaredMarker() focus.Marker { return g.Marker }
func (g *GroupDeclaration) DeclaredRank() rank.Rank      { return g.Rank }

// ExampleDeclaration is a declared example.
type ExampleDeclaration struct {
	Description     string
	Marker          focus.Marker
	ExpectedFailure error
	Timeout         time.Duration
	Body            hook.Block
	Rank            rank.Rank
}

func (e *ExampleDeclaration) Name() string                 { return e.Description }
func (e *ExampleDeclaration) DeclaredMarker() focus.Marker { return e.Marker }
func (e *ExampleDeclaration) DeclaredRank() rank.Rank      { return e.Rank }

// ExampleConfig is what an example declaration call supplies besides its body.
type ExampleConfig struct {
	Description     string
	Marker          focus.Marker
	ExpectedFailure error
	Timeout         time.Duration
}

// frame is one open group on the builder stack.
type frame struct {
	group *GroupDeclaration
	// scope says whether this group or any ancestor is focused or ignored.
	scope focus.Scope
	names map[string]struct{}
}

// pendingExample is an example collected in phase 1, resolved in Build.
type pendingExample struct {
	decl *ExampleDeclaration
	// ancestors lists the enclosing groups, the root first.
	ancestors []*GroupDeclaration
	scope     focus.Scope
}
